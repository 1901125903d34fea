package twocaptcha

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Result fetches the status of one job. Service-reported failures come back
// inside the PollResult; the error return is for transport failures only.
func (c *Client) Result(ctx context.Context, jobID string) (PollResult, error) {
	return c.result(ctx, jobID, actionGet, false)
}

// ResultWithCost is the cost-aware variant of Result: on success the
// PollResult carries the solve price as a second field.
func (c *Client) ResultWithCost(ctx context.Context, jobID string) (PollResult, error) {
	return c.result(ctx, jobID, actionGetWithCost, true)
}

func (c *Client) result(ctx context.Context, jobID, action string, withCost bool) (PollResult, error) {
	body, err := c.resRequest(ctx, action, url.Values{"id": {jobID}})
	if err != nil {
		c.recordAPICall(opResult, false)
		return PollResult{}, fmt.Errorf("result %s: %w", jobID, err)
	}
	res := parsePollResult(body, withCost)
	c.recordAPICall(opResult, res.Status != StatusFailed)
	return res, nil
}

// BulkResults fetches the status of several jobs in one request. The
// response pairs with ids positionally; a field-count mismatch returns a
// *BulkCountError instead of misaligned results.
func (c *Client) BulkResults(ctx context.Context, jobIDs []string) (map[string]PollResult, error) {
	if len(jobIDs) == 0 {
		return map[string]PollResult{}, nil
	}

	body, err := c.resRequest(ctx, actionGet, url.Values{"ids": {strings.Join(jobIDs, ",")}})
	if err != nil {
		c.recordAPICall(opBulkResults, false)
		return nil, fmt.Errorf("bulk results: %w", err)
	}
	out, err := parseBulkResults(jobIDs, body)
	c.recordAPICall(opBulkResults, err == nil)
	return out, err
}
