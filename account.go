package twocaptcha

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
)

// Balance returns the account balance.
func (c *Client) Balance(ctx context.Context) (float64, error) {
	body, err := c.resRequest(ctx, actionGetBalance, nil)
	if err != nil {
		c.recordAPICall(opBalance, false)
		return 0, fmt.Errorf("balance: %w", err)
	}
	bal, err := parseBalance(body)
	c.recordAPICall(opBalance, err == nil)
	return bal, err
}

// ReportBad reports a wrongly solved captcha. The service refunds the job
// and uses the report to rate workers.
func (c *Client) ReportBad(ctx context.Context, jobID string) error {
	body, err := c.resRequest(ctx, actionReportBad, url.Values{"id": {jobID}})
	if err != nil {
		c.recordAPICall(opReportBad, false)
		return fmt.Errorf("report bad %s: %w", jobID, err)
	}
	if body != sentinelReportRecorded {
		c.recordAPICall(opReportBad, false)
		return serviceErrorFromBody(body)
	}
	c.recordAPICall(opReportBad, true)
	slog.Info("bad captcha reported", slog.String("id", jobID))
	return nil
}

// AddPingback whitelists a callback URL the service may notify on
// completion.
func (c *Client) AddPingback(ctx context.Context, pingbackURL string) error {
	body, err := c.resRequest(ctx, actionAddPingback, url.Values{"addr": {pingbackURL}})
	if err != nil {
		c.recordAPICall(opAddPingback, false)
		return fmt.Errorf("add pingback: %w", err)
	}
	if body != sentinelPingbackAdded {
		c.recordAPICall(opAddPingback, false)
		return serviceErrorFromBody(body)
	}
	c.recordAPICall(opAddPingback, true)
	return nil
}

// Pingbacks returns the account's whitelisted pingback URLs.
func (c *Client) Pingbacks(ctx context.Context) ([]string, error) {
	body, err := c.resRequest(ctx, actionGetPingback, nil)
	if err != nil {
		c.recordAPICall(opGetPingback, false)
		return nil, fmt.Errorf("get pingbacks: %w", err)
	}
	urls, err := parsePingbackList(body)
	c.recordAPICall(opGetPingback, err == nil)
	return urls, err
}

// DeletePingback removes one URL from the pingback whitelist.
func (c *Client) DeletePingback(ctx context.Context, pingbackURL string) error {
	body, err := c.resRequest(ctx, actionDelPingback, url.Values{"addr": {pingbackURL}})
	if err != nil {
		c.recordAPICall(opDelPingback, false)
		return fmt.Errorf("delete pingback: %w", err)
	}
	if body != sentinelPingbackDeleted {
		c.recordAPICall(opDelPingback, false)
		return serviceErrorFromBody(body)
	}
	c.recordAPICall(opDelPingback, true)
	return nil
}

// DeleteAllPingbacks clears the pingback whitelist. The service treats the
// literal address "all" as a wildcard.
func (c *Client) DeleteAllPingbacks(ctx context.Context) error {
	return c.DeletePingback(ctx, "all")
}

// LoadStats fetches server load metrics from load.php. When names are
// given, only those XML fields are returned; otherwise every numeric field
// in the document.
func (c *Client) LoadStats(ctx context.Context, names ...string) (map[string]float64, error) {
	body, err := c.doGET(ctx, loadPath, nil)
	if err != nil {
		c.recordAPICall(opLoadStats, false)
		return nil, fmt.Errorf("load stats: %w", err)
	}
	stats, err := parseLoadStats(body, names)
	c.recordAPICall(opLoadStats, err == nil)
	return stats, err
}
