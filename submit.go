package twocaptcha

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
)

// Submit sends a captcha to the service and returns the assigned job.
// The job's deadline is fixed at submission time from SolveTimeout.
func (c *Client) Submit(ctx context.Context, task Task, opts ...SubmitOption) (*Job, error) {
	form := url.Values{}
	form.Set("key", c.cfg.APIKey)
	form.Set("method", task.capability().method())
	if c.cfg.SoftID != "" {
		form.Set("soft_id", c.cfg.SoftID)
	}
	if err := task.fill(form); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(form)
	}

	var body string
	var err error
	switch img := task.(type) {
	case ImageTask:
		body, err = c.doPostMultipart(ctx, inPath, form, "file", img.Image)
	case *ImageTask:
		body, err = c.doPostMultipart(ctx, inPath, form, "file", img.Image)
	default:
		body, err = c.doPostForm(ctx, inPath, form)
	}
	if err != nil {
		c.recordAPICall(opSubmit, false)
		return nil, fmt.Errorf("submit: %w", err)
	}

	id, err := parseSubmitResponse(body)
	if err != nil {
		c.recordAPICall(opSubmit, false)
		return nil, err
	}
	c.recordAPICall(opSubmit, true)

	now := c.cfg.Now()
	job := &Job{ID: id, SubmittedAt: now, Deadline: now.Add(c.cfg.SolveTimeout)}
	slog.Info("captcha submitted", slog.String("id", id), slog.String("method", form.Get("method")))
	return job, nil
}
