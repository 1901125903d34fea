package twocaptcha

import (
	"context"
	"log/slog"
)

// Solve submits a captcha and polls for the result: sleep PollInterval,
// fetch, repeat until the service reports a terminal state or the job's
// wall-clock deadline passes. There is no backoff and no attempt cap; the
// loop is bounded by elapsed time only. A deadline expiry returns a
// *TimeoutError, distinct from any service-reported failure.
func (c *Client) Solve(ctx context.Context, task Task, opts ...SubmitOption) (*Solution, error) {
	if c.cfg.BalanceWarnLevel > 0 {
		if bal, err := c.Balance(ctx); err == nil && bal < c.cfg.BalanceWarnLevel {
			slog.Warn("captcha service balance low", slog.Float64("balance", bal))
		}
	}

	job, err := c.Submit(ctx, task, opts...)
	if err != nil {
		return nil, err
	}

	for {
		if err := c.cfg.Sleep(ctx, c.cfg.PollInterval); err != nil {
			return nil, err
		}
		if !c.cfg.Now().Before(job.Deadline) {
			return nil, &TimeoutError{JobID: job.ID, After: c.cfg.SolveTimeout}
		}

		res, err := c.ResultWithCost(ctx, job.ID)
		if err != nil {
			return nil, err
		}
		switch res.Status {
		case StatusSolved:
			slog.Info("captcha solved", slog.String("id", job.ID), slog.String("cost", res.Cost))
			return &Solution{JobID: job.ID, Text: res.Text, Cost: res.Cost}, nil
		case StatusFailed:
			slog.Warn("captcha failed", slog.String("id", job.ID), slog.Int("code", res.Err.Code))
			return nil, res.Err
		}
		// pending, keep waiting
	}
}
