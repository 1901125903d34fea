package twocaptcha

import (
	"context"
	"time"
)

// ClientConfig holds all configuration for the captcha service client.
type ClientConfig struct {
	// APIKey is the account key sent with every request.
	APIKey string

	// BaseURL overrides the service origin, e.g. for rucaptcha or a mock.
	// Default: https://2captcha.com
	BaseURL string

	// SoftID identifies the submitting software to the service.
	SoftID string

	// HTTPTimeout bounds a single HTTP round trip.
	HTTPTimeout time.Duration

	// PollInterval is the sleep between result polls in Solve.
	PollInterval time.Duration

	// SolveTimeout is the overall wall-clock budget for Solve, measured
	// from submission. The deadline is fixed and never extended.
	SolveTimeout time.Duration

	// BalanceWarnLevel makes Solve check the balance first and log a
	// warning below this level. Zero disables the check.
	BalanceWarnLevel float64

	// MetricsHook is called on each API request for external metrics
	// collection. op is the operation name, success the outcome.
	MetricsHook func(op string, success bool)

	// Now overrides the wall-clock source. Used by tests.
	Now func() time.Time

	// Sleep overrides the inter-poll delay primitive. Used by tests.
	Sleep func(ctx context.Context, d time.Duration) error
}

// defaults fills in zero-value config fields with sensible defaults.
func (cfg *ClientConfig) defaults() {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 15 * time.Second
	}
	if cfg.SolveTimeout == 0 {
		cfg.SolveTimeout = 120 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Sleep == nil {
		cfg.Sleep = sleepContext
	}
}

// sleepContext blocks for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
