package twocaptcha

import (
	"errors"

	"gopkg.in/h2non/gentleman.v2"
	"gopkg.in/h2non/gentleman.v2/plugins/timeout"
)

// Client is a client for a 2captcha-compatible solving service. It issues
// requests against the fixed endpoints and decodes the pipe-delimited text
// protocol into typed results. Methods are safe for concurrent use; each
// call is an independent request with no shared mutable state.
type Client struct {
	http *gentleman.Client
	cfg  ClientConfig
}

// NewClient creates a captcha service client.
func NewClient(cfg ClientConfig) (*Client, error) {
	cfg.defaults()
	if cfg.APIKey == "" {
		return nil, errors.New("twocaptcha: APIKey is required")
	}

	cli := gentleman.New()
	cli.URL(cfg.BaseURL)
	cli.Use(timeout.Request(cfg.HTTPTimeout))

	return &Client{http: cli, cfg: cfg}, nil
}

// recordAPICall calls the metrics hook if configured.
func (c *Client) recordAPICall(op string, success bool) {
	if c.cfg.MetricsHook != nil {
		c.cfg.MetricsHook(op, success)
	}
}
