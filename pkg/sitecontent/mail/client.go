package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 * time.Second

// Config holds the provider endpoint and credential. The API key is an
// opaque secret passed through unmodified.
type Config struct {
	// Endpoint is the provider's message-creation URL,
	// e.g. "https://api.resend.com/emails".
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client posts messages to an HTTP email provider.
type Client struct {
	http     *resty.Client
	endpoint string
	apiKey   string
}

// NewClient creates a provider client. A missing API key is tolerated at
// construction so servers can boot without mail configured, but Send then
// fails closed with ErrMissingAPIKey.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("mail: provider endpoint is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		http:     resty.New().SetTimeout(timeout),
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
	}, nil
}

// Send delivers one message. Exactly one POST is made; any transport or
// provider error is returned as a SendError without retry.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	if msg.To == "" {
		return ErrMissingRecipient
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post(c.endpoint)
	if err != nil {
		return &SendError{Provider: c.endpoint, Err: err}
	}
	if resp.IsError() {
		return &SendError{Provider: c.endpoint, Err: fmt.Errorf("status %d", resp.StatusCode())}
	}
	return nil
}
