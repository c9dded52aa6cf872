// Package mail delivers form submissions through a third-party transactional
// email provider's HTTP API. There is exactly one send attempt per message;
// retry policy, if any, belongs to the caller's provider, not this layer.
package mail

import (
	"context"
	"errors"
	"fmt"
)

// Error types
var (
	// ErrMissingAPIKey indicates the provider credential is absent; sends
	// fail closed rather than silently succeeding.
	ErrMissingAPIKey = errors.New("mail: missing provider API key")

	// ErrMissingRecipient indicates no destination address is configured.
	ErrMissingRecipient = errors.New("mail: missing recipient address")
)

// Message is one outbound email.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Sender delivers a message. Implementations return an error when the
// provider rejects or the transport fails; they never retry.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SendError represents a provider-side delivery failure
type SendError struct {
	Provider string
	Err      error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("mail send via %s failed: %v", e.Provider, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}
