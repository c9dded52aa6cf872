package forms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
)

// State is the submit pipeline's lifecycle phase.
type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var (
	// ErrSubmissionInFlight indicates a submit was triggered while a
	// previous one had not finished. At most one request is ever in flight.
	ErrSubmissionInFlight = errors.New("forms: submission already in flight")

	// ErrSubmitRejected indicates the endpoint answered with a non-success
	// status.
	ErrSubmitRejected = errors.New("forms: submission rejected")
)

// Submission is anything the submitter can validate and post.
type Submission interface {
	Validate() error
}

const defaultSubmitTimeout = 15 * time.Second

// Submitter drives a submission through validate and post. Repeated
// triggers while a request is outstanding are rejected, so double-clicks
// produce exactly one POST.
type Submitter struct {
	http     *resty.Client
	endpoint string
	logger   *slog.Logger

	inFlight atomic.Bool

	mu    sync.Mutex
	state State
}

// SubmitterOption customizes a Submitter.
type SubmitterOption func(*Submitter)

// WithSubmitTimeout overrides the per-request timeout.
func WithSubmitTimeout(d time.Duration) SubmitterOption {
	return func(s *Submitter) {
		s.http.SetTimeout(d)
	}
}

// WithSubmitterLogger sets the logger.
func WithSubmitterLogger(logger *slog.Logger) SubmitterOption {
	return func(s *Submitter) {
		s.logger = logger
	}
}

// NewSubmitter creates a submitter posting to endpoint.
func NewSubmitter(endpoint string, opts ...SubmitterOption) (*Submitter, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("forms: submit endpoint is required")
	}
	s := &Submitter{
		http:     resty.New().SetTimeout(defaultSubmitTimeout),
		endpoint: endpoint,
		logger:   slog.Default(),
		state:    StateEditing,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// State returns the current pipeline phase.
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Submitter) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Submit validates sub and, on success, posts it once. A validation failure
// returns ValidationErrors, moves the state back to editing, and makes no
// network call. A concurrent trigger returns ErrSubmissionInFlight without
// touching the outstanding request.
func (s *Submitter) Submit(ctx context.Context, sub Submission) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	s.setState(StateValidating)
	if err := sub.Validate(); err != nil {
		s.setState(StateEditing)
		return err
	}

	s.setState(StateSubmitting)
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sub).
		Post(s.endpoint)
	if err != nil {
		s.logger.Error("form submit failed", "endpoint", s.endpoint, "error", err)
		s.setState(StateFailed)
		return fmt.Errorf("forms: submit: %w", err)
	}
	if resp.IsError() {
		s.logger.Error("form submit rejected", "endpoint", s.endpoint, "status", resp.StatusCode())
		s.setState(StateFailed)
		return fmt.Errorf("%w: status %d", ErrSubmitRejected, resp.StatusCode())
	}

	s.setState(StateSucceeded)
	return nil
}
