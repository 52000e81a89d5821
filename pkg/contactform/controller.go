// Package contactform holds the client-side state of the contact form: the
// draft being edited, the submission status, and the request that relays the
// draft to POST /api/contact.
package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// GenericFailure is shown when the server gave no usable error message.
const GenericFailure = "送信に失敗しました"

var (
	// ErrSubmitInFlight is returned by Submit while a request is pending.
	ErrSubmitInFlight = errors.New("contactform: submission already in flight")
	// ErrInvalidTransition is returned by Reset outside the Succeeded state
	// and by Submit from Succeeded.
	ErrInvalidTransition = errors.New("contactform: invalid state transition")
)

type Status int

const (
	Idle Status = iota
	Sending
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sending:
		return "sending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
)

// Draft is the editable form content.
type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// State is a point-in-time copy of the controller.
type State struct {
	Draft  Draft
	Status Status
	// Reason is set only when Status is Failed.
	Reason string
	// CanSubmit is false while a submission is in flight or after a success.
	CanSubmit bool
}

// Controller owns one Draft and its submission status.
type Controller struct {
	endpoint string
	client   *http.Client

	mu       sync.Mutex
	draft    Draft
	status   Status
	reason   string
	onChange func(State)
}

type Option func(*Controller)

// WithHTTPClient replaces the default client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Controller) { c.client = client }
}

// New returns a controller posting to endpoint, e.g. https://example.com/api/contact.
func New(endpoint string, opts ...Option) *Controller {
	c := &Controller{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers fn to be called with the new state after every change.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// UpdateField sets one draft field. Unknown fields are ignored.
func (c *Controller) UpdateField(field Field, value string) {
	c.mu.Lock()
	switch field {
	case FieldName:
		c.draft.Name = value
	case FieldEmail:
		c.draft.Email = value
	case FieldMessage:
		c.draft.Message = value
	}
	c.notifyLocked()
}

// Submit posts the current draft and blocks until the outcome is known. It is
// allowed from Idle and Failed only: ErrSubmitInFlight is returned while
// sending and ErrInvalidTransition after a success until Reset. Request
// failures end up in the Failed state.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	switch c.status {
	case Sending:
		c.mu.Unlock()
		return ErrSubmitInFlight
	case Succeeded:
		c.mu.Unlock()
		return ErrInvalidTransition
	}
	c.status = Sending
	c.reason = ""
	draft := c.draft
	c.notifyLocked()

	reason, ok := c.post(ctx, draft)

	c.mu.Lock()
	if ok {
		c.status = Succeeded
		c.draft = Draft{}
	} else {
		c.status = Failed
		c.reason = reason
	}
	c.notifyLocked()
	return nil
}

// Reset returns a succeeded form to Idle for a fresh submission.
func (c *Controller) Reset() error {
	c.mu.Lock()
	if c.status != Succeeded {
		c.mu.Unlock()
		return ErrInvalidTransition
	}
	c.status = Idle
	c.notifyLocked()
	return nil
}

type result struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// post sends draft and reports success or the failure reason.
func (c *Controller) post(ctx context.Context, draft Draft) (string, bool) {
	body, err := json.Marshal(draft)
	if err != nil {
		return GenericFailure, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return GenericFailure, false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return GenericFailure, false
	}
	defer resp.Body.Close()

	var res result
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&res)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || res.Error != "" {
		if res.Error != "" {
			return res.Error, false
		}
		return GenericFailure, false
	}
	if decodeErr != nil {
		return GenericFailure, false
	}
	return "", true
}

// notifyLocked releases c.mu and then calls the change listener.
func (c *Controller) notifyLocked() {
	state := c.stateLocked()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(state)
	}
}

func (c *Controller) stateLocked() State {
	return State{
		Draft:     c.draft,
		Status:    c.status,
		Reason:    c.reason,
		CanSubmit: c.status == Idle || c.status == Failed,
	}
}
