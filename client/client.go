// Package client implements the submission side of the contact form: field
// state, a single in-flight request, a terminal thank-you state with an
// explicit reset, and a conversion ping fired on success.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"venue-backend/models"
)

// State is the form's UI state.
type State int

const (
	// StateEditing accepts field changes and a submit.
	StateEditing State = iota
	// StateSubmitting has one request in flight; controls are disabled.
	StateSubmitting
	// StateSucceeded is terminal until Reset.
	StateSucceeded
)

// FailureMessage is the only failure text shown to the submitter.
const FailureMessage = "Failed to send. Please try again or email us directly."

var (
	// ErrInFlight rejects a submit while one is already running.
	ErrInFlight = errors.New("submission already in flight")
	// ErrNotEditable rejects changes outside StateEditing.
	ErrNotEditable = errors.New("form is not editable")
	// ErrValidation marks a local required-field failure; nothing was sent.
	ErrValidation = errors.New("required fields missing")
	// ErrSubmitFailed marks a non-success response or transport failure.
	ErrSubmitFailed = errors.New("submission failed")
)

// AnalyticsFunc receives the conversion event name after a successful
// submission. It runs on its own goroutine and must not block the form.
type AnalyticsFunc func(event string)

// Option configures a Form.
type Option func(*Form)

func WithHTTPClient(hc *http.Client) Option {
	return func(f *Form) { f.http = hc }
}

func WithAnalytics(fn AnalyticsFunc) Option {
	return func(f *Form) { f.analytics = fn }
}

func WithLogger(log zerolog.Logger) Option {
	return func(f *Form) { f.log = log }
}

// Form owns one inquiry's worth of field state and drives it through
// editing, submitting and the terminal thank-you state.
type Form struct {
	endpoint  string
	http      *http.Client
	analytics AnalyticsFunc
	log       zerolog.Logger

	mu     sync.Mutex
	state  State
	fields models.Inquiry
	errMsg string
}

// NewForm returns a blank editable form posting to endpoint.
func NewForm(endpoint string, opts ...Option) *Form {
	f := &Form{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// ErrorMessage returns the retry message after a failed submission, empty
// otherwise.
func (f *Form) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Fields returns a copy of the current field values.
func (f *Form) Fields() models.Inquiry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// SetFields replaces the field values. Allowed only while editing.
func (f *Form) SetFields(inq models.Inquiry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateEditing {
		return ErrNotEditable
	}
	f.fields = inq
	return nil
}

// Submit sends the current fields to the relay. Required fields are checked
// locally first; a failure of any kind returns the form to the editable
// state with values retained and the generic retry message set. On success
// the form is terminal until Reset and the conversion event fires without
// gating the transition.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return ErrInFlight
	case StateSucceeded:
		f.mu.Unlock()
		return ErrNotEditable
	}
	if missing := f.fields.MissingFields(); len(missing) > 0 {
		f.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(missing, ", "))
	}
	f.state = StateSubmitting
	f.errMsg = ""
	payload := f.fields
	f.mu.Unlock()

	err := f.post(ctx, &payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.log.Warn().Err(err).Msg("inquiry submission failed")
		f.state = StateEditing
		f.errMsg = FailureMessage
		return fmt.Errorf("%w: %s", ErrSubmitFailed, FailureMessage)
	}

	f.state = StateSucceeded
	if f.analytics != nil {
		go f.analytics("generate_lead")
	}
	return nil
}

// Reset returns the form to a blank editable state.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateEditing
	f.fields = models.Inquiry{}
	f.errMsg = ""
}

func (f *Form) post(ctx context.Context, payload *models.Inquiry) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return fmt.Errorf("post inquiry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("relay returned %d", resp.StatusCode)
	}
	return nil
}
