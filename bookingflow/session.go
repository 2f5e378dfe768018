package bookingflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Submitter persists a finished draft and returns the booking number.
type Submitter interface {
	CreateBooking(ctx context.Context, d Draft) (string, error)
}

// ErrSubmitInFlight is returned when a submit is attempted while a
// previous one has not finished. This mirrors a disabled submit button,
// not a lock: the wizard is single-user, single-request.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// ValidationError carries the per-field failures that blocked a submit.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, ", "))
}

// Session is one wizard run: a draft plus the pending-submit flag.
// Created at wizard mount, reset on successful submission or dismissal.
type Session struct {
	engine     *Engine
	draft      Draft
	submitting bool
}

// NewSession starts a fresh wizard against the given engine.
func NewSession(engine *Engine) *Session {
	return &Session{engine: engine, draft: NewDraft()}
}

// Draft returns the current wizard state.
func (s *Session) Draft() Draft {
	return s.draft
}

// Apply replaces the draft with the result of a transition, e.g.
// s.Apply(s.Engine().SetGroupSize(s.Draft(), 4)).
func (s *Session) Apply(d Draft) {
	s.draft = d
}

// Engine exposes the pricing/transition engine for this session.
func (s *Session) Engine() *Engine {
	return s.engine
}

// Reset discards the draft, as on modal dismissal.
func (s *Session) Reset() {
	s.draft = NewDraft()
}

// Submit validates the draft and hands it to the submitter. On success
// the draft is reset and the booking number returned; on failure the
// draft is preserved so the user can correct and retry.
func (s *Session) Submit(ctx context.Context, submitter Submitter) (string, error) {
	if s.submitting {
		return "", ErrSubmitInFlight
	}
	if errs := Validate(s.draft); len(errs) > 0 {
		return "", &ValidationError{Fields: errs}
	}

	s.submitting = true
	defer func() { s.submitting = false }()

	d := s.engine.Reprice(s.draft)
	number, err := submitter.CreateBooking(ctx, d)
	if err != nil {
		return "", err
	}

	s.Reset()
	return number, nil
}
