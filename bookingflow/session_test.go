package bookingflow

import (
	"context"
	"errors"
	"testing"
)

type fakeSubmitter struct {
	number string
	err    error
	calls  int
	last   Draft
}

func (f *fakeSubmitter) CreateBooking(ctx context.Context, d Draft) (string, error) {
	f.calls++
	f.last = d
	if f.err != nil {
		return "", f.err
	}
	return f.number, nil
}

func TestSessionSubmitSuccessResetsDraft(t *testing.T) {
	s := NewSession(testEngine())
	s.Apply(completeDraft())

	submitter := &fakeSubmitter{number: "PHX-2026-000042"}
	number, err := s.Submit(context.Background(), submitter)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if number != "PHX-2026-000042" {
		t.Errorf("booking number = %q", number)
	}

	// server-side reprice ran before persistence
	if submitter.last.TotalAmount != 598 { // round(299*2*1.0)
		t.Errorf("submitted total = %d, want 598", submitter.last.TotalAmount)
	}

	// draft is back to initial state
	if got := s.Draft(); got.TourName != "" || got.Step != StepTourSelection {
		t.Errorf("draft not reset: %+v", got)
	}
}

func TestSessionSubmitFailurePreservesDraft(t *testing.T) {
	s := NewSession(testEngine())
	s.Apply(completeDraft())

	submitter := &fakeSubmitter{err: errors.New("network down")}
	if _, err := s.Submit(context.Background(), submitter); err == nil {
		t.Fatal("expected submit error")
	}

	// the user does not lose their input
	if got := s.Draft(); got.TourName != "Simien Mountains Trek" {
		t.Errorf("draft lost on failure: %+v", got)
	}

	// manual retry works
	submitter.err = nil
	submitter.number = "PHX-2026-000043"
	if _, err := s.Submit(context.Background(), submitter); err != nil {
		t.Errorf("retry failed: %v", err)
	}
	if submitter.calls != 2 {
		t.Errorf("calls = %d, want 2 (no automatic retry)", submitter.calls)
	}
}

func TestSessionSubmitInvalidDraft(t *testing.T) {
	s := NewSession(testEngine())
	d := completeDraft()
	d.TermsAccepted = false
	s.Apply(d)

	submitter := &fakeSubmitter{number: "n"}
	_, err := s.Submit(context.Background(), submitter)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if !hasFieldError(verr.Fields, "terms_accepted") {
		t.Errorf("missing terms error: %v", verr.Fields)
	}
	if submitter.calls != 0 {
		t.Error("submitter called despite validation failure")
	}
}

func TestSessionSubmitBeforePaymentStepFailsValidation(t *testing.T) {
	s := NewSession(testEngine())
	// fresh draft at step 1: every required field missing
	_, err := s.Submit(context.Background(), &fakeSubmitter{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(verr.Fields) == 0 {
		t.Error("expected field errors for empty draft")
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession(testEngine())
	s.Apply(completeDraft())
	s.Reset()
	if got := s.Draft(); got.FullName != "" || len(got.Participants) != 1 {
		t.Errorf("reset incomplete: %+v", got)
	}
}
