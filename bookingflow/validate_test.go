package bookingflow

import (
	"testing"

	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
)

func completeDraft() Draft {
	d := DraftFromRequest(models.CreateBookingRequest{
		TourName:          "Simien Mountains Trek",
		TourDate:          "2026-10-12",
		FullName:          "Abebe Bikila",
		Email:             "abebe@example.com",
		Phone:             "+251 911 234 567",
		Nationality:       "Ethiopian",
		GroupSize:         2,
		AccommodationType: AccommodationStandard,
		Participants:      []models.Participant{{Name: "Abebe", Age: 34, Gender: "male"}},
		Currency:          "USD",
		PaymentMethod:     "card",
		TermsAccepted:     true,
	})
	return d
}

func hasFieldError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestValidateCompleteDraft(t *testing.T) {
	if errs := Validate(completeDraft()); len(errs) != 0 {
		t.Errorf("complete draft failed validation: %v", errs)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(Draft) Draft
		wantField string
	}{
		{"missing tour", func(d Draft) Draft { d.TourName = "" ; return d }, "tour_name"},
		{"missing date", func(d Draft) Draft { d.TourDate = "" ; return d }, "tour_date"},
		{"blank name", func(d Draft) Draft { d.FullName = "   " ; return d }, "full_name"},
		{"bad email", func(d Draft) Draft { d.Email = "not-an-email" ; return d }, "email"},
		{"bad phone", func(d Draft) Draft { d.Phone = "abc" ; return d }, "phone"},
		{"missing nationality", func(d Draft) Draft { d.Nationality = "" ; return d }, "nationality"},
		{"zero group", func(d Draft) Draft { d.GroupSize = 0 ; return d }, "group_size"},
		{"bad tier", func(d Draft) Draft { d.AccommodationType = "igloo" ; return d }, "accommodation_type"},
		{"terms not accepted", func(d Draft) Draft { d.TermsAccepted = false ; return d }, "terms_accepted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.mutate(completeDraft()))
			if !hasFieldError(errs, tt.wantField) {
				t.Errorf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateIgnoresStep(t *testing.T) {
	// a submit attempted before step 4 fails exactly like one from step 4
	d := completeDraft()
	d.FullName = ""

	d1 := d
	d1.Step = StepTourSelection
	d4 := d
	d4.Step = StepPayment

	errs1 := Validate(d1)
	errs4 := Validate(d4)
	if len(errs1) != len(errs4) {
		t.Errorf("validation differs by step: %d vs %d errors", len(errs1), len(errs4))
	}
}

func TestValidEmailAndPhoneFormats(t *testing.T) {
	good := []struct{ email, phone string }{
		{"a@b.co", "+251911234567"},
		{"first.last@sub.domain.org", "0911 23 45 67"},
		{"x+tag@example.com", "(202) 555-0147"},
	}
	for _, g := range good {
		d := completeDraft()
		d.Email, d.Phone = g.email, g.phone
		if errs := Validate(d); len(errs) != 0 {
			t.Errorf("%q / %q should be valid, got %v", g.email, g.phone, errs)
		}
	}
}
