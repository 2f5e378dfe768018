package bookingflow

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{6,19}$`)
)

// FieldError is a per-field validation failure, surfaced inline next to
// the offending input. Field errors gate Submit only, never navigation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate runs every required-field validator across all steps. The
// result is identical regardless of the draft's current step, so a
// premature submit fails exactly like one from the payment step.
func Validate(d Draft) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(d.TourName) == "" {
		errs = append(errs, FieldError{"tour_name", "Please select a tour"})
	}
	if strings.TrimSpace(d.TourDate) == "" {
		errs = append(errs, FieldError{"tour_date", "Please select a date"})
	}
	if strings.TrimSpace(d.FullName) == "" {
		errs = append(errs, FieldError{"full_name", "Full name is required"})
	}
	if !emailRe.MatchString(d.Email) {
		errs = append(errs, FieldError{"email", "A valid email address is required"})
	}
	if !phoneRe.MatchString(d.Phone) {
		errs = append(errs, FieldError{"phone", "A valid phone number is required"})
	}
	if strings.TrimSpace(d.Nationality) == "" {
		errs = append(errs, FieldError{"nationality", "Nationality is required"})
	}
	if d.GroupSize < 1 {
		errs = append(errs, FieldError{"group_size", "Group size must be at least 1"})
	}
	if _, ok := accommodationMultipliers[d.AccommodationType]; !ok {
		errs = append(errs, FieldError{"accommodation_type", "Unknown accommodation type"})
	}
	if !d.TermsAccepted {
		errs = append(errs, FieldError{"terms_accepted", "You must accept the terms and conditions"})
	}

	return errs
}
