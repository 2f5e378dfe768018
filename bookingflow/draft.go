// Package bookingflow drives the 4-step booking wizard: a linear step
// machine over an immutable draft, with a deterministic price recomputed
// on every change to tour, group size or accommodation tier.
package bookingflow

import "github.com/Davedaz23/Phoenix-Tour-sub000/models"

// Step is the wizard position, 1-based.
type Step int

const (
	StepTourSelection Step = iota + 1
	StepPersonalInfo
	StepPreferences
	StepPayment
)

// DefaultMaxParticipants caps the participant list when the selected
// tour cannot be resolved.
const DefaultMaxParticipants = 20

// Draft accumulates the wizard state. It has value semantics: every
// transition returns a new Draft, so a step can be unit-tested without
// any UI and a failed submit leaves the caller's copy untouched.
type Draft struct {
	Step Step

	// step 1: tour & date
	TourName string
	TourDate string

	// step 2: personal info
	FullName    string
	Email       string
	Phone       string
	Nationality string

	// step 3: preferences
	GroupSize           int
	AccommodationType   string
	Participants        []models.Participant
	DietaryRequirements []string
	MedicalNotes        string

	// step 4: payment
	Currency      string
	PaymentMethod string
	TermsAccepted bool

	// derived, recomputed by the engine
	TotalAmount int64
}

// NewDraft returns the wizard's initial state: step 1, a group of one
// with a single blank participant, standard accommodation.
func NewDraft() Draft {
	return Draft{
		Step:              StepTourSelection,
		GroupSize:         1,
		AccommodationType: AccommodationStandard,
		Participants:      []models.Participant{{}},
		Currency:          "USD",
	}
}

// Next advances one step; a no-op on the payment step.
func (d Draft) Next() Draft {
	if d.Step < StepPayment {
		d.Step++
	}
	return d
}

// Prev moves back one step; a no-op on the first step.
func (d Draft) Prev() Draft {
	if d.Step > StepTourSelection {
		d.Step--
	}
	return d
}

// Field transitions. One per field; validation is attached separately
// and never blocks navigation.

func (d Draft) WithTourDate(date string) Draft {
	d.TourDate = date
	return d
}

func (d Draft) WithFullName(name string) Draft {
	d.FullName = name
	return d
}

func (d Draft) WithEmail(email string) Draft {
	d.Email = email
	return d
}

func (d Draft) WithPhone(phone string) Draft {
	d.Phone = phone
	return d
}

func (d Draft) WithNationality(nationality string) Draft {
	d.Nationality = nationality
	return d
}

func (d Draft) WithDietaryRequirements(reqs []string) Draft {
	d.DietaryRequirements = append([]string(nil), reqs...)
	return d
}

func (d Draft) WithMedicalNotes(notes string) Draft {
	d.MedicalNotes = notes
	return d
}

func (d Draft) WithCurrency(currency string) Draft {
	d.Currency = currency
	return d
}

func (d Draft) WithPaymentMethod(method string) Draft {
	d.PaymentMethod = method
	return d
}

func (d Draft) WithTermsAccepted(accepted bool) Draft {
	d.TermsAccepted = accepted
	return d
}

// WithParticipant replaces the participant at index i; out-of-range
// indexes are ignored.
func (d Draft) WithParticipant(i int, p models.Participant) Draft {
	if i < 0 || i >= len(d.Participants) {
		return d
	}
	participants := append([]models.Participant(nil), d.Participants...)
	participants[i] = p
	d.Participants = participants
	return d
}

// RemoveParticipant removes index i but refuses to go below one
// participant.
func RemoveParticipant(d Draft, i int) Draft {
	if len(d.Participants) <= 1 || i < 0 || i >= len(d.Participants) {
		return d
	}
	participants := make([]models.Participant, 0, len(d.Participants)-1)
	participants = append(participants, d.Participants[:i]...)
	participants = append(participants, d.Participants[i+1:]...)
	d.Participants = participants
	return d
}

// DraftFromRequest rebuilds a submitted wizard state from the API
// payload, positioned at the payment step.
func DraftFromRequest(req models.CreateBookingRequest) Draft {
	return Draft{
		Step:                StepPayment,
		TourName:            req.TourName,
		TourDate:            req.TourDate,
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		Nationality:         req.Nationality,
		GroupSize:           req.GroupSize,
		AccommodationType:   req.AccommodationType,
		Participants:        req.Participants,
		DietaryRequirements: req.DietaryRequirements,
		MedicalNotes:        req.MedicalNotes,
		Currency:            req.Currency,
		PaymentMethod:       req.PaymentMethod,
		TermsAccepted:       req.TermsAccepted,
	}
}
