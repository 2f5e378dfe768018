package bookingflow

import (
	"testing"

	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
)

func testEngine() *Engine {
	return NewEngine([]models.AvailableTour{
		{ID: "1", Name: "Simien Mountains Trek", Price: 299, MaxParticipants: 15, Duration: "3-7 days"},
		{ID: "2", Name: "Danakil Expedition", Price: 450, MaxParticipants: 3, Duration: "4 days"},
	})
}

func TestNewDraft(t *testing.T) {
	d := NewDraft()
	if d.Step != StepTourSelection {
		t.Errorf("initial step = %d, want %d", d.Step, StepTourSelection)
	}
	if d.GroupSize != 1 {
		t.Errorf("initial group size = %d, want 1", d.GroupSize)
	}
	if len(d.Participants) != 1 {
		t.Errorf("initial participants = %d, want 1", len(d.Participants))
	}
	if d.AccommodationType != AccommodationStandard {
		t.Errorf("initial accommodation = %q, want standard", d.AccommodationType)
	}
}

func TestStepNavigation(t *testing.T) {
	d := NewDraft()

	// prev at step 1 is a no-op
	if got := d.Prev(); got.Step != StepTourSelection {
		t.Errorf("Prev at step 1 moved to %d", got.Step)
	}

	d = d.Next().Next().Next()
	if d.Step != StepPayment {
		t.Fatalf("after 3 Next: step %d, want %d", d.Step, StepPayment)
	}

	// next at step 4 is a no-op
	if got := d.Next(); got.Step != StepPayment {
		t.Errorf("Next at step 4 moved to %d", got.Step)
	}

	if got := d.Prev(); got.Step != StepPreferences {
		t.Errorf("Prev from step 4 = %d, want %d", got.Step, StepPreferences)
	}
}

func TestTransitionsDoNotMutateOriginal(t *testing.T) {
	d := NewDraft()
	_ = d.WithFullName("Abebe Bikila").Next()
	if d.FullName != "" || d.Step != StepTourSelection {
		t.Error("transition mutated the original draft")
	}
}

func TestRepriceOnTransitions(t *testing.T) {
	e := testEngine()
	d := NewDraft()

	d = e.SelectTour(d, "Simien Mountains Trek")
	if d.TotalAmount != 299 {
		t.Errorf("after select: total = %d, want 299", d.TotalAmount)
	}

	d = e.SetGroupSize(d, 4)
	if d.TotalAmount != 1076 { // round(299*4*0.9)
		t.Errorf("after group size 4: total = %d, want 1076", d.TotalAmount)
	}

	d = e.SetAccommodation(d, AccommodationComfort)
	if d.TotalAmount != 1399 { // round(299*4*1.3*0.9)
		t.Errorf("after comfort: total = %d, want 1399", d.TotalAmount)
	}

	d = e.SelectTour(d, "No Such Tour")
	if d.TotalAmount != 0 {
		t.Errorf("unresolved tour: total = %d, want 0", d.TotalAmount)
	}
}

func TestSetGroupSizeClampsToOne(t *testing.T) {
	e := testEngine()
	d := e.SelectTour(NewDraft(), "Simien Mountains Trek")
	d = e.SetGroupSize(d, 0)
	if d.GroupSize != 1 {
		t.Errorf("group size = %d, want 1", d.GroupSize)
	}
}

func TestParticipantBounds(t *testing.T) {
	e := testEngine()
	d := e.SelectTour(NewDraft(), "Danakil Expedition") // max 3

	d = e.AddParticipant(d)
	d = e.AddParticipant(d)
	if len(d.Participants) != 3 {
		t.Fatalf("participants = %d, want 3", len(d.Participants))
	}

	// adding beyond maxParticipants is a no-op
	d = e.AddParticipant(d)
	if len(d.Participants) != 3 {
		t.Errorf("cap exceeded: participants = %d, want 3", len(d.Participants))
	}

	d = RemoveParticipant(d, 1)
	d = RemoveParticipant(d, 1)
	if len(d.Participants) != 1 {
		t.Fatalf("participants = %d, want 1", len(d.Participants))
	}

	// removing the last remaining participant is a no-op
	d = RemoveParticipant(d, 0)
	if len(d.Participants) != 1 {
		t.Errorf("minimum violated: participants = %d, want 1", len(d.Participants))
	}
}

func TestParticipantCapFallsBackWhenTourUnresolved(t *testing.T) {
	e := testEngine()
	d := NewDraft() // no tour selected
	for i := 0; i < DefaultMaxParticipants+5; i++ {
		d = e.AddParticipant(d)
	}
	if len(d.Participants) != DefaultMaxParticipants {
		t.Errorf("participants = %d, want %d", len(d.Participants), DefaultMaxParticipants)
	}
}

func TestWithParticipant(t *testing.T) {
	d := NewDraft()
	d = d.WithParticipant(0, models.Participant{Name: "Abebe", Age: 34, Gender: "male"})
	if d.Participants[0].Name != "Abebe" {
		t.Errorf("participant not updated: %+v", d.Participants[0])
	}
	// out of range is ignored
	d = d.WithParticipant(5, models.Participant{Name: "ghost"})
	if len(d.Participants) != 1 {
		t.Error("out-of-range update changed the list")
	}
}

func TestDraftFromRequestRoundTrip(t *testing.T) {
	req := models.CreateBookingRequest{
		TourName:          "Simien Mountains Trek",
		TourDate:          "2026-10-12",
		FullName:          "Abebe Bikila",
		Email:             "abebe@example.com",
		Phone:             "+251911234567",
		Nationality:       "Ethiopian",
		GroupSize:         4,
		AccommodationType: AccommodationComfort,
		Participants:      []models.Participant{{Name: "Abebe", Age: 34, Gender: "male"}},
		Currency:          "USD",
		PaymentMethod:     "card",
		TermsAccepted:     true,
	}
	d := DraftFromRequest(req)
	if d.Step != StepPayment {
		t.Errorf("step = %d, want %d", d.Step, StepPayment)
	}
	if d.TourName != req.TourName || d.GroupSize != 4 || !d.TermsAccepted {
		t.Errorf("fields not carried over: %+v", d)
	}
}
