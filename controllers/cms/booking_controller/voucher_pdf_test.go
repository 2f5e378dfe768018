package booking_controller

import (
	"bytes"
	"testing"
	"time"

	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
	"github.com/google/uuid"
)

func TestGenerateBookingVoucherPDF(t *testing.T) {
	booking := &models.Booking{
		ID:                uuid.Must(uuid.NewV7()),
		BookingNumber:     "PHX-2026-000123",
		TourName:          "Simien Mountains Trek",
		TourDate:          "2026-10-05",
		FullName:          "Abebe Bikila",
		Email:             "abebe@example.com",
		Phone:             "+251911234567",
		Nationality:       "Ethiopian",
		GroupSize:         2,
		AccommodationType: "comfort",
		Participants: models.ParticipantList{
			{Name: "Abebe Bikila", Age: 34, Gender: "male"},
			{Name: "Derartu Tulu", Age: 30, Gender: "female"},
		},
		Currency:      "USD",
		PaymentMethod: "card",
		TotalAmount:   777,
		Status:        "confirmed",
		CreatedAt:     time.Now(),
	}

	buf := generateBookingVoucherPDF(booking)
	if buf == nil || buf.Len() == 0 {
		t.Fatal("expected a non-empty PDF buffer")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header")
	}
}
