package bookingflow

import (
	"testing"

	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name          string
		tourPrice     float64
		groupSize     int
		accommodation string
		want          int64
	}{
		{"single standard", 100, 1, AccommodationStandard, 100},
		{"small group discount", 100, 4, AccommodationStandard, 360},
		{"large group luxury", 100, 8, AccommodationLuxury, 1224},
		{"comfort small group", 299, 4, AccommodationComfort, 1399}, // round(1398.87)
		{"camping", 100, 1, AccommodationCamping, 80},
		{"group of 3 no discount", 100, 3, AccommodationStandard, 300},
		{"group of 7 small tier", 100, 7, AccommodationStandard, 630},
		{"unknown tier prices as standard", 100, 1, "igloo", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Price(tt.tourPrice, tt.groupSize, tt.accommodation); got != tt.want {
				t.Errorf("Price(%v, %d, %s) = %d, want %d",
					tt.tourPrice, tt.groupSize, tt.accommodation, got, tt.want)
			}
		})
	}
}

func TestGroupDiscountTiersExclusive(t *testing.T) {
	// the ≥8 tier overrides the ≥4 tier; they never stack
	if got := GroupDiscount(8); got != 0.85 {
		t.Errorf("GroupDiscount(8) = %v, want 0.85", got)
	}
	if got := GroupDiscount(12); got != 0.85 {
		t.Errorf("GroupDiscount(12) = %v, want 0.85", got)
	}
	if got := GroupDiscount(4); got != 0.90 {
		t.Errorf("GroupDiscount(4) = %v, want 0.90", got)
	}
	if got := GroupDiscount(1); got != 1.0 {
		t.Errorf("GroupDiscount(1) = %v, want 1.0", got)
	}
}

func TestQuote(t *testing.T) {
	tour := models.AvailableTour{Name: "Simien Mountains Trek", Price: 299, MaxParticipants: 15}
	q := Quote(tour, 4, AccommodationComfort, "USD")

	if q.TotalAmount != 1399 {
		t.Errorf("TotalAmount = %d, want 1399", q.TotalAmount)
	}
	if q.Multiplier != 1.3 {
		t.Errorf("Multiplier = %v, want 1.3", q.Multiplier)
	}
	if q.GroupDiscount != 0.90 {
		t.Errorf("GroupDiscount = %v, want 0.90", q.GroupDiscount)
	}
	if q.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", q.Currency)
	}
}

func TestCurrencyIsLabelOnly(t *testing.T) {
	tour := models.AvailableTour{Name: "Trek", Price: 100}
	usd := Quote(tour, 2, AccommodationStandard, "USD")
	etb := Quote(tour, 2, AccommodationStandard, "ETB")
	if usd.TotalAmount != etb.TotalAmount {
		t.Errorf("currency changed the total: USD=%d ETB=%d", usd.TotalAmount, etb.TotalAmount)
	}
}
