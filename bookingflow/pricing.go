package bookingflow

import (
	"math"

	"github.com/Davedaz23/Phoenix-Tour-sub000/models"
)

// Accommodation tiers and their price multipliers.
const (
	AccommodationStandard = "standard"
	AccommodationComfort  = "comfort"
	AccommodationLuxury   = "luxury"
	AccommodationCamping  = "camping"
)

var accommodationMultipliers = map[string]float64{
	AccommodationStandard: 1.0,
	AccommodationComfort:  1.3,
	AccommodationLuxury:   1.8,
	AccommodationCamping:  0.8,
}

// Group discount tiers. Only the highest applicable tier applies; they
// never stack (≥8 overrides ≥4).
const (
	largeGroupSize     = 8
	largeGroupDiscount = 0.85
	smallGroupSize     = 4
	smallGroupDiscount = 0.90
)

// AccommodationMultiplier returns the tier multiplier, defaulting to
// standard for unknown tiers (validation rejects those before pricing).
func AccommodationMultiplier(tier string) float64 {
	if m, ok := accommodationMultipliers[tier]; ok {
		return m
	}
	return 1.0
}

// GroupDiscount returns the single multiplier for the group size, or 1
// when no tier applies.
func GroupDiscount(groupSize int) float64 {
	switch {
	case groupSize >= largeGroupSize:
		return largeGroupDiscount
	case groupSize >= smallGroupSize:
		return smallGroupDiscount
	default:
		return 1.0
	}
}

// Price computes the total for one booking, rounded to the nearest
// integer currency unit. The currency is a label, never a multiplier.
func Price(tourPrice float64, groupSize int, accommodation string) int64 {
	base := tourPrice * float64(groupSize)
	base *= AccommodationMultiplier(accommodation)
	base *= GroupDiscount(groupSize)
	return int64(math.Round(base))
}

// Quote builds the full derived breakdown for a draft. It is never
// stored; callers recompute it on every relevant change.
func Quote(tour models.AvailableTour, groupSize int, accommodation, currency string) models.PriceQuote {
	return models.PriceQuote{
		TourName:          tour.Name,
		BasePrice:         tour.Price,
		GroupSize:         groupSize,
		AccommodationType: accommodation,
		Multiplier:        AccommodationMultiplier(accommodation),
		GroupDiscount:     GroupDiscount(groupSize),
		TotalAmount:       Price(tour.Price, groupSize, accommodation),
		Currency:          currency,
	}
}
