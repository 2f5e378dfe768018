package bookingflow

import "github.com/Davedaz23/Phoenix-Tour-sub000/models"

// Engine resolves tour names against the bookable tour list and owns the
// transitions that must reprice the draft or respect per-tour limits.
type Engine struct {
	tours map[string]models.AvailableTour
}

// NewEngine indexes the bookable tours by name.
func NewEngine(tours []models.AvailableTour) *Engine {
	byName := make(map[string]models.AvailableTour, len(tours))
	for _, t := range tours {
		byName[t.Name] = t
	}
	return &Engine{tours: byName}
}

// Lookup resolves a tour by its display name.
func (e *Engine) Lookup(name string) (models.AvailableTour, bool) {
	t, ok := e.tours[name]
	return t, ok
}

// SelectTour sets the tour and reprices. An unresolvable name still
// lands in the draft (the user typed it) but prices to zero.
func (e *Engine) SelectTour(d Draft, name string) Draft {
	d.TourName = name
	return e.Reprice(d)
}

// SetGroupSize sets the head count and reprices. Sizes below 1 clamp
// to 1.
func (e *Engine) SetGroupSize(d Draft, n int) Draft {
	if n < 1 {
		n = 1
	}
	d.GroupSize = n
	return e.Reprice(d)
}

// SetAccommodation sets the tier and reprices.
func (e *Engine) SetAccommodation(d Draft, tier string) Draft {
	d.AccommodationType = tier
	return e.Reprice(d)
}

// AddParticipant appends a blank participant, capped at the selected
// tour's limit (DefaultMaxParticipants when the tour is unresolved).
func (e *Engine) AddParticipant(d Draft) Draft {
	max := DefaultMaxParticipants
	if tour, ok := e.Lookup(d.TourName); ok && tour.MaxParticipants > 0 {
		max = tour.MaxParticipants
	}
	if len(d.Participants) >= max {
		return d
	}
	participants := append([]models.Participant(nil), d.Participants...)
	d.Participants = append(participants, models.Participant{})
	return d
}

// Reprice recomputes TotalAmount from the current tour, group size and
// accommodation tier. Unresolvable tours price to zero.
func (e *Engine) Reprice(d Draft) Draft {
	tour, ok := e.Lookup(d.TourName)
	if !ok {
		d.TotalAmount = 0
		return d
	}
	d.TotalAmount = Price(tour.Price, d.GroupSize, d.AccommodationType)
	return d
}

// QuoteFor prices a draft without mutating it.
func (e *Engine) QuoteFor(d Draft) (models.PriceQuote, bool) {
	tour, ok := e.Lookup(d.TourName)
	if !ok {
		return models.PriceQuote{}, false
	}
	return Quote(tour, d.GroupSize, d.AccommodationType, d.Currency), true
}
