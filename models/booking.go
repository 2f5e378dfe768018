package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// Participant is one traveler on a booking.
type Participant struct {
	Name                string `json:"name" binding:"required"`
	Age                 int    `json:"age" binding:"required,min=0"`
	Gender              string `json:"gender" binding:"required"`
	SpecialRequirements string `json:"special_requirements,omitempty"`
}

type (
	ParticipantList []Participant
	DietaryList     []string
)

// ═══════════════════════════════════════════════════════════
// Main Booking Model (GORM)
// ═══════════════════════════════════════════════════════════

type Booking struct {
	ID                  uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	BookingNumber       string          `json:"booking_number" gorm:"uniqueIndex;not null"`
	TourID              uuid.UUID       `json:"tour_id" gorm:"type:uuid;not null;index"`
	TourName            string          `json:"tour_name" gorm:"not null"` // snapshot, survives tour renames
	TourDate            string          `json:"tour_date" gorm:"not null"`
	FullName            string          `json:"full_name" gorm:"not null"`
	Email               string          `json:"email" gorm:"not null;index"`
	Phone               string          `json:"phone" gorm:"not null"`
	Nationality         string          `json:"nationality" gorm:"not null"`
	GroupSize           int             `json:"group_size" gorm:"not null;check:group_size >= 1"`
	AccommodationType   string          `json:"accommodation_type" gorm:"not null;check:accommodation_type IN ('standard', 'comfort', 'luxury', 'camping')"`
	Participants        ParticipantList `json:"participants" gorm:"type:jsonb;not null;default:'[]'"`
	DietaryRequirements DietaryList     `json:"dietary_requirements" gorm:"type:jsonb;not null;default:'[]'"`
	MedicalNotes        string          `json:"medical_notes" gorm:"type:text"`
	Currency            string          `json:"currency" gorm:"not null;check:currency IN ('USD', 'EUR', 'GBP', 'ETB')"`
	PaymentMethod       string          `json:"payment_method" gorm:"not null"`
	TotalAmount         float64         `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	Status              string          `json:"status" gorm:"not null;index"` // pending, confirmed, completed, cancelled
	AdminNotes          *string         `json:"admin_notes,omitempty"`
	CreatedAt           time.Time       `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt           time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	ConfirmedAt         *time.Time      `json:"confirmed_at,omitempty"`
	CompletedAt         *time.Time      `json:"completed_at,omitempty"`
	CancelledAt         *time.Time      `json:"cancelled_at,omitempty"`
}

// BeforeCreate hook - auto-generate UUID v7
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	if b.Status == "" {
		b.Status = "pending"
	}
	return nil
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// CreateBookingRequest is the full wizard draft as submitted from step 4.
// Field-level validation is re-run through the bookingflow validators, so
// binding tags here stay loose on purpose (the engine owns the rules).
type CreateBookingRequest struct {
	TourName            string        `json:"tour_name" binding:"required"`
	TourDate            string        `json:"tour_date" binding:"required"`
	FullName            string        `json:"full_name" binding:"required"`
	Email               string        `json:"email" binding:"required"`
	Phone               string        `json:"phone" binding:"required"`
	Nationality         string        `json:"nationality" binding:"required"`
	GroupSize           int           `json:"group_size" binding:"required,min=1"`
	AccommodationType   string        `json:"accommodation_type" binding:"required,oneof=standard comfort luxury camping"`
	Participants        []Participant `json:"participants" binding:"required,min=1,dive"`
	DietaryRequirements []string      `json:"dietary_requirements"`
	MedicalNotes        string        `json:"medical_notes"`
	Currency            string        `json:"currency" binding:"required,oneof=USD EUR GBP ETB"`
	PaymentMethod       string        `json:"payment_method" binding:"required"`
	TermsAccepted       bool          `json:"terms_accepted"`
}

// QuoteRequest prices a draft without persisting anything.
type QuoteRequest struct {
	TourName          string `json:"tour_name" binding:"required"`
	GroupSize         int    `json:"group_size" binding:"required,min=1"`
	AccommodationType string `json:"accommodation_type" binding:"required,oneof=standard comfort luxury camping"`
}

// UpdateBookingStatusRequest drives the admin status transitions.
type UpdateBookingStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
	AdminNotes *string `json:"admin_notes"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// PriceQuote is derived, never stored.
type PriceQuote struct {
	TourName          string  `json:"tour_name"`
	BasePrice         float64 `json:"base_price"`
	GroupSize         int     `json:"group_size"`
	AccommodationType string  `json:"accommodation_type"`
	Multiplier        float64 `json:"multiplier"`
	GroupDiscount     float64 `json:"group_discount"`
	TotalAmount       int64   `json:"total_amount"`
	Currency          string  `json:"currency"`
}

// UpdateBookingStatusResponse is the slim RETURNING payload for status updates.
type UpdateBookingStatusResponse struct {
	ID            string  `json:"id"`
	BookingNumber string  `json:"booking_number"`
	Status        string  `json:"status"`
	AdminNotes    *string `json:"admin_notes"`
}

// CMSBookingListRow is the admin dashboard list view.
type CMSBookingListRow struct {
	ID            string    `json:"id"`
	BookingNumber string    `json:"booking_number"`
	TourName      string    `json:"tour_name"`
	TourDate      string    `json:"tour_date"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	GroupSize     int       `json:"group_size"`
	TotalAmount   float64   `json:"total_amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// MyBookingRow is what a signed-in traveler sees.
type MyBookingRow struct {
	BookingNumber string    `json:"booking_number"`
	TourName      string    `json:"tour_name"`
	TourDate      string    `json:"tour_date"`
	GroupSize     int       `json:"group_size"`
	TotalAmount   float64   `json:"total_amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingStatsResponse feeds the admin dashboard cards.
type BookingStatsResponse struct {
	TotalBookings     int     `json:"total_bookings"`
	PendingBookings   int     `json:"pending_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvgBookingValue   float64 `json:"avg_booking_value"`
	AvgGroupSize      float64 `json:"avg_group_size"`
}

// MonthlyRevenueRow is one point on the dashboard revenue chart.
type MonthlyRevenueRow struct {
	Month       string  `json:"month"`
	MonthNumber int     `json:"month_number"`
	Revenue     float64 `json:"revenue"`
	Bookings    int     `json:"bookings"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

func (p *ParticipantList) Scan(value interface{}) error {
	if value == nil {
		*p = make(ParticipantList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ParticipantList")
	}
	return json.Unmarshal(bytes, p)
}

func (p ParticipantList) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal([]Participant{})
	}
	return json.Marshal(p)
}

func (d *DietaryList) Scan(value interface{}) error {
	if value == nil {
		*d = make(DietaryList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan DietaryList")
	}
	return json.Unmarshal(bytes, d)
}

func (d DietaryList) Value() (driver.Value, error) {
	if d == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(d)
}
