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
// Enumerations (closed sets, validated with binding:oneof)
// ═══════════════════════════════════════════════════════════

// Tour categories. "All Tours" is a storefront sentinel, never stored.
const (
	CategoryAllTours = "All Tours"
)

var TourCategories = []string{
	"Trekking & Hiking",
	"Historic Route",
	"Cultural Tours",
	"Wildlife Safari",
	"Adventure",
	"City Tours",
}

var TourRegions = []string{
	"Simien Mountains",
	"Bale Mountains",
	"Danakil Depression",
	"Omo Valley",
	"Lalibela",
	"Axum",
	"Gondar",
	"Addis Ababa",
}

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// ItineraryDay is one day of a tour program. Day starts at 1.
type ItineraryDay struct {
	Day         int    `json:"day" binding:"required,min=1" example:"1"`
	Title       string `json:"title" binding:"required" example:"Arrival in Debark"`
	Description string `json:"description" binding:"required" example:"Meet the crew and drive to the park gate."`
}

// InclusionGroup groups what the tour price covers (or excludes).
type InclusionGroup struct {
	Category string   `json:"category" binding:"required" example:"Meals"`
	Items    []string `json:"items" binding:"required" example:"['Breakfast', 'Packed lunch']"`
}

type TourImage struct {
	URL   string `json:"url" binding:"required"`
	Order *int   `json:"order,omitempty"`
}

type TourMedia struct {
	Primary TourImage   `json:"primary" binding:"required"`
	Other   []TourImage `json:"other,omitempty"`
}

// Custom slice types so GORM can store them as jsonb
type (
	ItineraryList  []ItineraryDay
	InclusionsList []InclusionGroup
	TagsList       []string
	DatesList      []string
)

// ═══════════════════════════════════════════════════════════
// Main Tour Model (GORM)
// ═══════════════════════════════════════════════════════════

type Tour struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title            string         `json:"title" gorm:"not null;index"`
	ShortDescription string         `json:"short_description" gorm:"not null"`
	Description      string         `json:"description" gorm:"not null"`
	Category         string         `json:"category" gorm:"not null;index"`
	Region           string         `json:"region" gorm:"not null;index"`
	Difficulty       string         `json:"difficulty" gorm:"not null;check:difficulty IN ('Easy', 'Moderate', 'Challenging')"`
	Duration         string         `json:"duration" gorm:"not null"` // free text with a leading day count, e.g. "3-7 days"
	Price            float64        `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Rating           float64        `json:"rating" gorm:"type:numeric(3,2);default:0"`
	MaxParticipants  int            `json:"max_participants" gorm:"not null;default:20;check:max_participants > 0"`
	AvailableDates   DatesList      `json:"available_dates" gorm:"type:jsonb;not null;default:'[]'"`
	Tags             TagsList       `json:"tags" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	Itinerary        ItineraryList  `json:"itinerary" gorm:"type:jsonb;not null;default:'[]'"`
	Inclusions       InclusionsList `json:"inclusions" gorm:"type:jsonb;not null;default:'[]'"`
	Exclusions       InclusionsList `json:"exclusions" gorm:"type:jsonb;not null;default:'[]'"`
	Media            TourMedia      `json:"media" gorm:"type:jsonb;not null;default:'{}'"`
	Status           string         `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	Views            int            `json:"views" gorm:"default:0;index:idx_tours_views,sort:desc"`
	CreatedAt        time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (t *Tour) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Tour) TableName() string {
	return "tours"
}

// ═══════════════════════════════════════════════════════════
// Storefront Views
// ═══════════════════════════════════════════════════════════

// TourSummary is the storefront card view, and the record the catalog
// filter engine operates on.
type TourSummary struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Region           string   `json:"region"`
	Difficulty       string   `json:"difficulty"`
	Duration         string   `json:"duration"`
	Price            float64  `json:"price"`
	Rating           float64  `json:"rating"`
	Tags             []string `json:"tags"`
	Image            string   `json:"image"`
}

// ToSummary flattens a Tour for the storefront list.
func (t *Tour) ToSummary() TourSummary {
	return TourSummary{
		ID:               t.ID.String(),
		Title:            t.Title,
		ShortDescription: t.ShortDescription,
		Description:      t.Description,
		Category:         t.Category,
		Region:           t.Region,
		Difficulty:       t.Difficulty,
		Duration:         t.Duration,
		Price:            t.Price,
		Rating:           t.Rating,
		Tags:             t.Tags,
		Image:            t.Media.Primary.URL,
	}
}

// AvailableTour is what the booking wizard needs to price a trip.
type AvailableTour struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Duration        string   `json:"duration"`
	Price           float64  `json:"price"`
	MaxParticipants int      `json:"maxParticipants"`
	AvailableDates  []string `json:"availableDates"`
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type TourRequest struct {
	Title            string           `json:"title" binding:"required" example:"Simien Mountains Trek"`
	ShortDescription string           `json:"short_description" binding:"required"`
	Description      string           `json:"description" binding:"required"`
	Category         string           `json:"category" binding:"required"`
	Region           string           `json:"region" binding:"required"`
	Difficulty       string           `json:"difficulty" binding:"required,oneof=Easy Moderate Challenging"`
	Duration         string           `json:"duration" binding:"required" example:"3-7 days"`
	Price            float64          `json:"price" binding:"required,min=0" example:"299"`
	MaxParticipants  int              `json:"max_participants" binding:"required,min=1" example:"15"`
	AvailableDates   []string         `json:"available_dates" binding:"required"`
	Tags             []string         `json:"tags" binding:"required"`
	Itinerary        []ItineraryDay   `json:"itinerary" binding:"required,dive"`
	Inclusions       []InclusionGroup `json:"inclusions" binding:"omitempty,dive"`
	Exclusions       []InclusionGroup `json:"exclusions" binding:"omitempty,dive"`
	Media            TourMedia        `json:"media" binding:"required"`
	Status           string           `json:"status" binding:"required,oneof=Active Draft" example:"Draft"`
}

type UpdateTourRequest struct {
	Title            *string           `json:"title"`
	ShortDescription *string           `json:"short_description"`
	Description      *string           `json:"description"`
	Category         *string           `json:"category"`
	Region           *string           `json:"region"`
	Difficulty       *string           `json:"difficulty" binding:"omitempty,oneof=Easy Moderate Challenging"`
	Duration         *string           `json:"duration"`
	Price            *float64          `json:"price" binding:"omitempty,min=0"`
	MaxParticipants  *int              `json:"max_participants" binding:"omitempty,min=1"`
	AvailableDates   *[]string         `json:"available_dates"`
	Tags             *[]string         `json:"tags"`
	Itinerary        *[]ItineraryDay   `json:"itinerary" binding:"omitempty,dive"`
	Inclusions       *[]InclusionGroup `json:"inclusions" binding:"omitempty,dive"`
	Exclusions       *[]InclusionGroup `json:"exclusions" binding:"omitempty,dive"`
	Media            *TourMedia        `json:"media"`
	Status           *string           `json:"status" binding:"omitempty,oneof=Active Draft"`
}

// ═══════════════════════════════════════════════════════════
// Stats Response
// ═══════════════════════════════════════════════════════════

type TourStatsResponse struct {
	TotalTours       int     `json:"total_tours"`
	ActiveTours      int     `json:"active_tours"`
	DraftTours       int     `json:"draft_tours"`
	PercentageActive float64 `json:"percentage_active"`
	AveragePrice     float64 `json:"average_price"`
	AverageRating    float64 `json:"average_rating"`
	MostViewedTitle  string  `json:"most_viewed_title"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

func (i *ItineraryList) Scan(value interface{}) error {
	if value == nil {
		*i = make(ItineraryList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ItineraryList")
	}
	return json.Unmarshal(bytes, i)
}

func (i ItineraryList) Value() (driver.Value, error) {
	if i == nil {
		return json.Marshal([]ItineraryDay{})
	}
	return json.Marshal(i)
}

func (l *InclusionsList) Scan(value interface{}) error {
	if value == nil {
		*l = make(InclusionsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan InclusionsList")
	}
	return json.Unmarshal(bytes, l)
}

func (l InclusionsList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]InclusionGroup{})
	}
	return json.Marshal(l)
}

func (t *TagsList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TagsList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

func (d *DatesList) Scan(value interface{}) error {
	if value == nil {
		*d = make(DatesList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan DatesList")
	}
	return json.Unmarshal(bytes, d)
}

func (d DatesList) Value() (driver.Value, error) {
	if d == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(d)
}

func (m *TourMedia) Scan(value interface{}) error {
	if value == nil {
		*m = TourMedia{Other: make([]TourImage, 0)}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TourMedia")
	}
	return json.Unmarshal(bytes, m)
}

func (m TourMedia) Value() (driver.Value, error) {
	return json.Marshal(m)
}
