package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Traveler is a site visitor who signed in with Google. Bookings are made
// as a guest (keyed by email), so the account only unlocks "my bookings"
// and a saved profile.
type Traveler struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email         string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	GoogleID      string    `json:"googleId" gorm:"column:google_id;type:varchar(255);uniqueIndex;not null"`
	Provider      string    `json:"provider" gorm:"type:varchar(50);default:'google'"`
	EmailVerified bool      `json:"emailVerified" gorm:"column:email_verified;default:true"`
	Avatar        *string   `json:"avatar,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Traveler) TableName() string {
	return "travelers"
}

func (t *Traveler) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TravelerResponse is the public-facing traveler data
type TravelerResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Provider      string    `json:"provider"`
	EmailVerified bool      `json:"email_verified"`
	Avatar        *string   `json:"avatar,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToResponse converts Traveler to TravelerResponse
func (t *Traveler) ToResponse() TravelerResponse {
	return TravelerResponse{
		ID:            t.ID,
		Email:         t.Email,
		Name:          t.Name,
		Provider:      t.Provider,
		EmailVerified: t.EmailVerified,
		Avatar:        t.Avatar,
		CreatedAt:     t.CreatedAt,
	}
}

// GoogleUserInfo represents data from Google OAuth
type GoogleUserInfo struct {
	Sub           string `json:"sub"` // Google user ID
	ID            string `json:"id"`  // Alternative field name
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	Traveler TravelerResponse `json:"traveler"`
	Token    string           `json:"token"`
}
