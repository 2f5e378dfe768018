package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a blog article on the marketing site.
type Post struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Slug       string    `json:"slug" gorm:"uniqueIndex;not null"`
	Title      string    `json:"title" gorm:"not null"`
	Excerpt    string    `json:"excerpt" gorm:"not null"`
	Body       string    `json:"body" gorm:"type:text;not null"`
	CoverImage string    `json:"cover_image" gorm:"type:text"` // Cloudinary URL
	Author     string    `json:"author" gorm:"not null"`
	Tags       TagsList  `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	Status     string    `json:"status" gorm:"not null;check:status IN ('Published', 'Draft');index"`
	Views      int       `json:"views" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Post) TableName() string {
	return "posts"
}

type PostRequest struct {
	Slug       string   `json:"slug" binding:"required"`
	Title      string   `json:"title" binding:"required"`
	Excerpt    string   `json:"excerpt" binding:"required"`
	Body       string   `json:"body" binding:"required"`
	CoverImage string   `json:"cover_image"`
	Author     string   `json:"author" binding:"required"`
	Tags       []string `json:"tags"`
	Status     string   `json:"status" binding:"required,oneof=Published Draft"`
}

type UpdatePostRequest struct {
	Slug       *string   `json:"slug"`
	Title      *string   `json:"title"`
	Excerpt    *string   `json:"excerpt"`
	Body       *string   `json:"body"`
	CoverImage *string   `json:"cover_image"`
	Author     *string   `json:"author"`
	Tags       *[]string `json:"tags"`
	Status     *string   `json:"status" binding:"omitempty,oneof=Published Draft"`
}

// PostListRow is the public blog index view (no body).
type PostListRow struct {
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	CoverImage string    `json:"cover_image"`
	Author     string    `json:"author"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
}
