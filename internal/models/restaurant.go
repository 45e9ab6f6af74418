package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultEmoji is used when a restaurant is created without one.
const DefaultEmoji = "🍽️"

// Restaurant is a lunch candidate. Vote counts are never stored here;
// they are derived from the votes table at read time.
type Restaurant struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"size:1000" json:"description,omitempty"`
	LogoURL     string    `gorm:"size:500" json:"logo_url,omitempty"`
	Emoji       string    `gorm:"size:16" json:"emoji"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	CreatedBy   User      `gorm:"foreignKey:CreatedByID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
