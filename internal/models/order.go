package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is one user's itemized order against a restaurant for a given day.
// MoneyPaid is nil until the user records a payment; totals are computed by
// callers at read time and never persisted.
type Order struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Item         string    `gorm:"size:500;not null" json:"item"`
	Cost         float64   `gorm:"not null" json:"cost"`
	Notes        string    `gorm:"size:1000" json:"notes,omitempty"`
	MoneyPaid    *float64  `json:"money_paid"`
	OrderDate    time.Time `gorm:"not null;index" json:"order_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
}
