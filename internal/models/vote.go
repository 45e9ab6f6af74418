package models

import (
	"time"

	"github.com/google/uuid"
)

// Vote is one user's vote for one restaurant on one regional calendar day.
// VoteDate is always midnight in the regional timezone. The unique index on
// (user_id, vote_date) makes "one vote per user per day" a database guarantee
// rather than an application-level read-then-write.
type Vote struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_day" json:"user_id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	VoteDate     time.Time `gorm:"not null;uniqueIndex:idx_votes_user_day" json:"vote_date"`
	CreatedAt    time.Time `json:"created_at"`

	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
}
