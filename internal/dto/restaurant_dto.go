package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRestaurantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
	Emoji       string `json:"emoji"`
}

// UpdateRestaurantRequest uses empty-means-keep semantics; IsActive is a
// pointer so the owner can hide a restaurant without deleting it.
type UpdateRestaurantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
	Emoji       string `json:"emoji"`
	IsActive    *bool  `json:"isActive"`
}

type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username *string   `json:"username"`
	Email    string    `json:"email"`
}

// RestaurantResponse carries today's derived vote state alongside the record.
type RestaurantResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	LogoURL     string        `json:"logo_url,omitempty"`
	Emoji       string        `json:"emoji"`
	IsActive    bool          `json:"is_active"`
	Votes       int           `json:"votes"`
	Voters      []UserSummary `json:"voters"`
	CreatedBy   UserSummary   `json:"created_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type LogoData struct {
	Image  string  `json:"image"`
	Name   string  `json:"name"`
	Ticker *string `json:"ticker"`
}

type UploadData struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
