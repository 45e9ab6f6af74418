package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	RestaurantID string   `json:"restaurantId"`
	Item         string   `json:"item"`
	Cost         *float64 `json:"cost"`
	Notes        string   `json:"notes"`
	MoneyPaid    *float64 `json:"moneyPaid"`
}

// UpdateOrderRequest: nil means keep the stored value.
type UpdateOrderRequest struct {
	Item      string   `json:"item"`
	Cost      *float64 `json:"cost"`
	Notes     *string  `json:"notes"`
	MoneyPaid *float64 `json:"moneyPaid"`
}

type RestaurantSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type OrderResponse struct {
	ID         uuid.UUID         `json:"id"`
	Restaurant RestaurantSummary `json:"restaurant"`
	User       UserSummary       `json:"user"`
	Item       string            `json:"item"`
	Cost       float64           `json:"cost"`
	Notes      string            `json:"notes,omitempty"`
	MoneyPaid  *float64          `json:"money_paid"`
	OrderDate  time.Time         `json:"order_date"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
