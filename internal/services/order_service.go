package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bglit/lunch-backend/internal/dayclock"
	"github.com/bglit/lunch-backend/internal/dto"
	"github.com/bglit/lunch-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db, now: time.Now}
}

func (s *OrderService) Create(userID uuid.UUID, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if req.RestaurantID == "" || strings.TrimSpace(req.Item) == "" || req.Cost == nil {
		return nil, validationError("restaurant, item, and cost are required")
	}
	if *req.Cost < 0 {
		return nil, validationError("cost cannot be negative")
	}
	if req.MoneyPaid != nil && *req.MoneyPaid < 0 {
		return nil, validationError("money paid cannot be negative")
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, validationError("invalid restaurant id")
	}

	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		return nil, ErrRestaurantNotFound
	}

	order := models.Order{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		UserID:       userID,
		Item:         strings.TrimSpace(req.Item),
		Cost:         *req.Cost,
		Notes:        strings.TrimSpace(req.Notes),
		MoneyPaid:    req.MoneyPaid,
		OrderDate:    dayclock.DayOf(s.now()),
	}

	if err := s.db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return s.Get(order.ID)
}

// List returns today's orders, newest first, optionally filtered by restaurant.
func (s *OrderService) List(restaurantID *uuid.UUID) ([]dto.OrderResponse, error) {
	day := dayclock.DayOf(s.now())

	query := s.db.Preload("User").Preload("Restaurant").Where("order_date = ?", day)
	if restaurantID != nil {
		query = query.Where("restaurant_id = ?", *restaurantID)
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	result := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, toOrderResponse(&orders[i]))
	}
	return result, nil
}

func (s *OrderService) Get(id uuid.UUID) (*dto.OrderResponse, error) {
	var order models.Order
	if err := s.db.Preload("User").Preload("Restaurant").First(&order, "id = ?", id).Error; err != nil {
		return nil, ErrOrderNotFound
	}

	resp := toOrderResponse(&order)
	return &resp, nil
}

func (s *OrderService) Update(userID, id uuid.UUID, req *dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrNotOwner
	}

	if req.Cost != nil && *req.Cost < 0 {
		return nil, validationError("cost cannot be negative")
	}
	if req.MoneyPaid != nil && *req.MoneyPaid < 0 {
		return nil, validationError("money paid cannot be negative")
	}

	if item := strings.TrimSpace(req.Item); item != "" {
		order.Item = item
	}
	if req.Cost != nil {
		order.Cost = *req.Cost
	}
	if req.Notes != nil {
		order.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.MoneyPaid != nil {
		order.MoneyPaid = req.MoneyPaid
	}

	if err := s.db.Save(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return s.Get(id)
}

func (s *OrderService) Delete(userID, id uuid.UUID) error {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return ErrOrderNotFound
	}
	if order.UserID != userID {
		return ErrNotOwner
	}

	return s.db.Delete(&order).Error
}

func toOrderResponse(o *models.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID: o.ID,
		Restaurant: dto.RestaurantSummary{
			ID:   o.Restaurant.ID,
			Name: o.Restaurant.Name,
		},
		User: dto.UserSummary{
			ID:       o.User.ID,
			Username: o.User.Username,
			Email:    o.User.Email,
		},
		Item:      o.Item,
		Cost:      o.Cost,
		Notes:     o.Notes,
		MoneyPaid: o.MoneyPaid,
		OrderDate: o.OrderDate,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
