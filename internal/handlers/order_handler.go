package handlers

import (
	"errors"
	"log/slog"

	"github.com/bglit/lunch-backend/internal/dto"
	"github.com/bglit/lunch-backend/internal/middleware"
	"github.com/bglit/lunch-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	var restaurantID *uuid.UUID
	if raw := c.Query("restaurantId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid restaurant id"))
		}
		restaurantID = &id
	}

	orders, err := h.orderService.List(restaurantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to load orders"))
	}

	return c.JSON(dto.OK("", orders))
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid order id"))
	}

	order, err := h.orderService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Order not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to load order"))
	}

	return c.JSON(dto.OK("", order))
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	order, err := h.orderService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Restaurant not found"))
		}
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		slog.Error("order create failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to place order"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK("Order placed", order))
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid order id"))
	}

	var req dto.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	order, err := h.orderService.Update(userID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Order not found"))
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("You can only edit your own orders"))
		case services.IsValidation(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		default:
			slog.Error("order update failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to update order"))
		}
	}

	return c.JSON(dto.OK("Order updated", order))
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid order id"))
	}

	if err := h.orderService.Delete(userID, id); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Order not found"))
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("You can only delete your own orders"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to delete order"))
		}
	}

	return c.JSON(dto.OK("Order deleted", nil))
}
