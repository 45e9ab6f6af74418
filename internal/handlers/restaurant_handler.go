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

type RestaurantHandler struct {
	restaurantService *services.RestaurantService
}

func NewRestaurantHandler(restaurantService *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	restaurants, err := h.restaurantService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to load restaurants"))
	}
	return c.JSON(dto.OK("", restaurants))
}

func (h *RestaurantHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid restaurant id"))
	}

	restaurant, err := h.restaurantService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Restaurant not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to load restaurant"))
	}

	return c.JSON(dto.OK("", restaurant))
}

func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.CreateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	restaurant, err := h.restaurantService.Create(userID, &req)
	if err != nil {
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		slog.Error("restaurant create failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to add restaurant"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK("Restaurant added", restaurant))
}

func (h *RestaurantHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid restaurant id"))
	}

	var req dto.UpdateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	restaurant, err := h.restaurantService.Update(userID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRestaurantNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Restaurant not found"))
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("You can only edit restaurants you added"))
		case services.IsValidation(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		default:
			slog.Error("restaurant update failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to update restaurant"))
		}
	}

	return c.JSON(dto.OK("Restaurant updated", restaurant))
}

func (h *RestaurantHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid restaurant id"))
	}

	if err := h.restaurantService.Delete(userID, id); err != nil {
		switch {
		case errors.Is(err, services.ErrRestaurantNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Restaurant not found"))
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("You can only delete restaurants you added"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to delete restaurant"))
		}
	}

	return c.JSON(dto.OK("Restaurant deleted", nil))
}

func (h *RestaurantHandler) Vote(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid restaurant id"))
	}

	removed, restaurant, err := h.restaurantService.ToggleVote(userID, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRestaurantNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Restaurant not found"))
		case errors.Is(err, services.ErrAlreadyVotedToday):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to register vote"))
		}
	}

	message := "Vote added"
	if removed {
		message = "Vote removed"
	}
	return c.JSON(dto.OK(message, restaurant))
}
