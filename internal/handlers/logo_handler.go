package handlers

import (
	"errors"

	"github.com/bglit/lunch-backend/internal/dto"
	"github.com/bglit/lunch-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LogoHandler struct {
	logoService *services.LogoService
}

func NewLogoHandler(logoService *services.LogoService) *LogoHandler {
	return &LogoHandler{logoService: logoService}
}

// Lookup proxies the logo search so the API key never reaches the browser.
func (h *LogoHandler) Lookup(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Restaurant name is required"))
	}

	logo, err := h.logoService.Lookup(c.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLogoNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("No logo found for this restaurant"))
		case errors.Is(err, services.ErrLogoNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Fail("Logo lookup is not configured"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Logo lookup failed"))
		}
	}

	return c.JSON(dto.OK("", logo))
}
