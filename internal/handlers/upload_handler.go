package handlers

import (
	"errors"
	"strings"

	"github.com/bglit/lunch-backend/internal/dto"
	"github.com/bglit/lunch-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = 5 * 1024 * 1024

type UploadHandler struct {
	uploadService *services.UploadService
}

func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("No file uploaded"))
	}

	if fileHeader.Size > maxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("File must be smaller than 5MB"))
	}
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Only image files are allowed"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Failed to read uploaded file"))
	}
	defer file.Close()

	result, err := h.uploadService.Upload(c.Context(), fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, services.ErrUploadNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Fail("Image upload is not configured"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Image upload failed"))
	}

	return c.JSON(dto.OK("Image uploaded", result))
}
