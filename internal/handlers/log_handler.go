package handlers

import (
	"strconv"
	"strings"

	"github.com/bglit/lunch-backend/internal/dto"
	"github.com/bglit/lunch-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const defaultLogLimit = 100

// LogHandler exposes recent system_logs rows to admins for debugging.
type LogHandler struct {
	db *gorm.DB
}

func NewLogHandler(db *gorm.DB) *LogHandler {
	return &LogHandler{db: db}
}

func (h *LogHandler) List(c *fiber.Ctx) error {
	limit := defaultLogLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 1000 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("limit must be between 1 and 1000"))
		}
		limit = parsed
	}

	query := h.db.Model(&models.SystemLog{}).Order("timestamp DESC").Limit(limit)
	if level := strings.ToUpper(c.Query("level")); level != "" {
		query = query.Where("level = ?", level)
	}

	var logs []models.SystemLog
	if err := query.Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to load logs"))
	}

	return c.JSON(dto.OK("", logs))
}
