package middleware

import (
	"github.com/bglit/lunch-backend/internal/config"
	"github.com/bglit/lunch-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired gates the log viewer: either the shared X-Admin-Token header
// or a JWT whose username is in ADMIN_USERNAMES.
func AdminRequired(cfg *config.Config) fiber.Handler {
	adminUsernames := cfg.AdminUsernameList()

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		if username := Username(c); username != "" {
			for _, admin := range adminUsernames {
				if admin == username {
					return c.Next()
				}
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Admin access required"))
	}
}
