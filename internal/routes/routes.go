package routes

import (
	"time"

	"github.com/bglit/lunch-backend/internal/config"
	"github.com/bglit/lunch-backend/internal/handlers"
	"github.com/bglit/lunch-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	restaurantHandler *handlers.RestaurantHandler,
	orderHandler *handlers.OrderHandler,
	logoHandler *handlers.LogoHandler,
	uploadHandler *handlers.UploadHandler,
	healthHandler *handlers.HealthHandler,
	logHandler *handlers.LogHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/verify-email", authHandler.VerifyEmail)
	auth.Post("/login", authHandler.Login)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/sso/google", authHandler.GoogleSignIn)

	// Profile completion for SSO accounts (JWT required, applied per route so
	// the public auth routes above stay public)
	api.Post("/auth/complete-profile", middleware.JWTProtected(cfg), authHandler.CompleteProfile)
	api.Get("/auth/profile-status", middleware.JWTProtected(cfg), authHandler.ProfileStatus)

	// Restaurants — reads are public, writes and voting need a login
	api.Get("/restaurants", restaurantHandler.List)
	api.Get("/restaurants/:id", restaurantHandler.Get)
	api.Post("/restaurants", middleware.JWTProtected(cfg), restaurantHandler.Create)
	api.Put("/restaurants/:id", middleware.JWTProtected(cfg), restaurantHandler.Update)
	api.Delete("/restaurants/:id", middleware.JWTProtected(cfg), restaurantHandler.Delete)
	api.Post("/restaurants/:id/vote", middleware.JWTProtected(cfg), restaurantHandler.Vote)

	// Orders — today's board is public, mutations need a login
	api.Get("/orders", orderHandler.List)
	api.Get("/orders/:id", orderHandler.Get)
	api.Post("/orders", middleware.JWTProtected(cfg), orderHandler.Create)
	api.Put("/orders/:id", middleware.JWTProtected(cfg), orderHandler.Update)
	api.Delete("/orders/:id", middleware.JWTProtected(cfg), orderHandler.Delete)

	// Third-party proxies (protected so the API keys aren't an open relay)
	api.Get("/logo", middleware.JWTProtected(cfg), logoHandler.Lookup)
	api.Post("/upload", middleware.JWTProtected(cfg), uploadHandler.Upload)

	// Admin log viewer
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(cfg))
	admin.Get("/logs", logHandler.List)
}
