package handlers

import (
	"errors"
	"log/slog"

	"github.com/bglit/lunch-backend/internal/dto"
	"github.com/bglit/lunch-backend/internal/middleware"
	"github.com/bglit/lunch-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	user, err := h.authService.Register(services.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Organization:    req.Organization,
	})
	if err != nil {
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		slog.Error("registration failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Registration failed"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(
		"Registration successful! Please check your email to verify your account.",
		dto.RegisterData{
			UserID:   user.ID,
			Username: user.DisplayName(),
			Email:    user.Email,
		},
	))
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	if err := h.authService.VerifyEmail(req.Email, req.Token); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid or expired verification token"))
		}
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		slog.Error("email verification failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Email verification failed"))
	}

	return c.JSON(dto.OK("Email verified successfully! You can now log in.", nil))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	user, token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Invalid username or password"))
		}
		if errors.Is(err, services.ErrEmailNotVerified) {
			return c.Status(fiber.StatusForbidden).JSON(dto.VerificationRequiredResponse{
				Success:           false,
				Error:             "Please verify your email before logging in",
				NeedsVerification: true,
			})
		}
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		slog.Error("login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Login failed"))
	}

	return c.JSON(dto.OK("Login successful", dto.AuthData{
		UserID:       user.ID,
		Username:     user.DisplayName(),
		Email:        user.Email,
		Organization: user.Organization,
		Token:        token,
	}))
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Email is required"))
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Password reset request failed"))
	}

	// The same answer whether or not the account exists.
	return c.JSON(dto.OK("If an account with this email exists, a password reset link has been sent.", nil))
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	if err := h.authService.ResetPassword(req.Email, req.Token, req.Password, req.ConfirmPassword); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid or expired reset token"))
		}
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		slog.Error("password reset failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Password reset failed"))
	}

	return c.JSON(dto.OK("Password reset successful! You can now log in with your new password.", nil))
}

func (h *AuthHandler) GoogleSignIn(c *fiber.Ctx) error {
	var req dto.GoogleSignInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if req.IDToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("ID token is required"))
	}

	user, token, err := h.authService.GoogleSignIn(c.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Invalid Google identity token"))
		}
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		slog.Error("sso login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SSO login failed"))
	}

	return c.JSON(dto.OK("Login successful", dto.AuthData{
		UserID:                 user.ID,
		Username:               user.DisplayName(),
		Email:                  user.Email,
		Organization:           user.Organization,
		Token:                  token,
		NeedsProfileCompletion: !user.ProfileComplete,
	}))
}

func (h *AuthHandler) CompleteProfile(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.CompleteProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	user, token, err := h.authService.CompleteProfile(userID, req.Username, req.Organization)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Username is already taken"))
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("User not found"))
		}
		if services.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
		}
		slog.Error("profile completion failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Profile completion failed"))
	}

	return c.JSON(dto.OK("Profile completed successfully", dto.AuthData{
		UserID:       user.ID,
		Username:     user.DisplayName(),
		Email:        user.Email,
		Organization: user.Organization,
		Token:        token,
	}))
}

func (h *AuthHandler) ProfileStatus(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	user, err := h.authService.ProfileStatus(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("User not found"))
	}

	return c.JSON(dto.OK("", dto.ProfileStatusData{
		IsComplete:   user.ProfileComplete,
		Username:     user.Username,
		Organization: user.Organization,
	}))
}
