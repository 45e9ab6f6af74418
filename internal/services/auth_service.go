package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/bglit/lunch-backend/internal/config"
	"github.com/bglit/lunch-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmailNotVerified   = errors.New("please verify your email before logging in")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrUserNotFound       = errors.New("user not found")
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_-]{3,30}$`)

// MailSender delivers verification and password-reset mail. Delivery failures
// are soft for registration and hard for forgot-password.
type MailSender interface {
	SendVerificationEmail(email, token, username string) error
	SendPasswordResetEmail(email, token, username string) error
}

// GoogleProfile is the subset of the SSO identity the app keeps.
type GoogleProfile struct {
	Sub   string
	Email string
}

// GoogleVerifier validates a client-supplied Google ID token.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleProfile, error)
}

type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	mail   MailSender
	google GoogleVerifier
	now    func() time.Time
}

func NewAuthService(db *gorm.DB, cfg *config.Config, mail MailSender, google GoogleVerifier) *AuthService {
	return &AuthService{
		db:     db,
		cfg:    cfg,
		mail:   mail,
		google: google,
		now:    time.Now,
	}
}

func (s *AuthService) Register(req RegisterInput) (*models.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" || req.Organization == "" {
		return nil, validationError("all fields are required")
	}
	if !config.ValidOrganization(req.Organization) {
		return nil, validationError("invalid organization")
	}
	if req.Password != req.ConfirmPassword {
		return nil, validationError("passwords do not match")
	}
	if len(req.Password) < 6 {
		return nil, validationError("password must be at least 6 characters")
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !usernamePattern.MatchString(username) {
		return nil, validationError("username must be 3-30 characters: lowercase letters, numbers, hyphens and underscores only")
	}

	var existing models.User
	if err := s.db.Where("username = ? OR email = ?", username, email).First(&existing).Error; err == nil {
		return nil, validationError("username or email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := randomToken()
	if err != nil {
		return nil, err
	}
	expires := s.now().Add(24 * time.Hour)

	user := models.User{
		ID:                       uuid.New(),
		Username:                 &username,
		Email:                    email,
		Password:                 string(hash),
		Organization:             req.Organization,
		ProfileComplete:          true,
		EmailVerificationToken:   &token,
		EmailVerificationExpires: &expires,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Registration succeeds even when the mail relay is down; the user can
	// re-request verification later.
	if err := s.mail.SendVerificationEmail(email, token, username); err != nil {
		slog.Warn("verification email failed", "error", err, "user_id", user.ID.String())
	}

	return &user, nil
}

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Organization    string
}

func (s *AuthService) VerifyEmail(email, token string) error {
	if email == "" || token == "" {
		return validationError("email and token are required")
	}

	var user models.User
	err := s.db.Where("email = ? AND email_verification_token = ? AND email_verification_expires > ?",
		strings.ToLower(email), token, s.now()).First(&user).Error
	if err != nil {
		return ErrInvalidToken
	}

	return s.db.Model(&user).Updates(map[string]interface{}{
		"is_email_verified":          true,
		"email_verification_token":   nil,
		"email_verification_expires": nil,
	}).Error
}

func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", validationError("username and password are required")
	}

	var user models.User
	if err := s.db.Where("username = ?", strings.ToLower(username)).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if user.Password == "" {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsEmailVerified {
		return nil, "", ErrEmailNotVerified
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// ForgotPassword always behaves the same from the caller's perspective whether
// or not the email exists. When delivery fails, the stored token is rolled back
// so a stale link can never validate.
func (s *AuthService) ForgotPassword(email string) error {
	if email == "" {
		return validationError("email is required")
	}

	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		return nil
	}

	token, err := randomToken()
	if err != nil {
		return err
	}
	expires := s.now().Add(1 * time.Hour)

	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"password_reset_token":   token,
		"password_reset_expires": expires,
	}).Error; err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := s.mail.SendPasswordResetEmail(user.Email, token, user.DisplayName()); err != nil {
		s.db.Model(&user).Updates(map[string]interface{}{
			"password_reset_token":   nil,
			"password_reset_expires": nil,
		})
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	return nil
}

func (s *AuthService) ResetPassword(email, token, password, confirmPassword string) error {
	if email == "" || token == "" || password == "" || confirmPassword == "" {
		return validationError("all fields are required")
	}
	if password != confirmPassword {
		return validationError("passwords do not match")
	}
	if len(password) < 6 {
		return validationError("password must be at least 6 characters")
	}

	var user models.User
	err := s.db.Where("email = ? AND password_reset_token = ? AND password_reset_expires > ?",
		strings.ToLower(email), token, s.now()).First(&user).Error
	if err != nil {
		return ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Model(&user).Updates(map[string]interface{}{
		"password":               string(hash),
		"password_reset_token":   nil,
		"password_reset_expires": nil,
	}).Error
}

// GoogleSignIn validates the ID token and returns the matching user, creating
// a profile-incomplete record on first sign-in. SSO accounts skip email
// verification; Google already owns that check.
func (s *AuthService) GoogleSignIn(ctx context.Context, idToken string) (*models.User, string, error) {
	if idToken == "" {
		return nil, "", validationError("id token is required")
	}

	profile, err := s.google.Verify(ctx, idToken)
	if err != nil {
		slog.Error("google token verification failed", "error", err)
		return nil, "", ErrInvalidToken
	}

	email := strings.ToLower(profile.Email)

	var user models.User
	err = s.db.Where("google_id = ? OR email = ?", profile.Sub, email).First(&user).Error
	if err != nil {
		user = models.User{
			ID:              uuid.New(),
			Email:           email,
			GoogleID:        &profile.Sub,
			IsEmailVerified: true,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, "", fmt.Errorf("failed to create SSO user: %w", err)
		}
	} else if user.GoogleID == nil {
		if err := s.db.Model(&user).Update("google_id", profile.Sub).Error; err != nil {
			return nil, "", fmt.Errorf("failed to link google account: %w", err)
		}
		user.GoogleID = &profile.Sub
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) CompleteProfile(userID uuid.UUID, username, organization string) (*models.User, string, error) {
	if username == "" || organization == "" {
		return nil, "", validationError("username and organization are required")
	}
	if !config.ValidOrganization(organization) {
		return nil, "", validationError("invalid organization")
	}

	username = strings.ToLower(strings.TrimSpace(username))
	if !usernamePattern.MatchString(username) {
		return nil, "", validationError("username must be 3-30 characters: lowercase letters, numbers, hyphens and underscores only")
	}

	var existing models.User
	if err := s.db.Where("username = ? AND id <> ?", username, userID).First(&existing).Error; err == nil {
		return nil, "", ErrUsernameTaken
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, "", ErrUserNotFound
	}

	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"username":         username,
		"organization":     organization,
		"profile_complete": true,
	}).Error; err != nil {
		return nil, "", fmt.Errorf("failed to complete profile: %w", err)
	}
	user.Username = &username
	user.Organization = organization
	user.ProfileComplete = true

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) ProfileStatus(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// GenerateToken issues the 7-day bearer token shared by every auth path.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	username := ""
	if user.Username != nil {
		username = *user.Username
	}

	claims := jwt.MapClaims{
		"sub":              user.ID.String(),
		"username":         username,
		"profile_complete": user.ProfileComplete,
		"iat":              s.now().Unix(),
		"exp":              s.now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func randomToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
