package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bglit/lunch-backend/internal/config"
	"github.com/bglit/lunch-backend/internal/database"
	"github.com/bglit/lunch-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A pooled second connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 168 * time.Hour,
	}
}

// stubMailer records outgoing mail so tests can pull tokens out of it.
type stubMailer struct {
	verifyTokens map[string]string
	resetTokens  map[string]string
	failNext     bool
}

func newStubMailer() *stubMailer {
	return &stubMailer{
		verifyTokens: make(map[string]string),
		resetTokens:  make(map[string]string),
	}
}

func (m *stubMailer) SendVerificationEmail(email, token, username string) error {
	if m.failNext {
		m.failNext = false
		return errors.New("relay down")
	}
	m.verifyTokens[email] = token
	return nil
}

func (m *stubMailer) SendPasswordResetEmail(email, token, username string) error {
	if m.failNext {
		m.failNext = false
		return errors.New("relay down")
	}
	m.resetTokens[email] = token
	return nil
}

type stubGoogle struct {
	profile *GoogleProfile
	err     error
}

func (g *stubGoogle) Verify(ctx context.Context, idToken string) (*GoogleProfile, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.profile, nil
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		ID:              uuid.New(),
		Username:        &username,
		Email:           username + "@bgl.tt",
		Password:        string(hash),
		Organization:    config.Organizations[0],
		IsEmailVerified: true,
		ProfileComplete: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return &user
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string, owner *models.User) *models.Restaurant {
	t.Helper()

	restaurant := models.Restaurant{
		ID:          uuid.New(),
		Name:        name,
		Emoji:       models.DefaultEmoji,
		IsActive:    true,
		CreatedByID: owner.ID,
	}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatalf("failed to seed restaurant %s: %v", name, err)
	}
	return &restaurant
}
