package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bglit/lunch-backend/internal/config"
	"github.com/bglit/lunch-backend/internal/database"
	"github.com/bglit/lunch-backend/internal/handlers"
	"github.com/bglit/lunch-backend/internal/models"
	"github.com/bglit/lunch-backend/internal/routes"
	"github.com/bglit/lunch-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubMailer struct {
	verifyTokens map[string]string
	resetTokens  map[string]string
}

func (m *stubMailer) SendVerificationEmail(email, token, username string) error {
	m.verifyTokens[email] = token
	return nil
}

func (m *stubMailer) SendPasswordResetEmail(email, token, username string) error {
	m.resetTokens[email] = token
	return nil
}

type stubGoogle struct {
	profile *services.GoogleProfile
	err     error
}

func (g *stubGoogle) Verify(ctx context.Context, idToken string) (*services.GoogleProfile, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.profile, nil
}

type testEnv struct {
	app    *fiber.App
	db     *gorm.DB
	auth   *services.AuthService
	mail   *stubMailer
	google *stubGoogle
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	database.DB = db

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiry:      168 * time.Hour,
		AdminUsernames: "admin",
	}

	mail := &stubMailer{
		verifyTokens: make(map[string]string),
		resetTokens:  make(map[string]string),
	}
	google := &stubGoogle{}

	authService := services.NewAuthService(db, cfg, mail, google)

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewRestaurantHandler(services.NewRestaurantService(db)),
		handlers.NewOrderHandler(services.NewOrderService(db)),
		handlers.NewLogoHandler(services.NewLogoService("")),
		handlers.NewUploadHandler(services.NewUploadService("", "")),
		handlers.NewHealthHandler(),
		handlers.NewLogHandler(db),
	)

	return &testEnv{app: app, db: db, auth: authService, mail: mail, google: google}
}

// createUser seeds a verified account and returns it with a bearer token.
func (e *testEnv) createUser(t *testing.T, username string) (*models.User, string) {
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
	if err := e.db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}

	token, err := e.auth.GenerateToken(&user)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return &user, token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	return resp
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return env
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("failed to decode data payload: %v", err)
	}
}

var errStubVerify = errors.New("verification refused")
