package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// SMTP (verification / password-reset mail)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	// Public base URL used in mail links
	AppBaseURL string

	// Google SSO
	GoogleClientID string

	// Cloudinary (restaurant logo uploads)
	CloudinaryCloudName    string
	CloudinaryUploadPreset string

	// API Ninjas (logo-by-company-name lookup)
	APINinjaKey string

	// Admin
	AdminUsernames string
	AdminToken     string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "lunch_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "168h")),

		SMTPHost:     getEnv("MAIL_HOST", ""),
		SMTPPort:     parseInt(getEnv("MAIL_PORT", "587"), 587),
		SMTPUsername: getEnv("MAIL_USERNAME", ""),
		SMTPPassword: getEnv("MAIL_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", getEnv("MAIL_USERNAME", "")),

		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:3000"),

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		CloudinaryCloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryUploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", ""),

		APINinjaKey: getEnv("API_NINJA_KEY", ""),

		AdminUsernames: getEnv("ADMIN_USERNAMES", ""),
		AdminToken:     getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

// Organizations is the allowed set for registration and profile completion.
var Organizations = []string{"BGL IT"}

func ValidOrganization(org string) bool {
	for _, o := range Organizations {
		if o == org {
			return true
		}
	}
	return false
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// AdminUsernameList splits the comma-separated ADMIN_USERNAMES value.
func (c *Config) AdminUsernameList() []string {
	if c.AdminUsernames == "" {
		return nil
	}
	parts := strings.Split(c.AdminUsernames, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 168 * time.Hour
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
