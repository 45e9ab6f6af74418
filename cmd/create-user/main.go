package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/bglit/lunch-backend/internal/config"
	"github.com/bglit/lunch-backend/internal/database"
	"github.com/bglit/lunch-backend/internal/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Creates a pre-verified account directly in the database, for bootstrapping
// the first users without SMTP.
func main() {
	username := flag.String("username", "", "username (lowercase letters, digits, _ and -)")
	email := flag.String("email", "", "email address")
	password := flag.String("password", "", "initial password")
	organization := flag.String("org", config.Organizations[0], "organization")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		log.Fatal("usage: create-user -username <name> -email <addr> -password <pass> [-org <org>]")
	}
	if !config.ValidOrganization(*organization) {
		log.Fatalf("unknown organization %q (valid: %s)", *organization, strings.Join(config.Organizations, ", "))
	}

	_ = godotenv.Load()
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	name := strings.ToLower(strings.TrimSpace(*username))
	user := models.User{
		ID:              uuid.New(),
		Username:        &name,
		Email:           strings.ToLower(strings.TrimSpace(*email)),
		Password:        string(hash),
		Organization:    *organization,
		IsEmailVerified: true,
		ProfileComplete: true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	fmt.Printf("created user %s <%s> (%s)\n", name, user.Email, user.ID)
}
