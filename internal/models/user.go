package models

import (
	"time"

	"github.com/google/uuid"
)

// User covers both password-registered and SSO-originated accounts.
// Username and Password stay empty until the relevant flow fills them:
// SSO accounts have no password, and no username until profile completion.
type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username        *string   `gorm:"size:30;uniqueIndex" json:"username"`
	Email           string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password        string    `gorm:"size:100" json:"-"`
	Organization    string    `gorm:"size:100" json:"organization"`
	GoogleID        *string   `gorm:"size:255;uniqueIndex" json:"-"`
	Image           string    `gorm:"size:500" json:"image,omitempty"`
	IsEmailVerified bool      `gorm:"default:false" json:"is_email_verified"`
	ProfileComplete bool      `gorm:"default:false" json:"profile_complete"`

	EmailVerificationToken   *string    `gorm:"size:64;index" json:"-"`
	EmailVerificationExpires *time.Time `json:"-"`
	PasswordResetToken       *string    `gorm:"size:64;index" json:"-"`
	PasswordResetExpires     *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the username when set, falling back to the email.
func (u *User) DisplayName() string {
	if u.Username != nil {
		return *u.Username
	}
	return u.Email
}
