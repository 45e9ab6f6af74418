package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Organization    string `json:"organization"`
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email"`
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type GoogleSignInRequest struct {
	IDToken string `json:"idToken"`
}

type CompleteProfileRequest struct {
	Username     string `json:"username"`
	Organization string `json:"organization"`
}

// RegisterData is returned on 201; no token until the email is verified.
type RegisterData struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// AuthData is the payload of every token-issuing response.
type AuthData struct {
	UserID       uuid.UUID `json:"userId"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Organization string    `json:"organization,omitempty"`
	Token        string    `json:"token"`

	NeedsProfileCompletion bool `json:"needsProfileCompletion,omitempty"`
}

// VerificationRequiredResponse is the 403 shape for unverified logins;
// the flag lets the UI offer a "resend" path without parsing the message.
type VerificationRequiredResponse struct {
	Success           bool   `json:"success"`
	Error             string `json:"error"`
	NeedsVerification bool   `json:"needsVerification"`
}

type ProfileStatusData struct {
	IsComplete   bool    `json:"isComplete"`
	Username     *string `json:"username"`
	Organization string  `json:"organization"`
}
