package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	NameAr            string    `json:"nameAr,omitempty"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	Password          string    `json:"-"`
	Role              Role      `json:"role"`
	Active            bool      `json:"active"`
	Newsletter        bool      `json:"newsletter"`
	PreferredLanguage string    `json:"preferredLanguage"`
	AvatarURL         string    `json:"avatarUrl,omitempty"`
	MFAEnabled        bool      `json:"mfaEnabled"`
	MFASecret         string    `json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type RegisterRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8,max=72"`
	Name              string `json:"name" validate:"required,min=2,max=100"`
	NameAr            string `json:"nameAr" validate:"omitempty,max=100"`
	PreferredLanguage string `json:"preferredLanguage" validate:"omitempty,oneof=en ar"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	MFACode  string `json:"mfaCode" validate:"omitempty,len=6,numeric"`
}

type LoginResponse struct {
	Success        bool   `json:"success"`
	Token          string `json:"token,omitempty"`
	ExpiresIn      int    `json:"expiresIn,omitempty"`
	MFARequired    bool   `json:"mfaRequired,omitempty"`
	RemainingTries int    `json:"remainingTries,omitempty"`
	RetryAfter     int    `json:"retryAfter,omitempty"`
	Message        string `json:"message,omitempty"`
}

type UpdateProfileRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	NameAr            *string `json:"nameAr,omitempty" validate:"omitempty,max=100"`
	Phone             *string `json:"phone,omitempty" validate:"omitempty,e164"`
	Newsletter        *bool   `json:"newsletter,omitempty"`
	PreferredLanguage *string `json:"preferredLanguage,omitempty" validate:"omitempty,oneof=en ar"`
	CSRFToken         string  `json:"csrfToken,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	CSRFToken       string `json:"csrfToken,omitempty"`
}

type MFAStatusResponse struct {
	Enabled bool `json:"enabled"`
	Pending bool `json:"pending"`
}

type MFASetupResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauthUrl"`
}

type MFACodeRequest struct {
	Code      string `json:"code" validate:"required,len=6,numeric"`
	CSRFToken string `json:"csrfToken,omitempty"`
}

type MFAToggleRequest struct {
	Enabled   bool   `json:"enabled"`
	Code      string `json:"code" validate:"required,len=6,numeric"`
	CSRFToken string `json:"csrfToken,omitempty"`
}

type CSRFTokenResponse struct {
	CSRFToken string `json:"csrfToken"`
	ExpiresIn int    `json:"expiresIn"`
}

type AdminUpdateUserRequest struct {
	Role      *Role  `json:"role,omitempty" validate:"omitempty,oneof=customer admin"`
	Active    *bool  `json:"active,omitempty"`
	CSRFToken string `json:"csrfToken,omitempty"`
}

// Claims carries the session version so a password change can revoke every
// token issued before it.
type Claims struct {
	UserID         uuid.UUID `json:"user_id"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	SessionVersion int64     `json:"session_version"`
	jwt.RegisteredClaims
}
