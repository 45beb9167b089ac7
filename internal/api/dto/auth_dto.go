package dto

import (
	"time"

	"github.com/fusionware/storefront/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the signed-in account.
type UserResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// LegacyLoginResponse is the body of a successful POST /api/auth.
type LegacyLoginResponse struct {
	Success   bool         `json:"success"`
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// LegacyFailure is the failure body of the /api/auth routes.
type LegacyFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LegacySessionResponse is the body of GET /api/auth/session.
type LegacySessionResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}
