package services

import (
	"context"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// AuthService manages registration, OTP verification and login.
type AuthService interface {
	// Register creates an inactive user and issues a registration OTP.
	Register(ctx context.Context, user domain.User, password string) (*domain.User, error)

	// VerifyRegistration activates the user if the OTP matches and has not expired.
	VerifyRegistration(ctx context.Context, email, code string) error

	// Login checks credentials and returns the user plus a signed JWT.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	// RequestPasswordReset issues a password-reset OTP for the email.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword sets a new password if the reset OTP matches.
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// TokenService signs and validates access tokens.
type TokenService interface {
	GenerateToken(userID string) (string, error)
}
