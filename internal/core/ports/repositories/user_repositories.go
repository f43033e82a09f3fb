package repositories

import (
	"context"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
}

// OTPRepository defines persistence operations for one-time codes.
type OTPRepository interface {
	SaveOTP(ctx context.Context, otp domain.OTP) error

	// FindLatestOTP returns the most recently created OTP for an email and
	// purpose, or apperrors.ErrNotFound.
	FindLatestOTP(ctx context.Context, email string, purpose domain.OTPPurpose) (*domain.OTP, error)

	MarkOTPVerified(ctx context.Context, otpID string) error
}
