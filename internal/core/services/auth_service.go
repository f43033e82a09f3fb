package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/internal/utils"
	"github.com/karobar/karobar_backend/pkg/config"
)

// authService implements the AuthService interface
type authService struct {
	BaseService
	userRepo  portsrepo.UserRepository
	otpRepo   portsrepo.OTPRepository
	tokenSvc  portssvc.TokenService
	otpExpiry time.Duration
	otpDigits int
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo portsrepo.UserRepository, otpRepo portsrepo.OTPRepository, tokenSvc portssvc.TokenService, cfg *config.Config) portssvc.AuthService {
	return &authService{
		userRepo:  userRepo,
		otpRepo:   otpRepo,
		tokenSvc:  tokenSvc,
		otpExpiry: cfg.OTPExpiryDuration,
		otpDigits: cfg.OTPDigits,
	}
}

var _ portssvc.AuthService = (*authService)(nil)

func (s *authService) Register(ctx context.Context, user domain.User, password string) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(user.Email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing user", slog.String("email", email))
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s is already registered: %w", email, apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.UserID = uuid.NewString()
	user.Email = email
	user.PasswordHash = hash
	user.IsActive = false
	user.IsVerified = false
	user.CreatedAt = time.Now().UTC()

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", email))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	if err := s.issueOTP(ctx, email, domain.OTPPurposeRegister); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User registered, verification OTP issued", slog.String("email", email))
	return &user, nil
}

func (s *authService) VerifyRegistration(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.consumeOTP(ctx, email, code, domain.OTPPurposeRegister); err != nil {
		return err
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	user.IsActive = true
	user.IsVerified = true
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to activate user", slog.String("email", email))
		return fmt.Errorf("failed to activate user: %w", err)
	}
	s.LogInfo(ctx, "User verified and activated", slog.String("email", email))
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to fetch user for login", slog.String("email", email))
		return nil, "", fmt.Errorf("failed to fetch user: %w", err)
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, "", fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}
	if !user.IsVerified || !user.IsActive {
		return nil, "", fmt.Errorf("account is not verified: %w", apperrors.ErrForbidden)
	}

	token, err := s.tokenSvc.GenerateToken(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate token", slog.String("user_id", user.UserID))
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return user, token, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err != nil {
		return err
	}
	if err := s.issueOTP(ctx, email, domain.OTPPurposePasswordReset); err != nil {
		return err
	}
	s.LogInfo(ctx, "Password reset OTP issued", slog.String("email", email))
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if newPassword == "" {
		return fmt.Errorf("new password is required: %w", apperrors.ErrValidation)
	}
	if err := s.consumeOTP(ctx, email, code, domain.OTPPurposePasswordReset); err != nil {
		return err
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash new password")
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("email", email))
		return fmt.Errorf("failed to update password: %w", err)
	}
	s.LogInfo(ctx, "Password reset completed", slog.String("email", email))
	return nil
}

// issueOTP stores a fresh code for the email. Delivery is a log line; wiring
// an SMTP provider is deployment-specific.
func (s *authService) issueOTP(ctx context.Context, email string, purpose domain.OTPPurpose) error {
	code, err := utils.GenerateOTP(s.otpDigits)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate OTP", slog.String("email", email))
		return fmt.Errorf("failed to generate otp: %w", err)
	}
	now := time.Now().UTC()
	otp := domain.OTP{
		OTPID:     uuid.NewString(),
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		CreatedAt: now,
		ExpiresAt: now.Add(s.otpExpiry),
	}
	if err := s.otpRepo.SaveOTP(ctx, otp); err != nil {
		s.LogError(ctx, err, "Failed to save OTP", slog.String("email", email))
		return fmt.Errorf("failed to save otp: %w", err)
	}
	s.LogInfo(ctx, "OTP issued",
		slog.String("email", email),
		slog.String("purpose", string(purpose)),
		slog.Time("expires_at", otp.ExpiresAt))
	return nil
}

func (s *authService) consumeOTP(ctx context.Context, email, code string, purpose domain.OTPPurpose) error {
	otp, err := s.otpRepo.FindLatestOTP(ctx, email, purpose)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("no pending otp for %s: %w", email, apperrors.ErrValidation)
		}
		s.LogError(ctx, err, "Failed to fetch OTP", slog.String("email", email))
		return fmt.Errorf("failed to fetch otp: %w", err)
	}
	if otp.IsVerified {
		return fmt.Errorf("otp already used: %w", apperrors.ErrValidation)
	}
	if otp.IsExpired(time.Now().UTC()) {
		return fmt.Errorf("otp has expired: %w", apperrors.ErrValidation)
	}
	if otp.Code != strings.TrimSpace(code) {
		return fmt.Errorf("incorrect otp: %w", apperrors.ErrValidation)
	}
	if err := s.otpRepo.MarkOTPVerified(ctx, otp.OTPID); err != nil {
		s.LogError(ctx, err, "Failed to mark OTP verified", slog.String("otp_id", otp.OTPID))
		return fmt.Errorf("failed to mark otp verified: %w", err)
	}
	return nil
}
