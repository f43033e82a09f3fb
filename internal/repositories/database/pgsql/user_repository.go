package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	BaseRepository
}

func newUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &userRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const userColumns = `user_id, email, first_name, mobile, password_hash, is_active, is_verified, created_at`

func (r *userRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID, user.Email, user.FirstName, user.Mobile,
		user.PasswordHash, user.IsActive, user.IsVerified, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&u.UserID, &u.Email, &u.FirstName, &u.Mobile,
		&u.PasswordHash, &u.IsActive, &u.IsVerified, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET first_name = $2, mobile = $3, password_hash = $4, is_active = $5, is_verified = $6
		WHERE user_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		user.UserID, user.FirstName, user.Mobile,
		user.PasswordHash, user.IsActive, user.IsVerified,
	)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", user.UserID, apperrors.ErrNotFound)
	}
	return nil
}

// otpRepository implements the OTPRepository interface
type otpRepository struct {
	BaseRepository
}

func newOTPRepository(db *pgxpool.Pool) portsrepo.OTPRepository {
	return &otpRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func (r *otpRepository) SaveOTP(ctx context.Context, otp domain.OTP) error {
	query := `
		INSERT INTO otps (otp_id, email, code, purpose, created_at, expires_at, is_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.Pool.Exec(ctx, query,
		otp.OTPID, otp.Email, otp.Code, otp.Purpose,
		otp.CreatedAt, otp.ExpiresAt, otp.IsVerified,
	)
	if err != nil {
		return fmt.Errorf("error inserting otp: %w", err)
	}
	return nil
}

func (r *otpRepository) FindLatestOTP(ctx context.Context, email string, purpose domain.OTPPurpose) (*domain.OTP, error) {
	query := `
		SELECT otp_id, email, code, purpose, created_at, expires_at, is_verified
		FROM otps
		WHERE email = $1 AND purpose = $2
		ORDER BY created_at DESC
		LIMIT 1`

	var otp domain.OTP
	err := r.Pool.QueryRow(ctx, query, email, purpose).Scan(
		&otp.OTPID, &otp.Email, &otp.Code, &otp.Purpose,
		&otp.CreatedAt, &otp.ExpiresAt, &otp.IsVerified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("otp for %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying otp: %w", err)
	}
	return &otp, nil
}

func (r *otpRepository) MarkOTPVerified(ctx context.Context, otpID string) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE otps SET is_verified = TRUE WHERE otp_id = $1`, otpID)
	if err != nil {
		return fmt.Errorf("error marking otp verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("otp %s: %w", otpID, apperrors.ErrNotFound)
	}
	return nil
}
