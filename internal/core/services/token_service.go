package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/pkg/config"
)

// tokenService signs HS256 access tokens.
type tokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewTokenService creates a new token service
func NewTokenService(cfg *config.Config) portssvc.TokenService {
	return &tokenService{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.JWTExpiryDuration,
		issuer: cfg.JWTIssuer,
	}
}

var _ portssvc.TokenService = (*tokenService)(nil)

func (s *tokenService) GenerateToken(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
