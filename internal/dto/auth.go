package dto

import (
	"github.com/karobar/karobar_backend/internal/core/domain"
)

// RegisterRequest defines the payload for user registration.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	Mobile    string `json:"mobile"`
	Password  string `json:"password" binding:"required,min=8"`
}

// ToDomain converts the request to a domain.User. The password is handled
// separately so it never rides on the domain object.
func (r RegisterRequest) ToDomain() domain.User {
	return domain.User{
		Email:     r.Email,
		FirstName: r.FirstName,
		Mobile:    r.Mobile,
	}
}

// VerifyOTPRequest defines the payload for confirming a registration OTP.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// LoginRequest defines the payload for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ForgotPasswordRequest defines the payload for requesting a password reset OTP.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest defines the payload for completing a password reset.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// UserResponse defines the user data returned to clients.
type UserResponse struct {
	UserID     string `json:"userID"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	Mobile     string `json:"mobile"`
	IsVerified bool   `json:"isVerified"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		Mobile:     u.Mobile,
		IsVerified: u.IsVerified,
	}
}
