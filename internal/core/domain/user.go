package domain

import "time"

// User is an application account. Accounts start unverified and are activated
// by the email OTP flow.
type User struct {
	UserID       string    `json:"userID"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	Mobile       string    `json:"mobile"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
}

// OTPPurpose distinguishes registration OTPs from password-reset OTPs.
type OTPPurpose string

const (
	OTPPurposeRegister      OTPPurpose = "register"
	OTPPurposePasswordReset OTPPurpose = "password_reset"
)

// OTP is a one-time code sent to an email address.
type OTP struct {
	OTPID      string     `json:"otpID"`
	Email      string     `json:"email"`
	Code       string     `json:"-"`
	Purpose    OTPPurpose `json:"purpose"`
	CreatedAt  time.Time  `json:"createdAt"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	IsVerified bool       `json:"isVerified"`
}

// IsExpired reports whether the OTP can no longer be used.
func (o OTP) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
