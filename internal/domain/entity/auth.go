package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPPurpose records why a one-time passcode was issued.
type OTPPurpose string

const (
	OTPPurposeSignup OTPPurpose = "signup"
	OTPPurposeLogin  OTPPurpose = "login"
)

// OTPChallenge is a single issued passcode. Only a hash of the code is kept.
// Signup metadata rides along so the account can be created on verification.
type OTPChallenge struct {
	ID          uuid.UUID
	PhoneNumber string
	CodeHash    string
	Purpose     OTPPurpose
	Name        string // Signup display name, empty for login challenges.
	Role        Role   // Signup role, empty for login challenges.
	Attempts    int
	ExpiresAt   time.Time
	ConsumedAt  *time.Time
	CreatedAt   time.Time
}

// IsLive reports whether the challenge can still be verified at now.
func (c *OTPChallenge) IsLive(now time.Time, maxAttempts int) bool {
	return c.ConsumedAt == nil && now.Before(c.ExpiresAt) && c.Attempts < maxAttempts
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Session is the result of a successful OTP verification.
type Session struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
