// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"foodsafe/internal/domain/entity"
)

// --- Input DTOs ---

// SignupOTPInput carries the profile recorded with a signup passcode.
type SignupOTPInput struct {
	Name        string
	PhoneNumber string
	Role        entity.Role
}

// --- Output DTOs ---

// OTPDispatch confirms that a passcode was handed to the SMS gateway.
type OTPDispatch struct {
	PhoneNumber string
	ExpiresIn   time.Duration
}

// AuthUsecase is the identity gateway: phone passcodes in, sessions out.
type AuthUsecase interface {
	// RequestSignupOTP sends a passcode and remembers the signup profile with it.
	RequestSignupOTP(ctx context.Context, input SignupOTPInput) (*OTPDispatch, error)

	// RequestLoginOTP sends a passcode to an existing or new phone number.
	RequestLoginOTP(ctx context.Context, phoneNumber string) (*OTPDispatch, error)

	// RequestBusinessOTP sends a passcode from the business sign-in screen.
	RequestBusinessOTP(ctx context.Context, phoneNumber string) (*OTPDispatch, error)

	// VerifyOTP consumes the newest live passcode and opens a session,
	// creating the account on first verification.
	VerifyOTP(ctx context.Context, phoneNumber, code string) (*entity.Session, error)

	// ResolveSession maps an access token to the caller's profile.
	ResolveSession(ctx context.Context, accessToken string) (*entity.User, error)

	// RefreshSession rotates a refresh token into a new session.
	RefreshSession(ctx context.Context, refreshToken string) (*entity.Session, error)

	// Logout revokes a refresh token. Unknown tokens are ignored.
	Logout(ctx context.Context, refreshToken string) error
}
