package repository

import (
	"context"
	"time"

	"foodsafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOTPChallengeNotFound is returned when a phone number has no live challenge.
var ErrOTPChallengeNotFound = errors.New("otp challenge not found")

// OTPRepository stores issued one-time passcodes.
type OTPRepository interface {
	// Create persists a newly issued challenge.
	Create(ctx context.Context, challenge *entity.OTPChallenge) error

	// FindLatestLive returns the newest unconsumed, unexpired challenge for a phone number.
	// The row is locked for update when called inside a transaction.
	FindLatestLive(ctx context.Context, phoneNumber string, now time.Time) (*entity.OTPChallenge, error)

	// IncrementAttempts records a failed verification.
	IncrementAttempts(ctx context.Context, id uuid.UUID) error

	// MarkConsumed burns a challenge so it can never verify again.
	MarkConsumed(ctx context.Context, id uuid.UUID, at time.Time) error

	// ConsumeAllLive burns every live challenge of a phone number.
	ConsumeAllLive(ctx context.Context, phoneNumber string, at time.Time) error
}
