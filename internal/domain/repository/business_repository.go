package repository

import (
	"context"

	"foodsafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrBusinessNotFound is returned when no business matches the lookup.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository persists businesses. Create reports a duplicate license
// number as domainerrors.ErrBusinessAlreadyExists.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	FindByLicenseNumber(ctx context.Context, licenseNumber string) (*entity.Business, error)

	// Update overwrites every mutable column of the business.
	Update(ctx context.Context, business *entity.Business) error
}
