package usecase

import (
	"context"

	"foodsafe/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordUsecase is the registry contract shared by every record kind.
type RecordUsecase[E any] interface {
	// Create validates and stores a record. caller is stamped as the author on
	// kinds that carry one.
	Create(ctx context.Context, caller *entity.User, record *E) (*E, error)

	// ListByBusiness returns all records of a business; never an error for an empty result.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*E, error)

	// GetByBusiness returns the record of a single-row kind.
	GetByBusiness(ctx context.Context, businessID uuid.UUID) (*E, error)

	// UpdateByBusiness overwrites the record of a single-row kind.
	UpdateByBusiness(ctx context.Context, businessID uuid.UUID, record *E) (*E, error)
}
