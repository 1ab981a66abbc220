package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRecordNotFound is returned when a record lookup or overwrite matches no row.
var ErrRecordNotFound = errors.New("record not found")

// RecordRepository is the persistence contract shared by every record kind
// attached to a business.
type RecordRepository[E any] interface {
	// Create inserts the record and fills its generated id and timestamps.
	Create(ctx context.Context, record *E) error

	// FindByBusiness returns every record of the business, oldest first.
	// An unknown business yields an empty slice.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*E, error)

	// FindOneByBusiness returns the record of a single-row kind.
	FindOneByBusiness(ctx context.Context, businessID uuid.UUID) (*E, error)

	// UpdateByBusiness overwrites the record of a single-row kind.
	UpdateByBusiness(ctx context.Context, businessID uuid.UUID, record *E) error

	// Delete removes one record by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
