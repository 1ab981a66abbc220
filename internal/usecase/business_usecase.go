package usecase

import (
	"context"

	"foodsafe/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessUsecase manages businesses, keyed by their own id and by license number.
type BusinessUsecase interface {
	// CreateBusiness registers a business. The owner defaults to the caller.
	CreateBusiness(ctx context.Context, caller *entity.User, business *entity.Business) (*entity.Business, error)

	GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	GetBusinessByLicense(ctx context.Context, licenseNumber string) (*entity.Business, error)

	// UpdateBusiness overwrites every mutable field of the business.
	UpdateBusiness(ctx context.Context, id uuid.UUID, business *entity.Business) (*entity.Business, error)

	// VerificationQR renders the QR code consumers scan to verify the business.
	VerificationQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
