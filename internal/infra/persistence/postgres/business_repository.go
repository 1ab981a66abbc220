package postgres

import (
	"context"

	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/domain/repository"
	"foodsafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// businessRepository implements repository.BusinessRepository using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// Create inserts the business. The unique index on license_number turns a
// concurrent duplicate into ErrBusinessAlreadyExists.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(businessM).Error; err != nil {
		return businessWriteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *businessRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*entity.Business, error) {
	return repo.findOne(ctx, "license_number = ?", licenseNumber)
}

// Update overwrites every mutable column, zero values included.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	result := repo.db.WithContext(ctx).
		Model(businessM).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(businessM)
	if result.Error != nil {
		return businessWriteError(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

func (repo *businessRepository) findOne(ctx context.Context, query string, arg any) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find business")
	}

	return toBusinessDomain(&businessM), nil
}

func businessWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrBusinessAlreadyExists
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrPersistenceFailed.WrapMessage("unknown owner_id")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrPersistenceFailed.WrapMessage("missing required business information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:             data.ID,
		Name:           data.Name,
		Address:        data.Address,
		Phone:          data.Phone,
		Email:          data.Email,
		LicenseNumber:  data.LicenseNumber,
		BusinessType:   data.BusinessType,
		OwnerID:        data.OwnerID,
		OwnerName:      data.OwnerName,
		OwnerPhotoURL:  data.OwnerPhotoURL,
		LogoURL:        data.LogoURL,
		TradeLicense:   data.TradeLicense,
		GSTNumber:      data.GSTNumber,
		FireSafetyCert: data.FireSafetyCert,
		LiquorLicense:  data.LiquorLicense,
		MusicLicense:   data.MusicLicense,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:             data.ID,
		Name:           data.Name,
		Address:        data.Address,
		Phone:          data.Phone,
		Email:          data.Email,
		LicenseNumber:  data.LicenseNumber,
		BusinessType:   data.BusinessType,
		OwnerID:        data.OwnerID,
		OwnerName:      data.OwnerName,
		OwnerPhotoURL:  data.OwnerPhotoURL,
		LogoURL:        data.LogoURL,
		TradeLicense:   data.TradeLicense,
		GSTNumber:      data.GSTNumber,
		FireSafetyCert: data.FireSafetyCert,
		LiquorLicense:  data.LiquorLicense,
		MusicLicense:   data.MusicLicense,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
