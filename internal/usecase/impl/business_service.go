package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "foodsafe/internal/delivery/context"
	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/domain/repository"
	"foodsafe/internal/domain/service"
	"foodsafe/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type businessService struct {
	businessRepo repository.BusinessRepository
	qrService    service.QRCodeService
	validate     *validator.Validate
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	QRService    service.QRCodeService
	Validate     *validator.Validate
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		qrService:    params.QRService,
		validate:     params.Validate,
		logger:       params.Logger,
	}
}

// CreateBusiness relies on the unique index on license_number, so two
// concurrent creates with the same license cannot both succeed.
func (srv *businessService) CreateBusiness(ctx context.Context, caller *entity.User, business *entity.Business) (*entity.Business, error) {
	if business.OwnerID == uuid.Nil && caller != nil {
		business.OwnerID = caller.ID
	}
	if err := validateStruct(srv.validate, business); err != nil {
		return nil, err
	}
	if business.OwnerID == uuid.Nil {
		return nil, domainerrors.ErrMissingRequiredFields.WithDetails("owner_id")
	}

	business.ID = uuid.New()
	if err := srv.businessRepo.Create(ctx, business); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to create business",
			slog.String("license_number", business.LicenseNumber),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to create business")
	}

	return business, nil
}

func (srv *businessService) GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapBusinessLookupError(err)
	}

	return business, nil
}

func (srv *businessService) GetBusinessByLicense(ctx context.Context, licenseNumber string) (*entity.Business, error) {
	licenseNumber = strings.TrimSpace(licenseNumber)
	if licenseNumber == "" {
		return nil, domainerrors.ErrMissingRequiredFields.WithDetails("license_number")
	}

	business, err := srv.businessRepo.FindByLicenseNumber(ctx, licenseNumber)
	if err != nil {
		return nil, mapBusinessLookupError(err)
	}

	return business, nil
}

// UpdateBusiness is a full overwrite; the id and owner stay as stored when the
// payload leaves the owner empty.
func (srv *businessService) UpdateBusiness(ctx context.Context, id uuid.UUID, business *entity.Business) (*entity.Business, error) {
	if err := validateStruct(srv.validate, business); err != nil {
		return nil, err
	}

	current, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapBusinessLookupError(err)
	}

	business.ID = id
	business.CreatedAt = current.CreatedAt
	if business.OwnerID == uuid.Nil {
		business.OwnerID = current.OwnerID
	}

	if err := srv.businessRepo.Update(ctx, business); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to update business")
	}

	return business, nil
}

// VerificationQR renders the QR code encoding the business license number.
func (srv *businessService) VerificationQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	business, err := srv.GetBusiness(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateBusinessQR(business.LicenseNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate business QR code")
	}

	return png, nil
}

func mapBusinessLookupError(err error) error {
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return domainerrors.ErrBusinessNotFound
	}

	return errors.Wrap(err, "failed to load business")
}

// validateStruct runs struct-tag validation and reports the offending fields.
func validateStruct(validate *validator.Validate, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field()+" "+fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, ", "))
}
