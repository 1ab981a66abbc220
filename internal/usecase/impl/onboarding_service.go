package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foodsafe/config"
	deliverycontext "foodsafe/internal/delivery/context"
	"foodsafe/internal/domain/constants"
	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/domain/repository"
	"foodsafe/internal/domain/service"
	"foodsafe/internal/usecase"
	"foodsafe/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// onboardingService provisions a business with its team and facility photos.
// Uploads happen first, then a single transaction writes every row. A failure
// at any step undoes the uploads already made.
type onboardingService struct {
	txManager     repository.TransactionManager
	businessRepo  repository.BusinessRepository
	manufacturing usecase.RecordUsecase[entity.ManufacturingDetails]
	blobs         service.BlobStorage
	publisher     service.EventPublisher
	compensate    bool
	logger        *slog.Logger
}

// OnboardingServiceParams holds dependencies for OnboardingService, injected by Fx.
type OnboardingServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	BusinessRepo  repository.BusinessRepository
	Manufacturing usecase.RecordUsecase[entity.ManufacturingDetails]
	Blobs         service.BlobStorage
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOnboardingService is the constructor for onboardingService.
func NewOnboardingService(params OnboardingServiceParams) usecase.OnboardingUsecase {
	return &onboardingService{
		txManager:     params.TxManager,
		businessRepo:  params.BusinessRepo,
		manufacturing: params.Manufacturing,
		blobs:         params.Blobs,
		publisher:     params.Publisher,
		compensate:    params.Config.Onboarding == nil || params.Config.Onboarding.Compensate,
		logger:        params.Logger,
	}
}

func (srv *onboardingService) Onboard(ctx context.Context, owner *entity.User, input *usecase.OnboardingInput) (*usecase.OnboardingOutput, error) {
	log := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	start := time.Now()

	if owner == nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("onboarding requires a signed-in owner")
	}
	if err := validateOnboarding(input); err != nil {
		return nil, err
	}

	// Skips the uploads for a known duplicate. Concurrent attempts still race to
	// the unique index; keys carry the attempt's id so a loser only undoes its own objects.
	_, err := srv.businessRepo.FindByLicenseNumber(ctx, strings.TrimSpace(input.LicenseNumber))
	switch {
	case err == nil:
		return nil, domainerrors.ErrBusinessAlreadyExists
	case !errors.Is(err, repository.ErrBusinessNotFound):
		return nil, errors.Wrap(err, "failed to check license number")
	}

	business := &entity.Business{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(input.BusinessName),
		Address:        strings.TrimSpace(input.Address),
		Phone:          strings.TrimSpace(input.Phone),
		Email:          strings.TrimSpace(input.Email),
		LicenseNumber:  strings.TrimSpace(input.LicenseNumber),
		BusinessType:   input.BusinessType,
		OwnerID:        owner.ID,
		OwnerName:      input.OwnerName,
		TradeLicense:   input.TradeLicense,
		GSTNumber:      input.GSTNumber,
		FireSafetyCert: input.FireSafetyCert,
		LiquorLicense:  input.LiquorLicense,
		MusicLicense:   input.MusicLicense,
	}

	stack := &compensationStack{}
	fail := func(err error) (*usecase.OnboardingOutput, error) {
		srv.rollback(ctx, stack, business, err)

		return nil, err
	}

	prefix := fmt.Sprintf("business_%s_%s", blobSafe(business.LicenseNumber), business.ID)

	business.LogoURL, err = srv.upload(ctx, stack, input.Logo,
		fmt.Sprintf("%s_logo.%s", prefix, extensionOf(input.Logo)))
	if err != nil {
		return fail(errors.Wrap(err, "business logo"))
	}

	business.OwnerPhotoURL, err = srv.upload(ctx, stack, input.OwnerPhoto,
		fmt.Sprintf("%s_owner.%s", prefix, extensionOf(input.OwnerPhoto)))
	if err != nil {
		return fail(errors.Wrap(err, "owner photo"))
	}

	teamMembers := make([]*entity.TeamMember, len(input.TeamMemberNames))
	for i, photo := range input.TeamMemberPhotos {
		url, err := srv.upload(ctx, stack, photo,
			fmt.Sprintf("business_%s_team_%d.%s", business.ID, i, extensionOf(photo)))
		if err != nil {
			return fail(errors.Wrapf(err, "team member photo %d", i))
		}
		teamMembers[i] = &entity.TeamMember{
			RecordBase: entity.RecordBase{BusinessID: business.ID},
			Name:       strings.TrimSpace(input.TeamMemberNames[i]),
			Role:       strings.TrimSpace(input.TeamMemberRoles[i]),
			PhotoURL:   url,
		}
	}

	facilityPhotos := make([]*entity.FacilityPhoto, len(input.FacilityPhotos))
	for i, photo := range input.FacilityPhotos {
		url, err := srv.upload(ctx, stack, photo,
			fmt.Sprintf("business_%s_facility_%d.%s", business.ID, i, extensionOf(photo)))
		if err != nil {
			return fail(errors.Wrapf(err, "facility photo %d", i))
		}
		facilityPhotos[i] = &entity.FacilityPhoto{
			RecordBase: entity.RecordBase{BusinessID: business.ID},
			AreaName:   strings.TrimSpace(input.FacilityAreaNames[i]),
			PhotoURL:   url,
		}
	}

	// Rows are written all-or-nothing; a failed transaction leaves only the
	// uploads to undo.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewBusinessRepository().Create(ctx, business); err != nil {
			return errors.Wrap(err, "business")
		}

		teamRepo := repoFactory.NewTeamMemberRepository()
		for i, member := range teamMembers {
			if err := teamRepo.Create(ctx, member); err != nil {
				return errors.Wrapf(err, "team member %d", i)
			}
		}

		photoRepo := repoFactory.NewFacilityPhotoRepository()
		for i, photo := range facilityPhotos {
			if err := photoRepo.Create(ctx, photo); err != nil {
				return errors.Wrapf(err, "facility photo %d", i)
			}
		}

		return nil
	})
	if err != nil {
		return fail(errors.Wrap(err, "failed to save onboarding"))
	}

	srv.publishOnboarded(ctx, business, len(teamMembers), len(facilityPhotos))

	log.Info("Business onboarded",
		slog.String("business_id", business.ID.String()),
		slog.Int("team_members", len(teamMembers)),
		slog.Int("facility_photos", len(facilityPhotos)),
		slog.String("duration", util.FormatDuration(time.Since(start))),
	)

	return &usecase.OnboardingOutput{
		BusinessID:     business.ID,
		LogoURL:        business.LogoURL,
		OwnerPhotoURL:  business.OwnerPhotoURL,
		TeamMembers:    len(teamMembers),
		FacilityPhotos: len(facilityPhotos),
	}, nil
}

// OnboardManufacturing attaches manufacturing details to an existing business.
func (srv *onboardingService) OnboardManufacturing(ctx context.Context, input *usecase.ManufacturingOnboardingInput) (*entity.ManufacturingDetails, error) {
	if input == nil || input.Details == nil {
		return nil, domainerrors.ErrMissingRequiredFields.WithDetails("manufacturing_details")
	}
	if input.BusinessID == uuid.Nil {
		return nil, domainerrors.ErrMissingRequiredFields.WithDetails("businessId")
	}

	if _, err := srv.businessRepo.FindByID(ctx, input.BusinessID); err != nil {
		return nil, mapBusinessLookupError(err)
	}

	input.Details.BusinessID = input.BusinessID

	return srv.manufacturing.Create(ctx, nil, input.Details)
}

func (srv *onboardingService) upload(ctx context.Context, stack *compensationStack, file *usecase.FileUpload, name string) (string, error) {
	r, err := file.Open()
	if err != nil {
		return "", errors.Wrapf(domainerrors.ErrUploadFailed.WithDetails(name), "open upload: %v", err)
	}
	defer r.Close()

	url, err := srv.blobs.Upload(ctx, r, name, file.ContentType)
	if err != nil {
		return "", err
	}

	stack.push("delete blob "+name, func(ctx context.Context) error {
		return srv.blobs.Delete(ctx, name)
	})

	return url, nil
}

func (srv *onboardingService) rollback(ctx context.Context, stack *compensationStack, business *entity.Business, cause error) {
	log := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.String("license_number", business.LicenseNumber),
	)
	log.Warn("Onboarding failed", slog.Any("error", cause))

	if stack.len() == 0 {
		return
	}
	if !srv.compensate {
		log.Warn("Compensation disabled, uploaded files left in place", slog.Int("uploads", stack.len()))

		return
	}

	if err := stack.unwind(ctx, log); err != nil {
		log.Error("Onboarding compensation incomplete", slog.Any("error", err))
	}
}

func (srv *onboardingService) publishOnboarded(ctx context.Context, business *entity.Business, teamMembers, facilityPhotos int) {
	event, err := service.NewDomainEvent(constants.EventBusinessOnboarded, deliverycontext.GetRequestIDFromContext(ctx), service.BusinessOnboardedPayload{
		BusinessID:    business.ID.String(),
		LicenseNumber: business.LicenseNumber,
		OwnerID:       business.OwnerID.String(),
		TeamMembers:   teamMembers,
		FacilityPhoto: facilityPhotos,
	})
	if err == nil {
		err = srv.publisher.Publish(ctx, event)
	}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to publish onboarding event", slog.Any("error", err))
	}
}

// validateOnboarding checks every input shape before any upload or write.
func validateOnboarding(input *usecase.OnboardingInput) error {
	if input == nil {
		return domainerrors.ErrMissingRequiredFields.WithDetails("onboarding form")
	}

	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"business_name", input.BusinessName},
		{"address", input.Address},
		{"phone", input.Phone},
		{"email", input.Email},
		{"license_number", input.LicenseNumber},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if input.Logo == nil {
		missing = append(missing, "business_logo")
	}
	if input.OwnerPhoto == nil {
		missing = append(missing, "owner_photo")
	}
	if len(missing) > 0 {
		return domainerrors.ErrMissingRequiredFields.WithDetails(strings.Join(missing, ", "))
	}

	names, roles, photos := len(input.TeamMemberNames), len(input.TeamMemberRoles), len(input.TeamMemberPhotos)
	if names != roles || names != photos {
		return domainerrors.ErrMismatchedTeamMembers.WithDetails(
			fmt.Sprintf("%d names, %d roles, %d photos", names, roles, photos))
	}
	if len(input.FacilityAreaNames) != len(input.FacilityPhotos) {
		return domainerrors.ErrMismatchedFacilityPhotos.WithDetails(
			fmt.Sprintf("%d area names, %d photos", len(input.FacilityAreaNames), len(input.FacilityPhotos)))
	}

	for i, photo := range input.TeamMemberPhotos {
		if photo == nil {
			return domainerrors.ErrMissingRequiredFields.WithDetails(fmt.Sprintf("team_member_photos[%d]", i))
		}
	}
	for i, photo := range input.FacilityPhotos {
		if photo == nil {
			return domainerrors.ErrMissingRequiredFields.WithDetails(fmt.Sprintf("facility_photos[%d]", i))
		}
	}

	return nil
}

func extensionOf(file *usecase.FileUpload) string {
	return util.FileExtension(file.Filename, file.ContentType)
}

// blobSafe keeps license numbers usable inside object keys.
func blobSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
