package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodsafe/internal/delivery/context"
	"foodsafe/internal/domain/constants"
	"foodsafe/internal/domain/entity"
	"foodsafe/internal/domain/repository"
	"foodsafe/internal/domain/service"
	"foodsafe/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// Record kind names, used in error details and logs.
const (
	KindInspection           = "inspection"
	KindHygieneRating        = "hygiene_rating"
	KindLabReport            = "lab_report"
	KindCertification        = "certification"
	KindTeamMember           = "team_member"
	KindFacilityPhoto        = "facility_photo"
	KindReview               = "review"
	KindManufacturingDetails = "manufacturing_details"
	KindBatchProduction      = "batch_production"
	KindRawMaterialSupplier  = "raw_material_supplier"
	KindPackagingCompliance  = "packaging_compliance"
)

func NewInspectionService(repo repository.RecordRepository[entity.Inspection], validate *validator.Validate, logger *slog.Logger) usecase.RecordUsecase[entity.Inspection] {
	return NewRecordService[entity.Inspection](KindInspection, repo, validate, logger, nil)
}

func NewHygieneRatingService(repo repository.RecordRepository[entity.HygieneRating], validate *validator.Validate, logger *slog.Logger) usecase.RecordUsecase[entity.HygieneRating] {
	return NewRecordService[entity.HygieneRating](KindHygieneRating, repo, validate, logger, nil)
}

func NewLabReportService(repo repository.RecordRepository[entity.LabReport], validate *validator.Validate, logger *slog.Logger) usecase.RecordUsecase[entity.LabReport] {
	return NewRecordService[entity.LabReport](KindLabReport, repo, validate, logger, nil)
}

func NewCertificationService(repo repository.RecordRepository[entity.Certification], validate *validator.Validate, logger *slog.Logger) usecase.RecordUsecase[entity.Certification] {
	return NewRecordService[entity.Certification](KindCertification, repo, validate, logger, nil)
}

func NewTeamMemberService(repo repository.RecordRepository[entity.TeamMember], validate *validator.Validate, logger *slog.Logger) usecase.RecordUsecase[entity.TeamMember] {
	return NewRecordService[entity.TeamMember](KindTeamMember, repo, validate, logger, nil)
}

func NewFacilityPhotoService(repo repository.RecordRepository[entity.FacilityPhoto], validate *validator.Validate, logger *slog.Logger) usecase.RecordUsecase[entity.FacilityPhoto] {
	return NewRecordService[entity.FacilityPhoto](KindFacilityPhoto, repo, validate, logger, nil)
}

// NewReviewService publishes review.created after every stored review so the
// notifier can alert the business owner.
func NewReviewService(repo repository.RecordRepository[entity.Review], validate *validator.Validate, publisher service.EventPublisher, logger *slog.Logger) usecase.RecordUsecase[entity.Review] {
	return NewRecordService[entity.Review](KindReview, repo, validate, logger, publishReviewCreated(publisher, logger))
}

func NewManufacturingDetailsService(repo repository.RecordRepository[entity.ManufacturingDetails], validate *validator.Validate, logger *slog.Logger) usecase.RecordUsecase[entity.ManufacturingDetails] {
	return NewRecordService[entity.ManufacturingDetails](KindManufacturingDetails, repo, validate, logger, nil)
}

func NewBatchProductionService(repo repository.RecordRepository[entity.BatchProduction], validate *validator.Validate, logger *slog.Logger) usecase.RecordUsecase[entity.BatchProduction] {
	return NewRecordService[entity.BatchProduction](KindBatchProduction, repo, validate, logger, nil)
}

func NewRawMaterialSupplierService(repo repository.RecordRepository[entity.RawMaterialSupplier], validate *validator.Validate, logger *slog.Logger) usecase.RecordUsecase[entity.RawMaterialSupplier] {
	return NewRecordService[entity.RawMaterialSupplier](KindRawMaterialSupplier, repo, validate, logger, nil)
}

func NewPackagingComplianceService(repo repository.RecordRepository[entity.PackagingCompliance], validate *validator.Validate, logger *slog.Logger) usecase.RecordUsecase[entity.PackagingCompliance] {
	return NewRecordService[entity.PackagingCompliance](KindPackagingCompliance, repo, validate, logger, nil)
}

func publishReviewCreated(publisher service.EventPublisher, logger *slog.Logger) AfterCreateHook[entity.Review] {
	return func(ctx context.Context, review *entity.Review) {
		log := deliverycontext.GetLoggerOrDefault(ctx, logger)

		event, err := service.NewDomainEvent(constants.EventReviewCreated, deliverycontext.GetRequestIDFromContext(ctx), service.ReviewCreatedPayload{
			ReviewID:   review.ID.String(),
			BusinessID: review.BusinessID.String(),
			Rating:     review.Rating,
			Comment:    review.Comment,
		})
		if err != nil {
			log.Error("Failed to build review event", slog.Any("error", err))

			return
		}

		if err := publisher.Publish(ctx, event); err != nil {
			log.Warn("Failed to publish review event",
				slog.String("review_id", review.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}
