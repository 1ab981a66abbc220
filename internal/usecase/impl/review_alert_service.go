package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "foodsafe/internal/delivery/context"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/domain/repository"
	"foodsafe/internal/domain/service"
	"foodsafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewAlertService struct {
	businessRepo        repository.BusinessRepository
	deviceRepo          repository.DeviceRepository
	notificationService service.NotificationService
	logger              *slog.Logger
}

// ReviewAlertServiceParams holds dependencies for ReviewAlertService, injected by Fx.
type ReviewAlertServiceParams struct {
	fx.In

	BusinessRepo        repository.BusinessRepository
	DeviceRepo          repository.DeviceRepository
	NotificationService service.NotificationService
	Logger              *slog.Logger
}

// NewReviewAlertService is the constructor for reviewAlertService.
func NewReviewAlertService(params ReviewAlertServiceParams) usecase.ReviewAlertUsecase {
	return &reviewAlertService{
		businessRepo:        params.BusinessRepo,
		deviceRepo:          params.DeviceRepo,
		notificationService: params.NotificationService,
		logger:              params.Logger,
	}
}

// NotifyReviewCreated alerts every active device of the business owner.
// Tokens Firebase reports as invalid are deactivated so later alerts skip them.
func (srv *reviewAlertService) NotifyReviewCreated(ctx context.Context, payload *service.ReviewCreatedPayload) (*usecase.ReviewAlertResult, error) {
	log := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if payload == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty review payload")
	}
	businessID, err := uuid.Parse(payload.BusinessID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid business_id")
	}

	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return nil, mapBusinessLookupError(err)
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, business.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find owner devices")
	}

	result := &usecase.ReviewAlertResult{Devices: len(devices)}
	if len(devices) == 0 {
		log.Info("Business owner has no active devices", slog.String("business_id", businessID.String()))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	msg := service.PushMessage{
		Title: "New review for " + business.Name,
		Body:  reviewAlertBody(payload),
		Data: map[string]string{
			"type":        "review_created",
			"review_id":   payload.ReviewID,
			"business_id": payload.BusinessID,
		},
	}

	var invalid []string
	for start := 0; start < len(tokens); start += service.MaxPushBatchSize {
		end := min(start+service.MaxPushBatchSize, len(tokens))

		batch, err := srv.notificationService.SendBatch(ctx, tokens[start:end], msg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to send batch %d-%d", start, end)
		}
		result.Sent += batch.SuccessCount
		result.Failed += batch.FailureCount
		invalid = append(invalid, batch.InvalidTokens...)
	}

	if len(invalid) > 0 {
		if err := srv.deviceRepo.DeactivateByFCMTokens(ctx, invalid); err != nil {
			log.Warn("Failed to deactivate invalid tokens", slog.Int("count", len(invalid)), slog.Any("error", err))
		} else {
			result.InvalidTokens = len(invalid)
		}
	}

	log.Info("Review alert sent",
		slog.String("business_id", businessID.String()),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func reviewAlertBody(payload *service.ReviewCreatedPayload) string {
	if payload.Comment == "" {
		return fmt.Sprintf("A customer rated you %d/5", payload.Rating)
	}

	return fmt.Sprintf("%d/5: %s", payload.Rating, payload.Comment)
}
