package impl

import (
	"context"
	"fmt"
	"testing"

	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/domain/repository"
	"foodsafe/internal/domain/service"
	mockRepo "foodsafe/internal/mocks/repository"
	mockSvc "foodsafe/internal/mocks/service"
	"foodsafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewAlertFixtures struct {
	service             usecase.ReviewAlertUsecase
	businessRepo        *mockRepo.MockBusinessRepository
	deviceRepo          *mockRepo.MockDeviceRepository
	notificationService *mockSvc.MockNotificationService
}

func createTestReviewAlertService(t *testing.T) reviewAlertFixtures {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationService := mockSvc.NewMockNotificationService(t)

	service := NewReviewAlertService(ReviewAlertServiceParams{
		BusinessRepo:        businessRepo,
		DeviceRepo:          deviceRepo,
		NotificationService: notificationService,
		Logger:              newDiscardLogger(),
	})

	return reviewAlertFixtures{
		service:             service,
		businessRepo:        businessRepo,
		deviceRepo:          deviceRepo,
		notificationService: notificationService,
	}
}

func devicesWithTokens(userID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, n)
	for i := range devices {
		devices[i] = &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i), IsActive: true}
	}

	return devices
}

func TestReviewAlertService_NotifyReviewCreated(t *testing.T) {
	fx := createTestReviewAlertService(t)
	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), Name: "Green Leaf", OwnerID: uuid.New()}

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, business.OwnerID).Return(devicesWithTokens(business.OwnerID, 2), nil)
	fx.notificationService.EXPECT().
		SendBatch(ctx, []string{"token-0", "token-1"}, mock.AnythingOfType("service.PushMessage")).
		Run(func(_ context.Context, _ []string, msg service.PushMessage) {
			assert.Equal(t, "New review for Green Leaf", msg.Title)
			assert.Equal(t, "4/5: Great food", msg.Body)
		}).
		Return(&service.PushBatchResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"token-1"}}, nil)
	fx.deviceRepo.EXPECT().DeactivateByFCMTokens(ctx, []string{"token-1"}).Return(nil)

	result, err := fx.service.NotifyReviewCreated(ctx, &service.ReviewCreatedPayload{
		ReviewID:   uuid.NewString(),
		BusinessID: business.ID.String(),
		Rating:     4,
		Comment:    "Great food",
	})
	require.NoError(t, err)
	assert.Equal(t, &usecase.ReviewAlertResult{Devices: 2, Sent: 1, Failed: 1, InvalidTokens: 1}, result)
}

func TestReviewAlertService_SplitsIntoBatches(t *testing.T) {
	fx := createTestReviewAlertService(t)
	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), OwnerID: uuid.New()}

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, business.OwnerID).
		Return(devicesWithTokens(business.OwnerID, service.MaxPushBatchSize+1), nil)

	var batchSizes []int
	fx.notificationService.EXPECT().
		SendBatch(ctx, mock.AnythingOfType("[]string"), mock.AnythingOfType("service.PushMessage")).
		Run(func(_ context.Context, tokens []string, _ service.PushMessage) {
			batchSizes = append(batchSizes, len(tokens))
		}).
		Return(&service.PushBatchResult{SuccessCount: 1}, nil).
		Times(2)

	result, err := fx.service.NotifyReviewCreated(ctx, &service.ReviewCreatedPayload{BusinessID: business.ID.String(), Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, []int{service.MaxPushBatchSize, 1}, batchSizes)
	assert.Equal(t, 2, result.Sent)
}

func TestReviewAlertService_NoDevices(t *testing.T) {
	fx := createTestReviewAlertService(t)
	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), OwnerID: uuid.New()}

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, business.OwnerID).Return([]*entity.UserDevice{}, nil)

	result, err := fx.service.NotifyReviewCreated(ctx, &service.ReviewCreatedPayload{BusinessID: business.ID.String()})
	require.NoError(t, err)
	assert.Zero(t, result.Devices)
}

func TestReviewAlertService_PermanentFailures(t *testing.T) {
	fx := createTestReviewAlertService(t)
	ctx := context.Background()
	missing := uuid.New()

	_, err := fx.service.NotifyReviewCreated(ctx, &service.ReviewCreatedPayload{BusinessID: "not-a-uuid"})
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))

	fx.businessRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrBusinessNotFound)
	_, err = fx.service.NotifyReviewCreated(ctx, &service.ReviewCreatedPayload{BusinessID: missing.String()})
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestReviewAlertService_SendFailureIsRetryable(t *testing.T) {
	fx := createTestReviewAlertService(t)
	ctx := context.Background()
	business := &entity.Business{ID: uuid.New(), OwnerID: uuid.New()}

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, business.OwnerID).Return(devicesWithTokens(business.OwnerID, 1), nil)
	fx.notificationService.EXPECT().
		SendBatch(ctx, []string{"token-0"}, mock.AnythingOfType("service.PushMessage")).
		Return(nil, errors.New("firebase unavailable"))

	_, err := fx.service.NotifyReviewCreated(ctx, &service.ReviewCreatedPayload{BusinessID: business.ID.String()})
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}
