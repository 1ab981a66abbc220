package impl

import (
	"context"
	"testing"
	"time"

	"foodsafe/internal/domain/constants"
	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/domain/repository"
	"foodsafe/internal/domain/service"
	mockRepo "foodsafe/internal/mocks/repository"
	mockSvc "foodsafe/internal/mocks/service"
	"foodsafe/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordService_Create_StampsInspector(t *testing.T) {
	repo := mockRepo.NewMockRecordRepository[entity.Inspection](t)
	svc := NewInspectionService(repo, validation.New(), newDiscardLogger())
	ctx := context.Background()
	caller := &entity.User{ID: uuid.New()}

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Inspection")).
		Run(func(_ context.Context, record *entity.Inspection) {
			record.ID = uuid.New()
		}).
		Return(nil)

	inspection, err := svc.Create(ctx, caller, &entity.Inspection{
		RecordBase: entity.RecordBase{BusinessID: uuid.New()},
		Date:       time.Now(),
		Rating:     4,
	})
	require.NoError(t, err)
	assert.Equal(t, caller.ID, inspection.InspectorID)
}

func TestRecordService_Create_KeepsExplicitActor(t *testing.T) {
	repo := mockRepo.NewMockRecordRepository[entity.Inspection](t)
	svc := NewInspectionService(repo, validation.New(), newDiscardLogger())
	ctx := context.Background()
	inspector := uuid.New()

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Inspection")).
		Run(func(_ context.Context, record *entity.Inspection) {
			record.ID = uuid.New()
		}).
		Return(nil)

	inspection, err := svc.Create(ctx, &entity.User{ID: uuid.New()}, &entity.Inspection{
		RecordBase:  entity.RecordBase{BusinessID: uuid.New()},
		InspectorID: inspector,
		Date:        time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, inspector, inspection.InspectorID)
}

func TestRecordService_Create_ValidationFailed(t *testing.T) {
	tests := []struct {
		name   string
		record *entity.HygieneRating
		field  string
	}{
		{"missing business", &entity.HygieneRating{Rating: 3, Date: time.Now()}, "business_id"},
		{"missing date", &entity.HygieneRating{RecordBase: entity.RecordBase{BusinessID: uuid.New()}, Rating: 3}, "date"},
		{"rating out of range", &entity.HygieneRating{RecordBase: entity.RecordBase{BusinessID: uuid.New()}, Rating: 9, Date: time.Now()}, "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockRecordRepository[entity.HygieneRating](t)
			svc := NewHygieneRatingService(repo, validation.New(), newDiscardLogger())

			_, err := svc.Create(context.Background(), nil, tt.record)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestRecordService_Create_EmptyInsertResult(t *testing.T) {
	repo := mockRepo.NewMockRecordRepository[entity.Certification](t)
	svc := NewCertificationService(repo, validation.New(), newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Certification")).Return(nil)

	_, err := svc.Create(ctx, nil, &entity.Certification{
		RecordBase:        entity.RecordBase{BusinessID: uuid.New()},
		CertificationType: "ISO 22000",
		IssueDate:         time.Now(),
		ExpiryDate:        time.Now().AddDate(1, 0, 0),
		CertificateNumber: "C-1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailed)
	assert.Equal(t, domainerrors.KindPersistence, domainerrors.KindOf(err))
}

func TestRecordService_Create_DuplicateSingleton(t *testing.T) {
	repo := mockRepo.NewMockRecordRepository[entity.ManufacturingDetails](t)
	svc := NewManufacturingDetailsService(repo, validation.New(), newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ManufacturingDetails")).
		Return(domainerrors.ErrRecordAlreadyExists.WithDetails(KindManufacturingDetails))

	_, err := svc.Create(ctx, nil, &entity.ManufacturingDetails{
		RecordBase:           entity.RecordBase{BusinessID: uuid.New()},
		ProductionCapacity:   "500 units/day",
		ManufacturingLicense: "ML-1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrRecordAlreadyExists)
}

func TestRecordService_ListByBusiness_Empty(t *testing.T) {
	repo := mockRepo.NewMockRecordRepository[entity.LabReport](t)
	svc := NewLabReportService(repo, validation.New(), newDiscardLogger())
	ctx := context.Background()
	businessID := uuid.New()

	repo.EXPECT().FindByBusiness(ctx, businessID).Return(nil, nil)

	reports, err := svc.ListByBusiness(ctx, businessID)
	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestRecordService_GetByBusiness_NotFound(t *testing.T) {
	repo := mockRepo.NewMockRecordRepository[entity.PackagingCompliance](t)
	svc := NewPackagingComplianceService(repo, validation.New(), newDiscardLogger())
	ctx := context.Background()
	businessID := uuid.New()

	repo.EXPECT().FindOneByBusiness(ctx, businessID).Return(nil, repository.ErrRecordNotFound)

	_, err := svc.GetByBusiness(ctx, businessID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestRecordService_UpdateByBusiness(t *testing.T) {
	repo := mockRepo.NewMockRecordRepository[entity.ManufacturingDetails](t)
	svc := NewManufacturingDetailsService(repo, validation.New(), newDiscardLogger())
	ctx := context.Background()
	businessID := uuid.New()

	details := &entity.ManufacturingDetails{
		RecordBase:           entity.RecordBase{BusinessID: uuid.New()},
		ProductionCapacity:   "900 units/day",
		ManufacturingLicense: "ML-2",
	}

	repo.EXPECT().
		UpdateByBusiness(ctx, businessID, details).
		Run(func(_ context.Context, _ uuid.UUID, record *entity.ManufacturingDetails) {
			assert.Equal(t, businessID, record.BusinessID, "path business id wins")
		}).
		Return(nil)

	updated, err := svc.UpdateByBusiness(ctx, businessID, details)
	require.NoError(t, err)
	assert.Equal(t, "900 units/day", updated.ProductionCapacity)
}

func TestRecordService_UpdateByBusiness_NotFound(t *testing.T) {
	repo := mockRepo.NewMockRecordRepository[entity.ManufacturingDetails](t)
	svc := NewManufacturingDetailsService(repo, validation.New(), newDiscardLogger())
	ctx := context.Background()
	businessID := uuid.New()

	repo.EXPECT().
		UpdateByBusiness(ctx, businessID, mock.AnythingOfType("*entity.ManufacturingDetails")).
		Return(repository.ErrRecordNotFound)

	_, err := svc.UpdateByBusiness(ctx, businessID, &entity.ManufacturingDetails{
		ProductionCapacity:   "1",
		ManufacturingLicense: "ML-3",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestReviewService_PublishesReviewCreated(t *testing.T) {
	repo := mockRepo.NewMockRecordRepository[entity.Review](t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewReviewService(repo, validation.New(), publisher, newDiscardLogger())
	ctx := context.Background()
	reviewer := &entity.User{ID: uuid.New()}
	businessID := uuid.New()

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(_ context.Context, record *entity.Review) {
			record.ID = uuid.New()
		}).
		Return(nil)
	publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *service.DomainEvent) {
			assert.Equal(t, constants.EventReviewCreated, event.Type)

			var payload service.ReviewCreatedPayload
			require.NoError(t, event.DecodePayload(&payload))
			assert.Equal(t, businessID.String(), payload.BusinessID)
			assert.Equal(t, 5, payload.Rating)
		}).
		Return(nil)

	review, err := svc.Create(ctx, reviewer, &entity.Review{
		RecordBase: entity.RecordBase{BusinessID: businessID},
		Rating:     5,
		Comment:    "Spotless kitchen",
		Date:       time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, reviewer.ID, review.ReviewerID)
}

func TestReviewService_PublishFailureDoesNotFailCreate(t *testing.T) {
	repo := mockRepo.NewMockRecordRepository[entity.Review](t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewReviewService(repo, validation.New(), publisher, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(_ context.Context, record *entity.Review) {
			record.ID = uuid.New()
		}).
		Return(nil)
	publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(errors.New("topic not found"))

	_, err := svc.Create(ctx, &entity.User{ID: uuid.New()}, &entity.Review{
		RecordBase: entity.RecordBase{BusinessID: uuid.New()},
		Rating:     2,
		Date:       time.Now(),
	})
	assert.NoError(t, err)
}
