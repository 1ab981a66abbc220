package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodsafe/internal/delivery/context"
	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/domain/repository"
	"foodsafe/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AfterCreateHook runs once a record has been stored. Hooks must not fail the
// request, so they have no error return.
type AfterCreateHook[E any] func(ctx context.Context, record *E)

// recordService is the registry behaviour shared by every record kind.
type recordService[E any, P entity.RecordPtr[E]] struct {
	kind        string
	repo        repository.RecordRepository[E]
	validate    *validator.Validate
	afterCreate AfterCreateHook[E]
	logger      *slog.Logger
}

// NewRecordService builds the use case for one record kind. kind names the
// kind in errors and logs.
func NewRecordService[E any, P entity.RecordPtr[E]](
	kind string,
	repo repository.RecordRepository[E],
	validate *validator.Validate,
	logger *slog.Logger,
	afterCreate AfterCreateHook[E],
) usecase.RecordUsecase[E] {
	return &recordService[E, P]{
		kind:        kind,
		repo:        repo,
		validate:    validate,
		afterCreate: afterCreate,
		logger:      logger,
	}
}

func (srv *recordService[E, P]) Create(ctx context.Context, caller *entity.User, record *E) (*E, error) {
	if record == nil {
		return nil, domainerrors.ErrMissingRequiredFields.WithDetails(srv.kind)
	}
	if stamped, ok := any(P(record)).(entity.ActorStamped); ok && caller != nil {
		stamped.StampActor(caller.ID)
	}
	if err := validateStruct(srv.validate, record); err != nil {
		return nil, err
	}

	if err := srv.repo.Create(ctx, record); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to create record",
			slog.String("kind", srv.kind),
			slog.Any("error", err),
		)

		return nil, errors.Wrapf(err, "failed to create %s", srv.kind)
	}
	if P(record).Base().ID == uuid.Nil {
		return nil, domainerrors.ErrPersistenceFailed.WithDetails(srv.kind + " insert returned no row")
	}

	if srv.afterCreate != nil {
		srv.afterCreate(ctx, record)
	}

	return record, nil
}

func (srv *recordService[E, P]) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*E, error) {
	records, err := srv.repo.FindByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s records", srv.kind)
	}
	if records == nil {
		records = []*E{}
	}

	return records, nil
}

func (srv *recordService[E, P]) GetByBusiness(ctx context.Context, businessID uuid.UUID) (*E, error) {
	record, err := srv.repo.FindOneByBusiness(ctx, businessID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails(srv.kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", srv.kind)
	}

	return record, nil
}

// UpdateByBusiness overwrites every field; the business id in the path wins
// over the one in the payload.
func (srv *recordService[E, P]) UpdateByBusiness(ctx context.Context, businessID uuid.UUID, record *E) (*E, error) {
	if record == nil {
		return nil, domainerrors.ErrMissingRequiredFields.WithDetails(srv.kind)
	}
	P(record).Base().BusinessID = businessID
	if err := validateStruct(srv.validate, record); err != nil {
		return nil, err
	}

	err := srv.repo.UpdateByBusiness(ctx, businessID, record)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails(srv.kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update %s", srv.kind)
	}

	return record, nil
}
