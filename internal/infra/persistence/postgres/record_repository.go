package postgres

import (
	"context"

	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recordRepository stores one record kind in its own table. E is the domain
// entity, M the GORM model; the mappers translate between them.
type recordRepository[E any, P entity.RecordPtr[E], M any] struct {
	db         *gorm.DB
	kind       string
	toDomain   func(*M) *E
	fromDomain func(*E) *M
}

func newRecordRepository[E any, P entity.RecordPtr[E], M any](
	db *gorm.DB,
	kind string,
	toDomain func(*M) *E,
	fromDomain func(*E) *M,
) *recordRepository[E, P, M] {
	return &recordRepository[E, P, M]{
		db:         db,
		kind:       kind,
		toDomain:   toDomain,
		fromDomain: fromDomain,
	}
}

// Create inserts the record and copies the generated columns back into it.
func (repo *recordRepository[E, P, M]) Create(ctx context.Context, record *E) error {
	recordM := repo.fromDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return repo.writeError(err, "failed to create "+repo.kind)
	}

	*record = *repo.toDomain(recordM)

	return nil
}

func (repo *recordRepository[E, P, M]) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*E, error) {
	var recordModels []*M

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list "+repo.kind)
	}

	records := make([]*E, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, repo.toDomain(recordM))
	}

	return records, nil
}

func (repo *recordRepository[E, P, M]) FindOneByBusiness(ctx context.Context, businessID uuid.UUID) (*E, error) {
	recordM := new(M)

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at ASC").
		First(recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find "+repo.kind)
	}

	return repo.toDomain(recordM), nil
}

// UpdateByBusiness keeps the stored id and created_at and overwrites every other column.
func (repo *recordRepository[E, P, M]) UpdateByBusiness(ctx context.Context, businessID uuid.UUID, record *E) error {
	current, err := repo.FindOneByBusiness(ctx, businessID)
	if err != nil {
		return err
	}

	base := P(record).Base()
	stored := P(current).Base()
	base.ID = stored.ID
	base.BusinessID = businessID
	base.CreatedAt = stored.CreatedAt

	recordM := repo.fromDomain(record)
	result := repo.db.WithContext(ctx).
		Model(recordM).
		Select("*").
		Omit("id", "business_id", "created_at").
		Updates(recordM)
	if result.Error != nil {
		return repo.writeError(result.Error, "failed to update "+repo.kind)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	*record = *repo.toDomain(recordM)

	return nil
}

func (repo *recordRepository[E, P, M]) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+repo.kind)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

func (repo *recordRepository[E, P, M]) writeError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrRecordAlreadyExists.WithDetails(repo.kind)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrPersistenceFailed.WrapMessage("unknown business_id")
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrPersistenceFailed.WrapMessage("invalid " + repo.kind)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
