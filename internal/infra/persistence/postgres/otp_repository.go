package postgres

import (
	"context"
	"time"

	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/domain/repository"
	"foodsafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{db: db}
}

func (repo *otpRepository) Create(ctx context.Context, challenge *entity.OTPChallenge) error {
	challengeM := fromOTPChallengeDomain(challenge)

	if err := repo.db.WithContext(ctx).Create(challengeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPersistenceFailed.WrapMessage("missing required otp information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp challenge")
	}

	challenge.ID = challengeM.ID
	challenge.CreatedAt = challengeM.CreatedAt

	return nil
}

// FindLatestLive locks the newest live row so concurrent verifications of the
// same phone serialize on it. Attempt limits are enforced by the caller.
func (repo *otpRepository) FindLatestLive(ctx context.Context, phoneNumber string, now time.Time) (*entity.OTPChallenge, error) {
	var challengeM model.OTPChallengeModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("phone_number = ? AND consumed_at IS NULL AND expires_at > ?", phoneNumber, now).
		Order("created_at DESC").
		First(&challengeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOTPChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find live otp challenge")
	}

	return toOTPChallengeDomain(&challengeM), nil
}

func (repo *otpRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OTPChallengeModel{}).
		Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment otp attempts")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOTPChallengeNotFound
	}

	return nil
}

func (repo *otpRepository) MarkConsumed(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OTPChallengeModel{}).
		Where("id = ? AND consumed_at IS NULL", id).
		UpdateColumn("consumed_at", at)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume otp challenge")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOTPChallengeNotFound
	}

	return nil
}

// ConsumeAllLive is a no-op when the phone has no live challenge.
func (repo *otpRepository) ConsumeAllLive(ctx context.Context, phoneNumber string, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.OTPChallengeModel{}).
		Where("phone_number = ? AND consumed_at IS NULL", phoneNumber).
		UpdateColumn("consumed_at", at).Error

	return errors.Wrap(err, "failed to supersede otp challenges")
}

// --- Mapper Functions ---

func toOTPChallengeDomain(data *model.OTPChallengeModel) *entity.OTPChallenge {
	if data == nil {
		return nil
	}

	return &entity.OTPChallenge{
		ID:          data.ID,
		PhoneNumber: data.PhoneNumber,
		CodeHash:    data.CodeHash,
		Purpose:     entity.OTPPurpose(data.Purpose),
		Name:        data.Name,
		Role:        entity.Role(data.Role),
		Attempts:    data.Attempts,
		ExpiresAt:   data.ExpiresAt,
		ConsumedAt:  data.ConsumedAt,
		CreatedAt:   data.CreatedAt,
	}
}

func fromOTPChallengeDomain(data *entity.OTPChallenge) *model.OTPChallengeModel {
	if data == nil {
		return nil
	}

	return &model.OTPChallengeModel{
		ID:          data.ID,
		PhoneNumber: data.PhoneNumber,
		CodeHash:    data.CodeHash,
		Purpose:     string(data.Purpose),
		Name:        data.Name,
		Role:        string(data.Role),
		Attempts:    data.Attempts,
		ExpiresAt:   data.ExpiresAt,
		ConsumedAt:  data.ConsumedAt,
		CreatedAt:   data.CreatedAt,
	}
}
