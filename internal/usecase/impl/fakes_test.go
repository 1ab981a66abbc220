package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"foodsafe/config"
	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			OTP: config.OTPConfig{Length: 6, TTL: 5 * time.Minute, MaxAttempts: 3},
		},
		Onboarding: &config.OnboardingConfig{Compensate: true},
	}
}

// memStore is an in-memory stand-in for the database. Transactions are
// serialized and roll back by restoring a snapshot, which is enough to observe
// atomicity and single-use semantics in tests.
type memStore struct {
	mu sync.Mutex

	users          map[uuid.UUID]entity.User
	challenges     []entity.OTPChallenge
	refreshTokens  map[string]entity.RefreshToken
	businesses     map[uuid.UUID]entity.Business
	teamMembers    []entity.TeamMember
	facilityPhotos []entity.FacilityPhoto

	// failTeamMemberInsert makes the n-th team member insert (1-based) fail.
	failTeamMemberInsert int
	teamMemberInserts    int
}

func newMemStore() *memStore {
	return &memStore{
		users:         map[uuid.UUID]entity.User{},
		refreshTokens: map[string]entity.RefreshToken{},
		businesses:    map[uuid.UUID]entity.Business{},
	}
}

type memSnapshot struct {
	users          map[uuid.UUID]entity.User
	challenges     []entity.OTPChallenge
	refreshTokens  map[string]entity.RefreshToken
	businesses     map[uuid.UUID]entity.Business
	teamMembers    []entity.TeamMember
	facilityPhotos []entity.FacilityPhoto
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		users:          maps.Clone(s.users),
		challenges:     slices.Clone(s.challenges),
		refreshTokens:  maps.Clone(s.refreshTokens),
		businesses:     maps.Clone(s.businesses),
		teamMembers:    slices.Clone(s.teamMembers),
		facilityPhotos: slices.Clone(s.facilityPhotos),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.users = snap.users
	s.challenges = snap.challenges
	s.refreshTokens = snap.refreshTokens
	s.businesses = snap.businesses
	s.teamMembers = snap.teamMembers
	s.facilityPhotos = snap.facilityPhotos
}

// run executes fn under the store lock unless the caller already holds it.
func (s *memStore) run(inTx bool, fn func() error) error {
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	return fn()
}

// --- TransactionManager ---

type memTxManager struct {
	store *memStore
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	snap := m.store.snapshot()
	if err := fn(&memFactory{store: m.store}); err != nil {
		m.store.restore(snap)

		return err
	}

	return nil
}

type memFactory struct {
	store *memStore
}

func (f *memFactory) NewUserRepository() repository.UserRepository {
	return &memUserRepo{store: f.store, inTx: true}
}

func (f *memFactory) NewOTPRepository() repository.OTPRepository {
	return &memOTPRepo{store: f.store}
}

func (f *memFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return &memRefreshRepo{store: f.store, inTx: true}
}

func (f *memFactory) NewBusinessRepository() repository.BusinessRepository {
	return &memBusinessRepo{store: f.store, inTx: true}
}

func (f *memFactory) NewTeamMemberRepository() repository.RecordRepository[entity.TeamMember] {
	return &memTeamMemberRepo{store: f.store}
}

func (f *memFactory) NewFacilityPhotoRepository() repository.RecordRepository[entity.FacilityPhoto] {
	return &memFacilityPhotoRepo{store: f.store}
}

// --- Users ---

type memUserRepo struct {
	store *memStore
	inTx  bool
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	var found *entity.User
	err := r.store.run(r.inTx, func() error {
		user, ok := r.store.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		found = &user

		return nil
	})

	return found, err
}

func (r *memUserRepo) FindByPhoneNumber(_ context.Context, phoneNumber string) (*entity.User, error) {
	var found *entity.User
	err := r.store.run(r.inTx, func() error {
		for _, user := range r.store.users {
			if user.PhoneNumber == phoneNumber {
				found = &user

				return nil
			}
		}

		return repository.ErrUserNotFound
	})

	return found, err
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	return r.store.run(r.inTx, func() error {
		user.ID = uuid.New()
		user.CreatedAt = time.Now()
		user.UpdatedAt = user.CreatedAt
		r.store.users[user.ID] = *user

		return nil
	})
}

// --- OTP challenges (transaction only) ---

type memOTPRepo struct {
	store *memStore
}

func (r *memOTPRepo) Create(_ context.Context, challenge *entity.OTPChallenge) error {
	challenge.ID = uuid.New()
	challenge.CreatedAt = time.Now()
	r.store.challenges = append(r.store.challenges, *challenge)

	return nil
}

func (r *memOTPRepo) FindLatestLive(_ context.Context, phoneNumber string, now time.Time) (*entity.OTPChallenge, error) {
	for i := len(r.store.challenges) - 1; i >= 0; i-- {
		c := r.store.challenges[i]
		if c.PhoneNumber == phoneNumber && c.ConsumedAt == nil && now.Before(c.ExpiresAt) {
			return &c, nil
		}
	}

	return nil, repository.ErrOTPChallengeNotFound
}

func (r *memOTPRepo) update(id uuid.UUID, fn func(*entity.OTPChallenge)) error {
	for i := range r.store.challenges {
		if r.store.challenges[i].ID == id {
			fn(&r.store.challenges[i])

			return nil
		}
	}

	return repository.ErrOTPChallengeNotFound
}

func (r *memOTPRepo) IncrementAttempts(_ context.Context, id uuid.UUID) error {
	return r.update(id, func(c *entity.OTPChallenge) { c.Attempts++ })
}

func (r *memOTPRepo) MarkConsumed(_ context.Context, id uuid.UUID, at time.Time) error {
	return r.update(id, func(c *entity.OTPChallenge) { c.ConsumedAt = &at })
}

func (r *memOTPRepo) ConsumeAllLive(_ context.Context, phoneNumber string, at time.Time) error {
	for i := range r.store.challenges {
		if r.store.challenges[i].PhoneNumber == phoneNumber && r.store.challenges[i].ConsumedAt == nil {
			r.store.challenges[i].ConsumedAt = &at
		}
	}

	return nil
}

// --- Refresh tokens ---

type memRefreshRepo struct {
	store *memStore
	inTx  bool
}

func (r *memRefreshRepo) CreateRefreshToken(_ context.Context, token *entity.RefreshToken) error {
	return r.store.run(r.inTx, func() error {
		token.ID = uuid.New()
		r.store.refreshTokens[token.TokenHash] = *token

		return nil
	})
}

func (r *memRefreshRepo) FindRefreshTokenByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var found *entity.RefreshToken
	err := r.store.run(r.inTx, func() error {
		token, ok := r.store.refreshTokens[tokenHash]
		if !ok {
			return repository.ErrRefreshTokenNotFound
		}
		if token.ExpiresAt.Before(time.Now()) {
			return repository.ErrRefreshTokenExpired
		}
		found = &token

		return nil
	})

	return found, err
}

func (r *memRefreshRepo) DeleteRefreshTokenByHash(_ context.Context, tokenHash string) error {
	return r.store.run(r.inTx, func() error {
		if _, ok := r.store.refreshTokens[tokenHash]; !ok {
			return repository.ErrRefreshTokenNotFound
		}
		delete(r.store.refreshTokens, tokenHash)

		return nil
	})
}

func (r *memRefreshRepo) DeleteRefreshTokensByUserID(_ context.Context, userID uuid.UUID) error {
	return r.store.run(r.inTx, func() error {
		maps.DeleteFunc(r.store.refreshTokens, func(_ string, t entity.RefreshToken) bool { return t.UserID == userID })

		return nil
	})
}

func (r *memRefreshRepo) DeleteExpiredRefreshTokens(_ context.Context) error {
	return r.store.run(r.inTx, func() error {
		now := time.Now()
		maps.DeleteFunc(r.store.refreshTokens, func(_ string, t entity.RefreshToken) bool { return t.ExpiresAt.Before(now) })

		return nil
	})
}

// --- Businesses ---

type memBusinessRepo struct {
	store *memStore
	inTx  bool
}

func (r *memBusinessRepo) Create(_ context.Context, business *entity.Business) error {
	return r.store.run(r.inTx, func() error {
		for _, existing := range r.store.businesses {
			if existing.LicenseNumber == business.LicenseNumber {
				return domainerrors.ErrBusinessAlreadyExists
			}
		}
		if business.ID == uuid.Nil {
			business.ID = uuid.New()
		}
		business.CreatedAt = time.Now()
		business.UpdatedAt = business.CreatedAt
		r.store.businesses[business.ID] = *business

		return nil
	})
}

func (r *memBusinessRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Business, error) {
	var found *entity.Business
	err := r.store.run(r.inTx, func() error {
		business, ok := r.store.businesses[id]
		if !ok {
			return repository.ErrBusinessNotFound
		}
		found = &business

		return nil
	})

	return found, err
}

func (r *memBusinessRepo) FindByLicenseNumber(_ context.Context, licenseNumber string) (*entity.Business, error) {
	var found *entity.Business
	err := r.store.run(r.inTx, func() error {
		for _, business := range r.store.businesses {
			if business.LicenseNumber == licenseNumber {
				found = &business

				return nil
			}
		}

		return repository.ErrBusinessNotFound
	})

	return found, err
}

func (r *memBusinessRepo) Update(_ context.Context, business *entity.Business) error {
	return r.store.run(r.inTx, func() error {
		if _, ok := r.store.businesses[business.ID]; !ok {
			return repository.ErrBusinessNotFound
		}
		business.UpdatedAt = time.Now()
		r.store.businesses[business.ID] = *business

		return nil
	})
}

// --- Team members and facility photos (transaction only) ---

type memTeamMemberRepo struct {
	store *memStore
}

func (r *memTeamMemberRepo) Create(_ context.Context, record *entity.TeamMember) error {
	r.store.teamMemberInserts++
	if r.store.failTeamMemberInsert == r.store.teamMemberInserts {
		return domainerrors.NewDatabaseExecuteError(io.ErrUnexpectedEOF, "failed to create team member")
	}
	if _, ok := r.store.businesses[record.BusinessID]; !ok {
		return domainerrors.ErrPersistenceFailed.WrapMessage("unknown business_id")
	}
	record.ID = uuid.New()
	r.store.teamMembers = append(r.store.teamMembers, *record)

	return nil
}

func (r *memTeamMemberRepo) FindByBusiness(_ context.Context, businessID uuid.UUID) ([]*entity.TeamMember, error) {
	var out []*entity.TeamMember
	for _, member := range r.store.teamMembers {
		if member.BusinessID == businessID {
			out = append(out, &member)
		}
	}

	return out, nil
}

func (r *memTeamMemberRepo) FindOneByBusiness(context.Context, uuid.UUID) (*entity.TeamMember, error) {
	return nil, repository.ErrRecordNotFound
}

func (r *memTeamMemberRepo) UpdateByBusiness(context.Context, uuid.UUID, *entity.TeamMember) error {
	return repository.ErrRecordNotFound
}

func (r *memTeamMemberRepo) Delete(context.Context, uuid.UUID) error {
	return repository.ErrRecordNotFound
}

type memFacilityPhotoRepo struct {
	store *memStore
}

func (r *memFacilityPhotoRepo) Create(_ context.Context, record *entity.FacilityPhoto) error {
	if _, ok := r.store.businesses[record.BusinessID]; !ok {
		return domainerrors.ErrPersistenceFailed.WrapMessage("unknown business_id")
	}
	record.ID = uuid.New()
	r.store.facilityPhotos = append(r.store.facilityPhotos, *record)

	return nil
}

func (r *memFacilityPhotoRepo) FindByBusiness(_ context.Context, businessID uuid.UUID) ([]*entity.FacilityPhoto, error) {
	var out []*entity.FacilityPhoto
	for _, photo := range r.store.facilityPhotos {
		if photo.BusinessID == businessID {
			out = append(out, &photo)
		}
	}

	return out, nil
}

func (r *memFacilityPhotoRepo) FindOneByBusiness(context.Context, uuid.UUID) (*entity.FacilityPhoto, error) {
	return nil, repository.ErrRecordNotFound
}

func (r *memFacilityPhotoRepo) UpdateByBusiness(context.Context, uuid.UUID, *entity.FacilityPhoto) error {
	return repository.ErrRecordNotFound
}

func (r *memFacilityPhotoRepo) Delete(context.Context, uuid.UUID) error {
	return repository.ErrRecordNotFound
}
