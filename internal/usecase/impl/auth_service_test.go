package impl

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

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

// --- lightweight collaborators for flow tests ---

// sequenceCodes hands out 100001, 100002, ...
type sequenceCodes struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceCodes) Generate(length int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++

	return fmt.Sprintf("%0*d", length, 100000+g.next), nil
}

type prefixHasher struct{}

func (prefixHasher) Hash(code string) (string, error) { return "hashed:" + code, nil }

func (prefixHasher) Check(code, hash string) bool { return hash == "hashed:"+code }

// inboxSMS remembers the last code sent to every phone number.
type inboxSMS struct {
	mu    sync.Mutex
	codes map[string]string
}

func (s *inboxSMS) SendOTP(_ context.Context, phoneNumber, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[phoneNumber] = code

	return nil
}

func (s *inboxSMS) last(phoneNumber string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.codes[phoneNumber]
}

// opaqueTokens issues random tokens and remembers who they belong to.
type opaqueTokens struct {
	mu     sync.Mutex
	issued map[string]service.Claims
}

func (ts *opaqueTokens) GenerateTokens(userID uuid.UUID, role string) (string, string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	access := "access-" + uuid.NewString()
	refresh := "refresh-" + uuid.NewString()
	ts.issued[access] = service.Claims{UserID: userID, Role: role, Type: service.TokenTypeAccess}
	ts.issued[refresh] = service.Claims{UserID: userID, Role: role, Type: service.TokenTypeRefresh}

	return access, refresh, nil
}

func (ts *opaqueTokens) validate(token, tokenType string) (*service.Claims, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	claims, ok := ts.issued[token]
	if !ok || claims.Type != tokenType {
		return nil, errors.New("invalid token")
	}

	return &claims, nil
}

func (ts *opaqueTokens) ValidateAccessToken(token string) (*service.Claims, error) {
	return ts.validate(token, service.TokenTypeAccess)
}

func (ts *opaqueTokens) ValidateRefreshToken(token string) (*service.Claims, error) {
	return ts.validate(token, service.TokenTypeRefresh)
}

func (ts *opaqueTokens) GetRefreshTokenDuration() time.Duration { return 24 * time.Hour }

type authFlowFixtures struct {
	service *authService
	store   *memStore
	sms     *inboxSMS
}

func createTestAuthFlow(t *testing.T) authFlowFixtures {
	t.Helper()

	store := newMemStore()
	sms := &inboxSMS{codes: map[string]string{}}

	svc := NewAuthService(AuthServiceParams{
		TxManager:        &memTxManager{store: store},
		UserRepo:         &memUserRepo{store: store},
		RefreshTokenRepo: &memRefreshRepo{store: store},
		Hasher:           prefixHasher{},
		Codes:            &sequenceCodes{},
		SMS:              sms,
		TokenService:     &opaqueTokens{issued: map[string]service.Claims{}},
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return authFlowFixtures{service: svc.(*authService), store: store, sms: sms}
}

const testPhone = "+15550001111"

func TestAuthService_SignupAndVerify_CreatesUser(t *testing.T) {
	fx := createTestAuthFlow(t)
	ctx := context.Background()

	dispatch, err := fx.service.RequestSignupOTP(ctx, usecase.SignupOTPInput{
		Name:        "  Asha  ",
		PhoneNumber: testPhone,
		Role:        entity.RoleBusinessOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, testPhone, dispatch.PhoneNumber)
	assert.Equal(t, 5*time.Minute, dispatch.ExpiresIn)

	code := fx.sms.last(testPhone)
	require.Len(t, code, 6)
	require.Len(t, fx.store.challenges, 1)
	assert.NotEqual(t, code, fx.store.challenges[0].CodeHash, "plaintext code must not be stored")

	session, err := fx.service.VerifyOTP(ctx, testPhone, code)
	require.NoError(t, err)
	assert.Equal(t, "Asha", session.User.Name)
	assert.Equal(t, entity.RoleBusinessOwner, session.User.Role)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Len(t, fx.store.users, 1)
	assert.Len(t, fx.store.refreshTokens, 1)
}

func TestAuthService_VerifyOTP_SingleUse(t *testing.T) {
	fx := createTestAuthFlow(t)
	ctx := context.Background()

	_, err := fx.service.RequestLoginOTP(ctx, testPhone)
	require.NoError(t, err)
	code := fx.sms.last(testPhone)

	_, err = fx.service.VerifyOTP(ctx, testPhone, code)
	require.NoError(t, err)

	_, err = fx.service.VerifyOTP(ctx, testPhone, code)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
}

func TestAuthService_VerifyOTP_ConcurrentOnlyOneWins(t *testing.T) {
	fx := createTestAuthFlow(t)
	ctx := context.Background()

	_, err := fx.service.RequestLoginOTP(ctx, testPhone)
	require.NoError(t, err)
	code := fx.sms.last(testPhone)

	const attempts = 8
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.service.VerifyOTP(ctx, testPhone, code)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++

			continue
		}
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, fx.store.users, 1)
}

func TestAuthService_NewCodeSupersedesOld(t *testing.T) {
	fx := createTestAuthFlow(t)
	ctx := context.Background()

	_, err := fx.service.RequestLoginOTP(ctx, testPhone)
	require.NoError(t, err)
	first := fx.sms.last(testPhone)

	_, err = fx.service.RequestLoginOTP(ctx, testPhone)
	require.NoError(t, err)
	second := fx.sms.last(testPhone)
	require.NotEqual(t, first, second)

	_, err = fx.service.VerifyOTP(ctx, testPhone, first)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)

	_, err = fx.service.VerifyOTP(ctx, testPhone, second)
	assert.NoError(t, err)
}

func TestAuthService_VerifyOTP_WrongCodeCountsAttempts(t *testing.T) {
	fx := createTestAuthFlow(t)
	ctx := context.Background()

	_, err := fx.service.RequestLoginOTP(ctx, testPhone)
	require.NoError(t, err)
	code := fx.sms.last(testPhone)

	for range 3 {
		_, err = fx.service.VerifyOTP(ctx, testPhone, "000000")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
	}
	assert.Equal(t, 3, fx.store.challenges[0].Attempts)

	// The right code no longer helps once attempts are exhausted.
	_, err = fx.service.VerifyOTP(ctx, testPhone, code)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
	assert.NotNil(t, fx.store.challenges[0].ConsumedAt)
	assert.Empty(t, fx.store.users)
}

func TestAuthService_VerifyOTP_Expired(t *testing.T) {
	fx := createTestAuthFlow(t)
	ctx := context.Background()

	_, err := fx.service.RequestLoginOTP(ctx, testPhone)
	require.NoError(t, err)
	code := fx.sms.last(testPhone)

	fx.service.now = func() time.Time { return time.Now().Add(10 * time.Minute) }

	_, err = fx.service.VerifyOTP(ctx, testPhone, code)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
}

func TestAuthService_LoginOTP_DefaultsNewUser(t *testing.T) {
	fx := createTestAuthFlow(t)
	ctx := context.Background()

	_, err := fx.service.RequestLoginOTP(ctx, testPhone)
	require.NoError(t, err)

	session, err := fx.service.VerifyOTP(ctx, testPhone, fx.sms.last(testPhone))
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultUserName, session.User.Name)
	assert.Equal(t, entity.RoleConsumer, session.User.Role)
}

func TestAuthService_BusinessOTP_CreatesOwner(t *testing.T) {
	fx := createTestAuthFlow(t)
	ctx := context.Background()

	_, err := fx.service.RequestBusinessOTP(ctx, testPhone)
	require.NoError(t, err)

	session, err := fx.service.VerifyOTP(ctx, testPhone, fx.sms.last(testPhone))
	require.NoError(t, err)
	assert.True(t, session.User.IsBusinessOwner())
}

func TestAuthService_SignupForExistingPhone_KeepsProfile(t *testing.T) {
	fx := createTestAuthFlow(t)
	ctx := context.Background()

	_, err := fx.service.RequestSignupOTP(ctx, usecase.SignupOTPInput{Name: "First", PhoneNumber: testPhone, Role: entity.RoleConsumer})
	require.NoError(t, err)
	first, err := fx.service.VerifyOTP(ctx, testPhone, fx.sms.last(testPhone))
	require.NoError(t, err)

	_, err = fx.service.RequestSignupOTP(ctx, usecase.SignupOTPInput{Name: "Second", PhoneNumber: testPhone, Role: entity.RoleBusinessOwner})
	require.NoError(t, err)
	second, err := fx.service.VerifyOTP(ctx, testPhone, fx.sms.last(testPhone))
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, "First", second.User.Name)
	assert.Equal(t, entity.RoleConsumer, second.User.Role)
}

func TestAuthService_RequestSignupOTP_Validation(t *testing.T) {
	fx := createTestAuthFlow(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.SignupOTPInput
		want  error
	}{
		{"blank name", usecase.SignupOTPInput{Name: " ", PhoneNumber: testPhone, Role: entity.RoleConsumer}, domainerrors.ErrMissingRequiredFields},
		{"bad role", usecase.SignupOTPInput{Name: "A", PhoneNumber: testPhone, Role: "admin"}, domainerrors.ErrValidationFailed},
		{"blank phone", usecase.SignupOTPInput{Name: "A", PhoneNumber: "  ", Role: entity.RoleConsumer}, domainerrors.ErrMissingRequiredFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.RequestSignupOTP(ctx, tt.input)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
	assert.Empty(t, fx.store.challenges)
}

func TestAuthService_ResolveSession(t *testing.T) {
	fx := createTestAuthFlow(t)
	ctx := context.Background()

	_, err := fx.service.RequestLoginOTP(ctx, testPhone)
	require.NoError(t, err)
	session, err := fx.service.VerifyOTP(ctx, testPhone, fx.sms.last(testPhone))
	require.NoError(t, err)

	user, err := fx.service.ResolveSession(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, user.ID)

	for _, token := range []string{"", "garbage", session.RefreshToken} {
		_, err := fx.service.ResolveSession(ctx, token)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated, "token %q", token)
	}

	delete(fx.store.users, session.User.ID)
	_, err = fx.service.ResolveSession(ctx, session.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_RefreshSession_RotatesAndRejectsReuse(t *testing.T) {
	fx := createTestAuthFlow(t)
	ctx := context.Background()

	_, err := fx.service.RequestLoginOTP(ctx, testPhone)
	require.NoError(t, err)
	session, err := fx.service.VerifyOTP(ctx, testPhone, fx.sms.last(testPhone))
	require.NoError(t, err)

	rotated, err := fx.service.RefreshSession(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)
	assert.Equal(t, session.User.ID, rotated.User.ID)

	_, err = fx.service.RefreshSession(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.RefreshSession(ctx, rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	fx := createTestAuthFlow(t)
	ctx := context.Background()

	_, err := fx.service.RequestLoginOTP(ctx, testPhone)
	require.NoError(t, err)
	session, err := fx.service.VerifyOTP(ctx, testPhone, fx.sms.last(testPhone))
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(ctx, session.RefreshToken))
	require.NoError(t, fx.service.Logout(ctx, session.RefreshToken))
	assert.Empty(t, fx.store.refreshTokens)

	_, err = fx.service.RefreshSession(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	assert.ErrorIs(t, fx.service.Logout(ctx, ""), domainerrors.ErrMissingRequiredFields)
}

// --- mock-driven failure paths ---

type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockCodeHasher
	codes            *mockSvc.MockCodeGenerator
	sms              *mockSvc.MockSMSSender
	tokenService     *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockCodeHasher(t)
	codes := mockSvc.NewMockCodeGenerator(t)
	sms := mockSvc.NewMockSMSSender(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		Codes:            codes,
		SMS:              sms,
		TokenService:     tokenService,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return authServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		codes:            codes,
		sms:              sms,
		tokenService:     tokenService,
	}
}

func TestAuthService_RequestLoginOTP_SMSFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.codes.EXPECT().Generate(6).Return("123456", nil)
	fx.hasher.EXPECT().Hash("123456").Return("hash", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			otpRepo := mockRepo.NewMockOTPRepository(t)
			mockFactory.EXPECT().NewOTPRepository().Return(otpRepo)
			otpRepo.EXPECT().ConsumeAllLive(ctx, testPhone, mock.AnythingOfType("time.Time")).Return(nil)
			otpRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.OTPChallenge")).
				Run(func(_ context.Context, challenge *entity.OTPChallenge) {
					assert.Equal(t, "hash", challenge.CodeHash)
					assert.Equal(t, entity.OTPPurposeLogin, challenge.Purpose)
				}).
				Return(nil)
			_ = fn(mockFactory)
		}).
		Return(nil)
	fx.sms.EXPECT().SendOTP(ctx, testPhone, "123456").Return(errors.New("gateway down"))

	dispatch, err := fx.service.RequestLoginOTP(ctx, testPhone)
	assert.Nil(t, dispatch)
	assert.ErrorIs(t, err, domainerrors.ErrAuthProvider)
	assert.True(t, strings.Contains(err.Error(), "gateway down"))
}

func TestAuthService_RequestLoginOTP_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "failed to create otp challenge")

	fx.codes.EXPECT().Generate(6).Return("123456", nil)
	fx.hasher.EXPECT().Hash("123456").Return("hash", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(dbErr)

	_, err := fx.service.RequestLoginOTP(ctx, testPhone)
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailed)
}

func TestAuthService_RefreshSession_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("bad").Return(nil, errors.New("signature invalid"))

	_, err := fx.service.RefreshSession(ctx, "bad")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_RefreshSession_SubjectMismatch(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("token").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(refreshRepo)
			refreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, mock.AnythingOfType("string")).
				Return(&entity.RefreshToken{UserID: uuid.New()}, nil)
			err := fn(mockFactory)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		}).
		Return(domainerrors.ErrUnauthenticated.WithDetails("refresh token subject mismatch"))

	_, err := fx.service.RefreshSession(ctx, "token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_Logout_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, mock.AnythingOfType("string")).
		Return(errors.New("db down"))

	assert.Error(t, fx.service.Logout(ctx, "token"))
}
