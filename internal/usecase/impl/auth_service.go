// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"foodsafe/config"
	deliverycontext "foodsafe/internal/delivery/context"
	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/domain/repository"
	"foodsafe/internal/domain/service"
	"foodsafe/internal/usecase"
	"foodsafe/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements usecase.AuthUsecase on top of stored OTP challenges,
// an SMS gateway and JWT sessions.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.CodeHasher
	codes            service.CodeGenerator
	sms              service.SMSSender
	tokenService     service.TokenService
	otp              config.OTPConfig
	now              func() time.Time
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.CodeHasher
	Codes            service.CodeGenerator
	SMS              service.SMSSender
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		codes:            params.Codes,
		sms:              params.SMS,
		tokenService:     params.TokenService,
		otp:              params.Config.Auth.OTP,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestSignupOTP records the signup profile on the challenge. An existing
// account keeps its profile; the code simply logs it in.
func (srv *authService) RequestSignupOTP(ctx context.Context, input usecase.SignupOTPInput) (*usecase.OTPDispatch, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrMissingRequiredFields.WithDetails("name")
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user_type must be consumer or business_owner")
	}

	return srv.issue(ctx, &entity.OTPChallenge{
		PhoneNumber: input.PhoneNumber,
		Purpose:     entity.OTPPurposeSignup,
		Name:        strings.TrimSpace(input.Name),
		Role:        input.Role,
	})
}

func (srv *authService) RequestLoginOTP(ctx context.Context, phoneNumber string) (*usecase.OTPDispatch, error) {
	return srv.issue(ctx, &entity.OTPChallenge{PhoneNumber: phoneNumber, Purpose: entity.OTPPurposeLogin})
}

// RequestBusinessOTP issues a login code whose first verification creates a business owner.
func (srv *authService) RequestBusinessOTP(ctx context.Context, phoneNumber string) (*usecase.OTPDispatch, error) {
	return srv.issue(ctx, &entity.OTPChallenge{
		PhoneNumber: phoneNumber,
		Purpose:     entity.OTPPurposeLogin,
		Role:        entity.RoleBusinessOwner,
	})
}

// issue stores a fresh challenge, superseding older live ones, then hands the
// plaintext code to the SMS gateway.
func (srv *authService) issue(ctx context.Context, challenge *entity.OTPChallenge) (*usecase.OTPDispatch, error) {
	challenge.PhoneNumber = strings.TrimSpace(challenge.PhoneNumber)
	if challenge.PhoneNumber == "" {
		return nil, domainerrors.ErrMissingRequiredFields.WithDetails("phone_number")
	}

	code, err := srv.codes.Generate(srv.otp.Length)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp")
	}

	challenge.CodeHash, err = srv.hasher.Hash(code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash otp")
	}

	now := srv.now()
	challenge.ExpiresAt = now.Add(srv.otp.TTL)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		otpRepo := repoFactory.NewOTPRepository()
		if err := otpRepo.ConsumeAllLive(ctx, challenge.PhoneNumber, now); err != nil {
			return err
		}

		return otpRepo.Create(ctx, challenge)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store otp challenge", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store otp challenge")
	}

	if err := srv.sms.SendOTP(ctx, challenge.PhoneNumber, code); err != nil {
		srv.log(ctx).Error("Failed to send otp", slog.Any("error", err))

		return nil, domainerrors.ErrAuthProvider.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("OTP issued",
		slog.String("purpose", string(challenge.Purpose)),
		slog.String("expires_in", util.FormatDuration(srv.otp.TTL)),
	)

	return &usecase.OTPDispatch{PhoneNumber: challenge.PhoneNumber, ExpiresIn: srv.otp.TTL}, nil
}

// VerifyOTP runs in one transaction with the challenge row locked, so two
// concurrent verifications of the same code cannot both succeed. A wrong code
// still commits the attempt counter.
func (srv *authService) VerifyOTP(ctx context.Context, phoneNumber, code string) (*entity.Session, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	code = strings.TrimSpace(code)
	if phoneNumber == "" || code == "" {
		return nil, domainerrors.ErrMissingRequiredFields.WithDetails("phone_number and otp are required")
	}

	var (
		session   *entity.Session
		rejection error
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		otpRepo := repoFactory.NewOTPRepository()
		now := srv.now()

		challenge, err := otpRepo.FindLatestLive(ctx, phoneNumber, now)
		if errors.Is(err, repository.ErrOTPChallengeNotFound) {
			rejection = domainerrors.ErrInvalidOTP.WithDetails("no active code for this phone number")

			return nil
		}
		if err != nil {
			return err
		}

		if !challenge.IsLive(now, srv.otp.MaxAttempts) {
			rejection = domainerrors.ErrInvalidOTP.WithDetails("too many attempts")

			return otpRepo.MarkConsumed(ctx, challenge.ID, now)
		}

		if !srv.hasher.Check(code, challenge.CodeHash) {
			rejection = domainerrors.ErrInvalidOTP

			return otpRepo.IncrementAttempts(ctx, challenge.ID)
		}

		if err := otpRepo.MarkConsumed(ctx, challenge.ID, now); err != nil {
			return err
		}

		user, err := srv.findOrCreateUser(ctx, repoFactory.NewUserRepository(), challenge)
		if err != nil {
			return err
		}

		session, err = srv.openSession(ctx, repoFactory.NewRefreshTokenRepository(), user)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to verify otp", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify otp")
	}
	if rejection != nil {
		srv.log(ctx).Info("OTP rejected", slog.Any("reason", rejection))

		return nil, rejection
	}

	srv.log(ctx).Info("OTP verified", slog.Any("userID", session.User.ID))

	return session, nil
}

func (srv *authService) findOrCreateUser(ctx context.Context, userRepo repository.UserRepository, challenge *entity.OTPChallenge) (*entity.User, error) {
	user, err := userRepo.FindByPhoneNumber(ctx, challenge.PhoneNumber)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	name := challenge.Name
	if name == "" {
		name = entity.DefaultUserName
	}

	user = &entity.User{
		Name:        name,
		PhoneNumber: challenge.PhoneNumber,
		Role:        entity.RoleOrDefault(challenge.Role),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User created on first verification", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))

	return user, nil
}

func (srv *authService) openSession(ctx context.Context, refreshRepo repository.RefreshTokenRepository, user *entity.User) (*entity.Session, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	err = refreshRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: util.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &entity.Session{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (srv *authService) ResolveSession(ctx context.Context, accessToken string) (*entity.User, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("missing token")
	}

	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("invalid token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("unknown user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// RefreshSession rotates the refresh token: the presented token is deleted and
// a new pair is issued. A token deleted by a concurrent refresh is rejected.
func (srv *authService) RefreshSession(ctx context.Context, refreshToken string) (*entity.Session, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("invalid refresh token")
	}

	tokenHash := util.HashToken(refreshToken)

	var session *entity.Session
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return domainerrors.ErrUnauthenticated.WithDetails("refresh token revoked or expired")
		}
		if err != nil {
			return err
		}
		if stored.UserID != claims.UserID {
			return domainerrors.ErrUnauthenticated.WithDetails("refresh token subject mismatch")
		}

		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrUnauthenticated.WithDetails("refresh token already used")
			}

			return err
		}

		user, err := repoFactory.NewUserRepository().FindByID(ctx, stored.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUnauthenticated.WithDetails("unknown user")
		}
		if err != nil {
			return err
		}

		session, err = srv.openSession(ctx, refreshRepo, user)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to refresh session")
	}

	return session, nil
}

// Logout is idempotent: an unknown or already revoked token is not an error.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return domainerrors.ErrMissingRequiredFields.WithDetails("refresh_token")
	}

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, util.HashToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.log(ctx).Info("Logged out")

	return nil
}
