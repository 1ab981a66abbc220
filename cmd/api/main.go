package main

import (
	"context"
	"log/slog"
	"os"

	"foodsafe/config"
	"foodsafe/internal/delivery"
	"foodsafe/internal/delivery/api"
	"foodsafe/internal/delivery/api/middleware"
	"foodsafe/internal/delivery/api/router/handler"
	"foodsafe/internal/domain/service"
	"foodsafe/internal/infra/auth"
	logs "foodsafe/internal/infra/log"
	"foodsafe/internal/infra/persistence/postgres"
	"foodsafe/internal/infra/pubsub"
	"foodsafe/internal/infra/qrcode"
	"foodsafe/internal/infra/sms"
	"foodsafe/internal/infra/storage"
	"foodsafe/internal/usecase/impl"
	"foodsafe/internal/validation"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			validation.New,
			storage.NewBlobStorage,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewBusinessRepository,
			postgres.NewDeviceRepository,
			postgres.NewInspectionRepository,
			postgres.NewHygieneRatingRepository,
			postgres.NewLabReportRepository,
			postgres.NewCertificationRepository,
			postgres.NewTeamMemberRepository,
			postgres.NewFacilityPhotoRepository,
			postgres.NewReviewRepository,
			postgres.NewManufacturingDetailsRepository,
			postgres.NewBatchProductionRepository,
			postgres.NewRawMaterialSupplierRepository,
			postgres.NewPackagingComplianceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewCodeGenerator,
			auth.NewJWTService,
			sms.NewPubSubSender,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewBusinessService,
			impl.NewOnboardingService,
			impl.NewDeviceService,
			impl.NewInspectionService,
			impl.NewHygieneRatingService,
			impl.NewLabReportService,
			impl.NewCertificationService,
			impl.NewTeamMemberService,
			impl.NewFacilityPhotoService,
			impl.NewReviewService,
			impl.NewManufacturingDetailsService,
			impl.NewBatchProductionService,
			impl.NewRawMaterialSupplierService,
			impl.NewPackagingComplianceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBusinessHandler,
			handler.NewOnboardingHandler,
			handler.NewDeviceHandler,
			handler.NewFileHandler,
			handler.NewRecordHandlers,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
