// Package notification delivers push notifications to user devices.
package notification

import (
	"context"
	"log/slog"

	"foodsafe/config"
	"foodsafe/internal/domain/service"

	"go.uber.org/fx"
)

// logOnlyService stands in for Firebase when it is not configured.
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushBatchResult, error) {
	s.logger.InfoContext(ctx, "Push delivery disabled, skipping",
		slog.Int("token_count", len(tokens)),
		slog.String("title", msg.Title),
	)

	return &service.PushBatchResult{}, nil
}

// Params holds dependencies for NotificationService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService returns the Firebase sender when configured, otherwise a logging stub.
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "") {
		params.Logger.Info("Firebase not configured, push notifications are logged only")

		return &logOnlyService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}
