package usecase

import (
	"context"

	"foodsafe/internal/domain/service"
)

// ReviewAlertResult summarises one review alert fan-out.
type ReviewAlertResult struct {
	Devices       int
	Sent          int
	Failed        int
	InvalidTokens int
}

// ReviewAlertUsecase pushes new-review alerts to the business owner's devices.
type ReviewAlertUsecase interface {
	NotifyReviewCreated(ctx context.Context, payload *service.ReviewCreatedPayload) (*ReviewAlertResult, error)
}
