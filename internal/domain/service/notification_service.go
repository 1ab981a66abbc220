package service

import (
	"context"
)

// MaxPushBatchSize is the largest token list a single multicast accepts.
const MaxPushBatchSize = 500

// PushMessage is the content of a push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushBatchResult summarises a multicast send.
type PushBatchResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the provider reported as unregistered or malformed.
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatch sends msg to at most MaxPushBatchSize device tokens.
	SendBatch(ctx context.Context, tokens []string, msg PushMessage) (*PushBatchResult, error)
}
