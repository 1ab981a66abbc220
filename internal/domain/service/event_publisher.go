package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DomainEvent is the envelope published for asynchronous consumers.
type DomainEvent struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// NewDomainEvent wraps payload into an event envelope.
func NewDomainEvent(eventType, requestID string, payload any) (*DomainEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s payload", eventType)
	}

	return &DomainEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Payload:    data,
	}, nil
}

// DecodePayload unmarshals the event payload into dst.
func (e *DomainEvent) DecodePayload(dst any) error {
	return errors.Wrapf(json.Unmarshal(e.Payload, dst), "decode %s payload", e.Type)
}

// OTPRequestedPayload asks the SMS gateway to deliver a passcode.
type OTPRequestedPayload struct {
	PhoneNumber string `json:"phone_number"`
	Code        string `json:"code"`
}

// BusinessOnboardedPayload announces a completed onboarding.
type BusinessOnboardedPayload struct {
	BusinessID    string `json:"business_id"`
	LicenseNumber string `json:"license_number"`
	OwnerID       string `json:"owner_id"`
	TeamMembers   int    `json:"team_members"`
	FacilityPhoto int    `json:"facility_photos"`
}

// ReviewCreatedPayload is consumed by the notifier to alert the business owner.
type ReviewCreatedPayload struct {
	ReviewID   string `json:"review_id"`
	BusinessID string `json:"business_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event for async processing
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
