// Package sms hands one-time passcodes to the SMS gateway.
package sms

import (
	"context"
	"log/slog"

	deliverycontext "foodsafe/internal/delivery/context"
	"foodsafe/internal/domain/constants"
	"foodsafe/internal/domain/service"

	"github.com/pkg/errors"
)

// pubsubSender publishes otp.requested events. The SMS gateway subscribes to
// the topic and performs the actual delivery.
type pubsubSender struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewPubSubSender is the constructor for pubsubSender.
func NewPubSubSender(publisher service.EventPublisher, logger *slog.Logger) service.SMSSender {
	return &pubsubSender{
		publisher: publisher,
		logger:    logger,
	}
}

// SendOTP publishes the code for delivery to phoneNumber.
func (s *pubsubSender) SendOTP(ctx context.Context, phoneNumber, code string) error {
	event, err := service.NewDomainEvent(
		constants.EventOTPRequested,
		deliverycontext.GetRequestIDFromContext(ctx),
		service.OTPRequestedPayload{PhoneNumber: phoneNumber, Code: code},
	)
	if err != nil {
		return err
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish otp request")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).DebugContext(ctx, "OTP handed to SMS gateway",
		slog.String("event_id", event.ID),
		slog.String("phone_suffix", maskPhone(phoneNumber)),
	)

	return nil
}

// maskPhone keeps only the last four digits for logs.
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}

	return "***" + phone[len(phone)-4:]
}
