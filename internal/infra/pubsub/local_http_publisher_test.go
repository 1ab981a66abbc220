package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodsafe/internal/domain/constants"
	"foodsafe/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	var requestIDHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	event, err := service.NewDomainEvent(constants.EventReviewCreated, "req-1", service.ReviewCreatedPayload{
		ReviewID:   "r-1",
		BusinessID: "b-1",
		Rating:     4,
	})
	require.NoError(t, err)

	publisher := NewLocalHTTPPublisher(srv.URL, newDiscardLogger())
	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, event.ID, received.Message.MessageID)
	assert.Equal(t, constants.EventReviewCreated, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	var payload service.ReviewCreatedPayload
	require.NoError(t, decoded.DecodePayload(&payload))
	assert.Equal(t, "b-1", payload.BusinessID)
	assert.Equal(t, 4, payload.Rating)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	event, err := service.NewDomainEvent(constants.EventOTPRequested, "", service.OTPRequestedPayload{PhoneNumber: "+15550100"})
	require.NoError(t, err)

	err = NewLocalHTTPPublisher(srv.URL, newDiscardLogger()).Publish(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
