package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device platforms accepted for push registration.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// UserDevice is a phone registered by a user to receive push alerts, such as
// new reviews on a business they own.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"` // Firebase Cloud Messaging registration token.
	DeviceID  string    `json:"device_id"` // Client-side identifier, unique per user.
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
