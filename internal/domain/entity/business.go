package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a registered food business. LicenseNumber is the natural key
// used for public lookups and is unique across the registry.
type Business struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name" validate:"required"`
	Address        string    `json:"address" validate:"required"`
	Phone          string    `json:"phone" validate:"required"`
	Email          string    `json:"email" validate:"required"`
	LicenseNumber  string    `json:"license_number" validate:"required"`
	BusinessType   string    `json:"business_type" validate:"required"`
	OwnerID        uuid.UUID `json:"owner_id"`
	OwnerName      string    `json:"owner_name" validate:"required"`
	OwnerPhotoURL  string    `json:"owner_photo_url"`
	LogoURL        string    `json:"logo_url"`
	TradeLicense   string    `json:"trade_license" validate:"required"`
	GSTNumber      string    `json:"gst_number" validate:"required"`
	FireSafetyCert string    `json:"fire_safety_cert" validate:"required"`
	LiquorLicense  *string   `json:"liquor_license"`
	MusicLicense   *string   `json:"music_license"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
