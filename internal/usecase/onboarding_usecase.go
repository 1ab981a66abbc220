package usecase

import (
	"context"
	"io"

	"foodsafe/internal/domain/entity"

	"github.com/google/uuid"
)

// FileUpload is a file received from the client, opened lazily.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// OnboardingInput is everything the onboarding form submits.
type OnboardingInput struct {
	BusinessName   string
	Address        string
	Phone          string
	Email          string
	LicenseNumber  string
	BusinessType   string
	OwnerName      string
	TradeLicense   string
	GSTNumber      string
	FireSafetyCert string
	LiquorLicense  *string
	MusicLicense   *string

	Logo       *FileUpload
	OwnerPhoto *FileUpload

	// Parallel lists, matched by position.
	TeamMemberNames  []string
	TeamMemberRoles  []string
	TeamMemberPhotos []*FileUpload

	FacilityAreaNames []string
	FacilityPhotos    []*FileUpload
}

// OnboardingOutput reports what was created.
type OnboardingOutput struct {
	BusinessID     uuid.UUID
	LogoURL        string
	OwnerPhotoURL  string
	TeamMembers    int
	FacilityPhotos int
}

// ManufacturingOnboardingInput attaches manufacturing details to an existing business.
type ManufacturingOnboardingInput struct {
	BusinessID uuid.UUID
	Details    *entity.ManufacturingDetails
}

// OnboardingUsecase creates a business together with its team and facility photos.
type OnboardingUsecase interface {
	// Onboard either creates everything or leaves no rows and no uploaded files behind.
	Onboard(ctx context.Context, owner *entity.User, input *OnboardingInput) (*OnboardingOutput, error)

	OnboardManufacturing(ctx context.Context, input *ManufacturingOnboardingInput) (*entity.ManufacturingDetails, error)
}
