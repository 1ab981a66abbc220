package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"slices"
	"strings"

	"foodsafe/internal/delivery/api/middleware"
	"foodsafe/internal/delivery/api/response"
	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OnboardingHandlerParams holds dependencies for OnboardingHandler, injected by Fx.
type OnboardingHandlerParams struct {
	fx.In

	OnboardingUC usecase.OnboardingUsecase
}

// OnboardingHandler turns the onboarding forms into usecase calls.
type OnboardingHandler struct {
	onboardingUC usecase.OnboardingUsecase
}

// NewOnboardingHandler is the constructor for OnboardingHandler.
func NewOnboardingHandler(params OnboardingHandlerParams) *OnboardingHandler {
	return &OnboardingHandler{onboardingUC: params.OnboardingUC}
}

// OnboardResponse is returned by a successful onboarding.
type OnboardResponse struct {
	BusinessID     uuid.UUID `json:"businessId"`
	LogoURL        string    `json:"logo_url"`
	OwnerPhotoURL  string    `json:"owner_photo_url"`
	TeamMembers    int       `json:"team_members"`
	FacilityPhotos int       `json:"facility_photos"`
}

// ManufacturingOnboardRequest is the body of POST /business/manufacturing/onboard.
type ManufacturingOnboardRequest struct {
	BusinessID           uuid.UUID                    `json:"businessId"`
	ManufacturingDetails *entity.ManufacturingDetails `json:"manufacturing_details"`
}

// Onboard handles the multipart POST /business/onboard.
func (h *OnboardingHandler) Onboard(c echo.Context) error {
	owner, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("expected a multipart form")
	}

	input, err := onboardingInputFrom(form)
	if err != nil {
		return err
	}

	out, err := h.onboardingUC.Onboard(c.Request().Context(), owner, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, OnboardResponse{
		BusinessID:     out.BusinessID,
		LogoURL:        out.LogoURL,
		OwnerPhotoURL:  out.OwnerPhotoURL,
		TeamMembers:    out.TeamMembers,
		FacilityPhotos: out.FacilityPhotos,
	}, "Business onboarded successfully")
}

// OnboardManufacturing handles POST /business/manufacturing/onboard.
func (h *OnboardingHandler) OnboardManufacturing(c echo.Context) error {
	var req ManufacturingOnboardRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	details, err := h.onboardingUC.OnboardManufacturing(c.Request().Context(), &usecase.ManufacturingOnboardingInput{
		BusinessID: req.BusinessID,
		Details:    req.ManufacturingDetails,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, details, "Manufacturing details onboarded successfully")
}

func onboardingInputFrom(form *multipart.Form) (*usecase.OnboardingInput, error) {
	value := func(key string) string {
		if v := form.Value[key]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}

		return ""
	}
	optional := func(key string) *string {
		if v := value(key); v != "" {
			return &v
		}

		return nil
	}

	input := &usecase.OnboardingInput{
		BusinessName:   value("business_name"),
		Address:        value("address"),
		Phone:          value("phone"),
		Email:          value("email"),
		LicenseNumber:  value("license_number"),
		BusinessType:   value("business_type"),
		OwnerName:      value("owner_name"),
		TradeLicense:   value("trade_license"),
		GSTNumber:      value("gst_number"),
		FireSafetyCert: value("fire_safety_cert"),
		LiquorLicense:  optional("liquor_license"),
		MusicLicense:   optional("music_license"),

		Logo:             firstFile(form, "business_logo"),
		OwnerPhoto:       firstFile(form, "owner_photo"),
		TeamMemberPhotos: files(form, "team_member_photos"),
		FacilityPhotos:   files(form, "facility_photos"),
	}

	var err error
	if input.TeamMemberNames, err = parseList("team_member_names", value("team_member_names")); err != nil {
		return nil, err
	}
	if input.TeamMemberRoles, err = parseList("team_member_roles", value("team_member_roles")); err != nil {
		return nil, err
	}
	if input.FacilityAreaNames, err = parseList("facility_photo_area_names", value("facility_photo_area_names")); err != nil {
		return nil, err
	}

	return input, nil
}

// files accepts both "name" and "name[]" part names.
func files(form *multipart.Form, key string) []*usecase.FileUpload {
	headers := slices.Concat(form.File[key], form.File[key+"[]"])
	uploads := make([]*usecase.FileUpload, 0, len(headers))
	for _, fh := range headers {
		uploads = append(uploads, fileUpload(fh))
	}

	return uploads
}

func firstFile(form *multipart.Form, key string) *usecase.FileUpload {
	if headers := form.File[key]; len(headers) > 0 {
		return fileUpload(headers[0])
	}

	return nil
}

func fileUpload(fh *multipart.FileHeader) *usecase.FileUpload {
	return &usecase.FileUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}

			return f, nil
		},
	}
}
