package handler

import (
	"net/http"

	"foodsafe/internal/delivery/api/middleware"
	"foodsafe/internal/delivery/api/response"
	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
}

// BusinessHandler serves the business registry.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{businessUC: params.BusinessUC}
}

// CreateBusiness handles POST /business.
func (h *BusinessHandler) CreateBusiness(c echo.Context) error {
	caller, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var business entity.Business
	if err := c.Bind(&business); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	created, err := h.businessUC.CreateBusiness(c.Request().Context(), caller, &business)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, created, "Business created successfully")
}

// GetBusiness handles GET /business/:id.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	business, err := h.businessUC.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, business, "")
}

// GetBusinessByLicense handles GET /business/license/:license_number.
func (h *BusinessHandler) GetBusinessByLicense(c echo.Context) error {
	business, err := h.businessUC.GetBusinessByLicense(c.Request().Context(), c.Param("license_number"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, business, "")
}

// UpdateBusiness handles PUT /business/:id.
func (h *BusinessHandler) UpdateBusiness(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var business entity.Business
	if err := c.Bind(&business); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	updated, err := h.businessUC.UpdateBusiness(c.Request().Context(), id, &business)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, "Business updated successfully")
}

// VerificationQR handles GET /business/:id/qrcode and streams a PNG.
func (h *BusinessHandler) VerificationQR(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.businessUC.VerificationQR(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
