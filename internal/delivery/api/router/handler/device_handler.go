package handler

import (
	"net/http"

	"foodsafe/internal/delivery/api/middleware"
	"foodsafe/internal/delivery/api/response"
	"foodsafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
}

// DeviceHandler lets a signed-in user manage the devices that receive push alerts.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{deviceUC: params.DeviceUC}
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice handles POST /devices.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req usecase.DeviceInfo
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), user.ID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, device, "Device registered")
}

// GetUserDevices handles GET /devices.
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, devices, "")
}

// UpdateFCMToken handles PUT /devices/:id/fcm-token.
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), user.ID, deviceID, req.FCMToken); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "FCM token updated successfully")
}

// DeactivateDevice handles DELETE /devices/:id.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), user.ID, deviceID); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Device deactivated successfully")
}
