// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"

	"foodsafe/internal/delivery/api/middleware"
	"foodsafe/internal/delivery/api/response"
	"foodsafe/internal/domain/entity"
	"foodsafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthHandler serves the phone passcode sign-in flow.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{authUC: params.AuthUC}
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	UserType    string `json:"user_type" validate:"required,oneof=consumer business_owner"`
}

// PhoneRequest is the body of the passcode requests that only need a phone number.
type PhoneRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// VerifyOTPRequest is the body of POST /auth/verify-otp.
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	OTP         string `json:"otp" validate:"required"`
}

// RefreshTokenRequest carries a refresh token in the body. A Refresh-Token
// header is accepted as well.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Signup sends a signup passcode.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.authUC.RequestSignupOTP(c.Request().Context(), usecase.SignupOTPInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Role:        entity.Role(req.UserType),
	})
	if err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "OTP sent to phone for verification.")
}

// Login sends a login passcode.
func (h *AuthHandler) Login(c echo.Context) error {
	var req PhoneRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.authUC.RequestLoginOTP(c.Request().Context(), req.PhoneNumber); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "OTP sent to phone for login.")
}

// SendBusinessOTP sends a passcode from the business sign-in screen.
func (h *AuthHandler) SendBusinessOTP(c echo.Context) error {
	var req PhoneRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.authUC.RequestBusinessOTP(c.Request().Context(), req.PhoneNumber); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "OTP sent to phone for verification.")
}

// VerifyOTP exchanges a passcode for a session.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.authUC.VerifyOTP(c.Request().Context(), req.PhoneNumber, req.OTP)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, session, "OTP verified")
}

// RefreshToken rotates a refresh token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	token, err := refreshTokenFrom(c)
	if err != nil {
		return err
	}

	session, err := h.authUC.RefreshSession(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, session, "Token refreshed")
}

// Logout revokes a refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	token, err := refreshTokenFrom(c)
	if err != nil {
		return err
	}

	if err := h.authUC.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Logged out")
}

// Me returns the caller's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user, "")
}
