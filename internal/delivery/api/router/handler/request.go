package handler

import (
	"strings"

	domainerrors "foodsafe/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// uuidParam parses a path parameter holding a UUID.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

var refreshTokenHeaders = []string{"Refresh-Token", "refresh_token"}

func refreshTokenFrom(c echo.Context) (string, error) {
	var req RefreshTokenRequest
	// Logout and refresh may be sent with an empty body.
	_ = (&echo.DefaultBinder{}).BindBody(c, &req)
	token := strings.TrimSpace(req.RefreshToken)
	for _, header := range refreshTokenHeaders {
		if token != "" {
			break
		}
		token = strings.TrimSpace(c.Request().Header.Get(header))
	}
	if token == "" {
		return "", domainerrors.ErrMissingRequiredFields.WithDetails("refresh_token")
	}

	return token, nil
}
