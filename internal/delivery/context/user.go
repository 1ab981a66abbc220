package context

import (
	"context"

	"foodsafe/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetUser stores the authenticated caller on both the echo and request contexts.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
	c.SetRequest(c.Request().WithContext(WithUser(c.Request().Context(), user)))
}

// GetUser returns the caller stored by the authentication middleware.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)
	if ok && user != nil {
		return user, true
	}

	return UserFromContext(c.Request().Context())
}

// WithUser returns a new context carrying the caller.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyUser, user)
}

// UserFromContext extracts the caller from a standard context.
func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(KeyUser).(*entity.User)

	return user, ok && user != nil
}
