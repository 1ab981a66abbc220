package middleware

import (
	"strings"

	deliverycontext "foodsafe/internal/delivery/context"
	"foodsafe/internal/domain/entity"
	domainerrors "foodsafe/internal/domain/errors"
	"foodsafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	bearerPrefix    = "Bearer "
	tokenQueryParam = "token"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthMiddleware resolves the session token of each request into a user.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC}
}

// Authenticate accepts the access token as a Bearer header or as the token
// query parameter and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := accessToken(c)
		if token == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("missing access token")
		}

		user, err := m.authUC.ResolveSession(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// CurrentUser returns the caller set by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	return user, nil
}

func accessToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, found := strings.CutPrefix(header, bearerPrefix); found {
		return strings.TrimSpace(token)
	}

	return strings.TrimSpace(c.QueryParam(tokenQueryParam))
}
