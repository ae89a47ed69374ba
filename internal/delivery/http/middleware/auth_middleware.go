package middleware

import (
	"strings"

	deliverycontext "agenda/internal/delivery/context"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates the session token carried on each request and
// resolves the user it belongs to.
type AuthMiddleware struct {
	identity service.IdentityService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityService) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate verifies the Bearer ID token and stores the resolved user on
// the request context. Failures flow to the error handler as AppErrors so
// every rejection renders the same envelope.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrNotAuthenticated
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrNotAuthenticated.WithDetails("expected a Bearer token")
		}

		user, err := m.identity.VerifyIDToken(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		// Expose the user to handlers and to the service layer.
		c.Set(string(deliverycontext.KeyUser), user)
		ctx := deliverycontext.WithUser(c.Request().Context(), user)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
