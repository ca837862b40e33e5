package middleware

import (
	"strings"

	"chirp/internal/delivery/http/response"
	"chirp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContextKeyUser is the echo context key carrying the authenticated user.
const ContextKeyUser = "currentUser"

// AuthMiddleware provides middleware for access token authentication.
type AuthMiddleware struct {
	uc usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(uc usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{uc: uc}
}

// Authenticate validates the bearer token and loads the account it belongs
// to. Handlers downstream read the user from the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_AUTHORIZATION", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_AUTHORIZATION", "Invalid token format, must be Bearer token")
		}

		user, err := m.uc.CurrentUser(c.Request().Context(), tokenString)
		if err != nil {
			// Surface the domain error so the unified error handler can
			// distinguish expired from invalid or wrong-purpose tokens.
			return err
		}

		c.Set(ContextKeyUser, user)

		return next(c)
	}
}
