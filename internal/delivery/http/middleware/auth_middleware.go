package middleware

import (
	"strings"

	domainerrors "passport/internal/domain/errors"
	"passport/internal/delivery/http/response"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyUsername is the echo context key the resolved identity is stored under.
const ContextKeyUsername = "username"

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate validates the bearer token on the request and stores the
// resolved username on the context for handlers to use.
// Unlike login failures, token failures report their cause: the caller
// already holds a token, so there is no account enumeration risk in telling
// "expired" apart from "invalid".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		username, err := m.authUsecase.ResolveIdentity(c.Request().Context(), tokenString)
		if err != nil {
			if errors.Is(err, domainerrors.ErrTokenExpired) {
				return response.Unauthorized(c, domainerrors.ErrTokenExpired.ErrorCode(), "Token has expired")
			}

			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Invalid token")
		}

		// Set the identity on the context for handlers to use.
		c.Set(ContextKeyUsername, username)

		return next(c)
	}
}
