package middleware

import (
	"slices"
	"strings"

	"coastal/internal/delivery/http/response"
	"coastal/internal/domain/entity"
	"coastal/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	keySession      = "session"
	keySessionToken = "sessionToken"
)

// AuthMiddleware resolves bearer tokens to live admin sessions and gates
// routes by role.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC}
}

// Authenticate validates the bearer token and loads the session onto the
// request context. Expired sessions are rejected here, before any role check.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		session, err := m.sessionUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(keySession, session)
		c.Set(keySessionToken, token)

		return next(c)
	}
}

// RequireRole is a middleware factory that admits only the listed roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := GetSession(c)
			if !ok {
				return response.Forbidden(c, "SESSION_MISSING", "Permission denied: session information missing")
			}

			if !slices.Contains(roles, session.Role) {
				return response.Forbidden(c, "ROLE_DENIED", "Permission denied: insufficient role")
			}

			return next(c)
		}
	}
}

// GetSession extracts the authenticated session from echo.Context.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(keySession).(*entity.Session)

	return session, ok
}

// GetSessionToken extracts the raw bearer token from echo.Context.
func GetSessionToken(c echo.Context) (string, bool) {
	token, ok := c.Get(keySessionToken).(string)

	return token, ok
}
