package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coastal/internal/domain/entity"
	domainerrors "coastal/internal/domain/errors"
	mockUC "coastal/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func adminSession() *entity.Session {
	return &entity.Session{
		Token:     "signed-token",
		Email:     "admin@example.com",
		Role:      entity.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/registrations", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	err := mw(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return rec, reached
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		Authenticate(mock.Anything, "signed-token").
		Return(adminSession(), nil)

	mw := NewAuthMiddleware(sessionUC)
	rec, reached := invoke(t, mw.Authenticate, "Bearer signed-token")

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(mockUC.NewMockSessionUsecase(t))
	rec, reached := invoke(t, mw.Authenticate, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	mw := NewAuthMiddleware(mockUC.NewMockSessionUsecase(t))
	rec, reached := invoke(t, mw.Authenticate, "Basic dXNlcjpwYXNz")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_ExpiredSession(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		Authenticate(mock.Anything, "stale-token").
		Return(nil, domainerrors.ErrSessionExpired)

	mw := NewAuthMiddleware(sessionUC)
	rec, reached := invoke(t, mw.Authenticate, "Bearer stale-token")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	mw := NewAuthMiddleware(mockUC.NewMockSessionUsecase(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/registrations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	session := adminSession()
	session.Role = entity.RoleSpecialAdmin
	c.Set("session", session)

	reached := false
	err := mw.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	// A special admin must not reach admin-only dashboard routes.
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_AdmitsListedRoles(t *testing.T) {
	mw := NewAuthMiddleware(mockUC.NewMockSessionUsecase(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/toggle/barracas/abc/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	session := adminSession()
	session.Role = entity.RoleSpecialAdmin
	c.Set("session", session)

	reached := false
	err := mw.RequireRole(entity.RoleAdmin, entity.RoleSpecialAdmin)(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}
