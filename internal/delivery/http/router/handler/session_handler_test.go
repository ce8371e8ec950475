package handler

import (
	"net/http"
	"testing"
	"time"

	"coastal/internal/domain/entity"
	domainerrors "coastal/internal/domain/errors"
	mockUC "coastal/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionHandler(t *testing.T) (*mockUC.MockSessionUsecase, *SessionHandler) {
	t.Helper()

	sessionUC := mockUC.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{
		SessionUC: sessionUC,
		Logger:    newDiscardLogger(),
	})

	return sessionUC, h
}

func TestSessionHandler_Login(t *testing.T) {
	sessionUC, h := newSessionHandler(t)
	e := newTestEcho()

	sessionUC.EXPECT().
		Login(mock.Anything, "admin@example.com", "secret").
		Return(&entity.Session{
			Token:     "signed-token",
			Email:     "admin@example.com",
			Role:      entity.RoleAdmin,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}, nil)

	c, rec := newJSONContext(t, e, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"secret"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// The login response carries the token even though the session entity hides it.
	assert.Contains(t, rec.Body.String(), "signed-token")
}

func TestSessionHandler_Login_BadCredentials(t *testing.T) {
	sessionUC, h := newSessionHandler(t)
	e := newTestEcho()

	sessionUC.EXPECT().
		Login(mock.Anything, "admin@example.com", "wrong").
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newJSONContext(t, e, http.MethodPost, "/auth/login", `{"email":"admin@example.com","password":"wrong"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionHandler_Login_MissingFields(t *testing.T) {
	_, h := newSessionHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(t, e, http.MethodPost, "/auth/login", `{"email":"not-an-email"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionHandler_Me(t *testing.T) {
	_, h := newSessionHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(t, e, http.MethodGet, "/auth/me", "")
	c.Set("session", &entity.Session{Email: "admin@example.com", Role: entity.RoleAdmin})

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@example.com")
}

func TestSessionHandler_Logout(t *testing.T) {
	sessionUC, h := newSessionHandler(t)
	e := newTestEcho()

	sessionUC.EXPECT().Logout(mock.Anything, "signed-token").Return(nil)

	c, rec := newJSONContext(t, e, http.MethodPost, "/auth/logout", "")
	c.Set("sessionToken", "signed-token")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
