package impl

import (
	"context"
	"testing"
	"time"

	"coastal/config"
	"coastal/internal/domain/entity"
	domainerrors "coastal/internal/domain/errors"
	"coastal/internal/domain/service"
	mockSvc "coastal/internal/mocks/service"
	"coastal/internal/store"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixture struct {
	hasher *mockSvc.MockPasswordHasher
	tokens *mockSvc.MockTokenService
	store  *store.Store
	svc    *sessionService
}

func newSessionService(t *testing.T, accounts []config.AdminAccount) sessionServiceFixture {
	t.Helper()

	f := sessionServiceFixture{
		hasher: mockSvc.NewMockPasswordHasher(t),
		tokens: mockSvc.NewMockTokenService(t),
		store:  store.New(),
	}
	cfg := &config.Config{Auth: &config.AuthConfig{Accounts: accounts}}
	f.svc = NewSessionService(SessionServiceParams{
		Config: cfg,
		Hasher: f.hasher,
		Tokens: f.tokens,
		Store:  f.store,
		Logger: newDiscardLogger(),
	}).(*sessionService)

	return f
}

func adminAccounts() []config.AdminAccount {
	return []config.AdminAccount{
		{Email: "admin@example.com", PasswordHash: "$2a$10$hash", Role: "admin"},
		{Email: "special@example.com", PasswordHash: "$2a$10$other", Role: "special_admin"},
	}
}

func TestSessionService_Login(t *testing.T) {
	f := newSessionService(t, adminAccounts())
	ctx := context.Background()

	expiresAt := time.Now().Add(24 * time.Hour)
	f.hasher.EXPECT().Check("secret", "$2a$10$hash").Return(true)
	f.tokens.EXPECT().
		GenerateToken("admin@example.com", entity.RoleAdmin).
		Return("signed-token", expiresAt, nil)

	session, err := f.svc.Login(ctx, "admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, entity.RoleAdmin, session.Role)
	assert.Equal(t, 1, f.store.SessionCount())
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	f := newSessionService(t, adminAccounts())

	_, err := f.svc.Login(context.Background(), "nobody@example.com", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	f := newSessionService(t, adminAccounts())

	f.hasher.EXPECT().Check("wrong", "$2a$10$hash").Return(false)

	_, err := f.svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_UnknownConfiguredRole(t *testing.T) {
	f := newSessionService(t, []config.AdminAccount{
		{Email: "weird@example.com", PasswordHash: "$2a$10$hash", Role: "superuser"},
	})

	f.hasher.EXPECT().Check("secret", "$2a$10$hash").Return(true)

	_, err := f.svc.Login(context.Background(), "weird@example.com", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestSessionService_Authenticate(t *testing.T) {
	f := newSessionService(t, adminAccounts())
	ctx := context.Background()

	session := &entity.Session{
		Token:     "signed-token",
		Email:     "admin@example.com",
		Role:      entity.RoleAdmin,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	f.store.Login(session)
	f.tokens.EXPECT().
		ValidateToken("signed-token").
		Return(&service.Claims{Email: "admin@example.com", Role: entity.RoleAdmin}, nil)

	got, err := f.svc.Authenticate(ctx, "signed-token")
	require.NoError(t, err)
	assert.Equal(t, session.Email, got.Email)
}

func TestSessionService_Authenticate_InvalidToken(t *testing.T) {
	f := newSessionService(t, adminAccounts())

	f.tokens.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("signature invalid"))

	_, err := f.svc.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestSessionService_Authenticate_ExpiredSession(t *testing.T) {
	f := newSessionService(t, adminAccounts())

	f.store.Login(&entity.Session{
		Token:     "stale-token",
		Email:     "admin@example.com",
		Role:      entity.RoleAdmin,
		IssuedAt:  time.Now().Add(-25 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	})
	f.tokens.EXPECT().
		ValidateToken("stale-token").
		Return(&service.Claims{Email: "admin@example.com", Role: entity.RoleAdmin}, nil)

	_, err := f.svc.Authenticate(context.Background(), "stale-token")
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestSessionService_Authenticate_ClaimsMismatch(t *testing.T) {
	f := newSessionService(t, adminAccounts())

	f.store.Login(&entity.Session{
		Token:     "signed-token",
		Email:     "admin@example.com",
		Role:      entity.RoleAdmin,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	})
	f.tokens.EXPECT().
		ValidateToken("signed-token").
		Return(&service.Claims{Email: "other@example.com", Role: entity.RoleAdmin}, nil)

	_, err := f.svc.Authenticate(context.Background(), "signed-token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestSessionService_Logout(t *testing.T) {
	f := newSessionService(t, adminAccounts())

	f.store.Login(&entity.Session{
		Token:     "signed-token",
		Email:     "admin@example.com",
		Role:      entity.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.Equal(t, 1, f.store.SessionCount())

	require.NoError(t, f.svc.Logout(context.Background(), "signed-token"))
	assert.Equal(t, 0, f.store.SessionCount())
}
