package impl

import (
	"context"
	"log/slog"
	"time"

	"coastal/config"
	"coastal/internal/domain/entity"
	domainerrors "coastal/internal/domain/errors"
	"coastal/internal/domain/service"
	"coastal/internal/store"
	"coastal/internal/usecase"

	"go.uber.org/fx"
)

type sessionService struct {
	accounts []config.AdminAccount
	hasher   service.PasswordHasher
	tokens   service.TokenService
	store    *store.Store
	logger   *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Config *config.Config
	Hasher service.PasswordHasher
	Tokens service.TokenService
	Store  *store.Store
	Logger *slog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	var accounts []config.AdminAccount
	if params.Config.Auth != nil {
		accounts = params.Config.Auth.Accounts
	}

	return &sessionService{
		accounts: accounts,
		hasher:   params.Hasher,
		tokens:   params.Tokens,
		store:    params.Store,
		logger:   params.Logger,
	}
}

// Login checks credentials against the configured accounts and opens a
// session. The error is identical for unknown email and wrong password.
func (s *sessionService) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	account, ok := s.findAccount(email)
	if !ok || !s.hasher.Check(password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	role := entity.Role(account.Role)
	if !role.IsValid() {
		s.logger.Error("configured account carries unknown role",
			slog.String("email", account.Email),
			slog.String("role", account.Role),
		)

		return nil, domainerrors.ErrInternalError
	}

	token, expiresAt, err := s.tokens.GenerateToken(account.Email, role)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	session := &entity.Session{
		Token:     token,
		Email:     account.Email,
		Role:      role,
		IssuedAt:  time.Now(),
		ExpiresAt: expiresAt,
	}
	s.store.Login(session)

	s.logger.Info("admin signed in",
		slog.String("email", account.Email),
		slog.String("role", role.String()),
	)

	return session, nil
}

// Logout closes the session carrying the token.
func (s *sessionService) Logout(_ context.Context, token string) error {
	s.store.Logout(token)

	return nil
}

// Authenticate resolves a bearer token to a live session: the signature must
// verify and the session must still be registered and unexpired.
func (s *sessionService) Authenticate(_ context.Context, token string) (*entity.Session, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	session, ok := s.store.Session(token, time.Now())
	if !ok {
		return nil, domainerrors.ErrSessionExpired
	}
	if session.Email != claims.Email || session.Role != claims.Role {
		return nil, domainerrors.ErrUnauthorized
	}

	return session, nil
}

func (s *sessionService) findAccount(email string) (config.AdminAccount, bool) {
	for _, account := range s.accounts {
		if account.Email == email {
			return account, true
		}
	}

	return config.AdminAccount{}, false
}
