package usecase

import (
	"context"

	"coastal/internal/domain/entity"
)

// SessionUsecase defines the interface for admin sign-in use cases
type SessionUsecase interface {
	// Login checks credentials against the configured accounts and opens a
	// session.
	Login(ctx context.Context, email, password string) (*entity.Session, error)

	// Logout closes the session carrying the token.
	Logout(ctx context.Context, token string) error

	// Authenticate resolves a bearer token to a live session.
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
}
