package service

import (
	"time"

	"coastal/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the session tokens.
type Claims struct {
	Email string
	Role  entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed session token for an authenticated
	// account.
	GenerateToken(email string, role entity.Role) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// SessionDuration returns the configured session lifetime.
	SessionDuration() time.Duration
}
