package auth

import (
	"testing"
	"time"

	"coastal/config"
	"coastal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SessionDuration: 24 * time.Hour,
		},
	}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_session_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	token, expiresAt, err := jwtService.GenerateToken("admin@coastal.test", entity.RoleSpecialAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "admin@coastal.test", claims.Email)
	assert.Equal(t, entity.RoleSpecialAdmin, claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_session_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("issuer_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	verifier, err := NewJWTService(testConfig("different_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, _, err := issuer.GenerateToken("admin@coastal.test", entity.RoleAdmin)
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "session secret must be provided")
}

func TestJWTService_SessionDuration(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_session_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	assert.Equal(t, 24*time.Hour, jwtService.SessionDuration())
}
