package store

import (
	"testing"
	"time"

	"coastal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(token string, expiresAt time.Time) *entity.Session {
	return &entity.Session{
		Token:     token,
		Email:     "admin@coastal.test",
		Role:      entity.RoleAdmin,
		IssuedAt:  time.Now(),
		ExpiresAt: expiresAt,
	}
}

func TestStore_LoginAndSession(t *testing.T) {
	s := New()
	now := time.Now()

	s.Login(newSession("token-1", now.Add(time.Hour)))

	session, ok := s.Session("token-1", now)
	require.True(t, ok)
	assert.Equal(t, "admin@coastal.test", session.Email)

	_, ok = s.Session("unknown", now)
	assert.False(t, ok)
}

func TestStore_ExpiredSessionEvicted(t *testing.T) {
	s := New()
	now := time.Now()

	s.Login(newSession("token-1", now.Add(-time.Minute)))

	_, ok := s.Session("token-1", now)
	assert.False(t, ok)
	assert.Zero(t, s.SessionCount())
}

func TestStore_LogoutClearsCachedData(t *testing.T) {
	s := New()
	now := time.Now()

	s.Login(newSession("token-1", now.Add(time.Hour)))
	s.SetBarracas([]*entity.Barraca{{ID: "b1", Name: "Barraca do Zé"}})
	s.SetRegistrations([]*entity.BarracaRegistration{{Name: "Nova"}})
	s.SetSubscriptions([]*entity.EmailSubscription{{Email: "surf@example.com"}})
	s.SetLastError("boom")

	s.Logout("token-1")

	_, ok := s.Session("token-1", now)
	assert.False(t, ok)
	assert.Nil(t, s.Barracas())
	assert.Nil(t, s.Registrations())
	assert.Nil(t, s.Subscriptions())
	assert.Empty(t, s.LastError())
}

func TestStore_BarracaCacheMutations(t *testing.T) {
	s := New()

	s.SetBarracas([]*entity.Barraca{
		{ID: "b1", Name: "Primeira"},
		{ID: "b2", Name: "Segunda"},
	})

	s.AddBarraca(&entity.Barraca{ID: "b3", Name: "Terceira"})
	assert.Len(t, s.Barracas(), 3)

	s.UpdateBarraca(&entity.Barraca{ID: "b2", Name: "Segunda Renovada"})
	assert.Equal(t, "Segunda Renovada", s.Barracas()[1].Name)

	// Updating an id that is not cached is a no-op.
	s.UpdateBarraca(&entity.Barraca{ID: "missing", Name: "Fantasma"})
	assert.Len(t, s.Barracas(), 3)

	s.DeleteBarraca("b1")
	require.Len(t, s.Barracas(), 2)
	assert.Equal(t, entity.BarracaID("b2"), s.Barracas()[0].ID)
}

func TestStore_WeatherAndFlags(t *testing.T) {
	s := New()

	assert.False(t, s.WeatherOverride())
	s.SetWeatherOverride(true, nil)
	assert.True(t, s.WeatherOverride())

	assert.False(t, s.Loading())
	s.SetLoading(true)
	assert.True(t, s.Loading())

	s.SetLastError("refresh failed")
	assert.Equal(t, "refresh failed", s.LastError())
	s.SetLastError("")
	assert.Empty(t, s.LastError())
}
