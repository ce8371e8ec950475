package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus_NonPartneredIsUndetermined(t *testing.T) {
	now := time.Now()

	for _, isOpen := range []bool{true, false} {
		for _, weather := range []bool{true, false} {
			b := &Barraca{IsOpen: isOpen, Partnered: false}
			assert.Equal(t, StatusUndetermined, b.EffectiveStatus(weather, now),
				"isOpen=%v weather=%v", isOpen, weather)
		}
	}
}

func TestEffectiveStatus_ActiveOverrideBeatsEverything(t *testing.T) {
	now := time.Now()
	expires := now.Add(time.Hour)

	b := &Barraca{
		IsOpen:                      false,
		Partnered:                   true,
		SpecialAdminOverride:        true,
		SpecialAdminOverrideExpires: &expires,
	}

	assert.Equal(t, StatusOpen, b.EffectiveStatus(true, now))

	// Even non-partnered barracas report open under an active override.
	b.Partnered = false
	assert.Equal(t, StatusOpen, b.EffectiveStatus(true, now))
}

func TestEffectiveStatus_ExpiredOverrideIsIgnored(t *testing.T) {
	now := time.Now()
	expired := now.Add(-time.Minute)

	b := &Barraca{
		IsOpen:                      true,
		Partnered:                   true,
		SpecialAdminOverride:        true,
		SpecialAdminOverrideExpires: &expired,
	}

	assert.Equal(t, StatusOpen, b.EffectiveStatus(false, now))
	assert.Equal(t, StatusClosed, b.EffectiveStatus(true, now))
}

func TestEffectiveStatus_OverrideExpiryBoundaryIsExclusive(t *testing.T) {
	now := time.Now()

	b := &Barraca{
		Partnered:                   true,
		SpecialAdminOverride:        true,
		SpecialAdminOverrideExpires: &now,
	}

	// Expiry exactly at now means the override is no longer active.
	assert.Equal(t, StatusClosed, b.EffectiveStatus(false, now))
}

func TestEffectiveStatus_OverrideWithoutExpiryIsInactive(t *testing.T) {
	now := time.Now()

	b := &Barraca{
		IsOpen:               false,
		Partnered:            true,
		SpecialAdminOverride: true,
	}

	assert.Equal(t, StatusClosed, b.EffectiveStatus(false, now))
}

func TestEffectiveStatus_WeatherOverrideForcesClosed(t *testing.T) {
	now := time.Now()

	b := &Barraca{IsOpen: true, Partnered: true}

	assert.Equal(t, StatusClosed, b.EffectiveStatus(true, now))
	assert.Equal(t, StatusOpen, b.EffectiveStatus(false, now))
}

func TestEffectiveStatus_FallsBackToStoredFlag(t *testing.T) {
	now := time.Now()

	open := &Barraca{IsOpen: true, Partnered: true}
	closed := &Barraca{IsOpen: false, Partnered: true}

	assert.Equal(t, StatusOpen, open.EffectiveStatus(false, now))
	assert.Equal(t, StatusClosed, closed.EffectiveStatus(false, now))
}

func TestOpenStatus_Known(t *testing.T) {
	assert.True(t, StatusOpen.Known())
	assert.True(t, StatusClosed.Known())
	assert.False(t, StatusUndetermined.Known())
}
