package usecase

import (
	"context"
	"time"
)

// StatusUsecase defines the interface for the site-wide weather override
type StatusUsecase interface {
	// WeatherOverride reads the bad-weather flag, preferring the cache.
	WeatherOverride(ctx context.Context) (bool, error)

	// SetWeatherOverride persists the bad-weather flag and its optional
	// expiry, and refreshes the cache.
	SetWeatherOverride(ctx context.Context, enabled bool, expiresAt *time.Time) error
}
