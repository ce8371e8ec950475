package repository

import (
	"context"
	"time"
)

// SettingsRepository defines the interface for site-wide setting rows.
type SettingsRepository interface {
	// WeatherOverride reports whether the bad-weather flag is in effect. A
	// missing row reads as false, and a flag past its expiry reads as false.
	WeatherOverride(ctx context.Context) (bool, error)

	// SetWeatherOverride stores the bad-weather flag, creating the rows on
	// first write. A nil expiry keeps the flag set until toggled off.
	SetWeatherOverride(ctx context.Context, enabled bool, expiresAt *time.Time) error
}
