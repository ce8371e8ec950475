package impl

import (
	"context"
	"log/slog"
	"time"

	"coastal/internal/domain/repository"
	"coastal/internal/store"
	"coastal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type statusService struct {
	settingsRepo repository.SettingsRepository
	store        *store.Store
	logger       *slog.Logger
}

// StatusServiceParams holds dependencies for StatusService, injected by Fx.
type StatusServiceParams struct {
	fx.In

	SettingsRepo repository.SettingsRepository
	Store        *store.Store
	Logger       *slog.Logger
}

// NewStatusService creates a new status service instance
func NewStatusService(params StatusServiceParams) usecase.StatusUsecase {
	return &statusService{
		settingsRepo: params.SettingsRepo,
		store:        params.Store,
		logger:       params.Logger,
	}
}

// WeatherOverride reads the bad-weather flag and refreshes the cache. When
// the settings row is unreachable the cached value keeps the directory
// serving.
func (s *statusService) WeatherOverride(ctx context.Context) (bool, error) {
	enabled, err := s.settingsRepo.WeatherOverride(ctx)
	if err != nil {
		s.logger.Warn("failed to read weather override, serving cached value",
			slog.String("error", err.Error()),
		)

		return s.store.WeatherOverride(), nil
	}

	s.store.SetWeatherOverride(enabled, s.store.WeatherOverrideExpires())

	return enabled, nil
}

// SetWeatherOverride persists the bad-weather flag and its optional expiry,
// then refreshes the cache.
func (s *statusService) SetWeatherOverride(ctx context.Context, enabled bool, expiresAt *time.Time) error {
	if err := s.settingsRepo.SetWeatherOverride(ctx, enabled, expiresAt); err != nil {
		return errors.Wrap(err, "failed to persist weather override")
	}

	s.store.SetWeatherOverride(enabled, expiresAt)
	s.logger.Info("weather override changed", slog.Bool("enabled", enabled))

	return nil
}
