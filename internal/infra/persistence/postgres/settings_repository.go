package postgres

import (
	"context"
	"strconv"
	"time"

	"coastal/internal/domain/repository"
	"coastal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	weatherOverrideKey        = "weather_override"
	weatherOverrideExpiresKey = "weather_override_expires"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// WeatherOverride reports whether the bad-weather flag is in effect. A missing
// row reads as false, and a flag past its expiry reads as false.
func (repo *settingsRepository) WeatherOverride(ctx context.Context) (bool, error) {
	value, found, err := repo.readSetting(ctx, weatherOverrideKey)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrap(err, "malformed weather override value")
	}
	if !enabled {
		return false, nil
	}

	expiresValue, found, err := repo.readSetting(ctx, weatherOverrideExpiresKey)
	if err != nil {
		return false, err
	}
	if !found || expiresValue == "" {
		return true, nil
	}

	expiresAt, err := time.Parse(time.RFC3339, expiresValue)
	if err != nil {
		return false, errors.Wrap(err, "malformed weather override expiry")
	}

	return time.Now().Before(expiresAt), nil
}

// SetWeatherOverride stores the bad-weather flag and its optional expiry,
// creating the rows on first write.
func (repo *settingsRepository) SetWeatherOverride(ctx context.Context, enabled bool, expiresAt *time.Time) error {
	expiresValue := ""
	if expiresAt != nil {
		expiresValue = expiresAt.UTC().Format(time.RFC3339)
	}

	settingMs := []model.SiteSettingModel{
		{Key: weatherOverrideKey, Value: strconv.FormatBool(enabled)},
		{Key: weatherOverrideExpiresKey, Value: expiresValue},
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&settingMs).Error; err != nil {
		return errors.Wrap(err, "failed to set weather override")
	}

	return nil
}

func (repo *settingsRepository) readSetting(ctx context.Context, key string) (string, bool, error) {
	var settingM model.SiteSettingModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "failed to read setting %s", key)
	}

	return settingM.Value, true, nil
}
