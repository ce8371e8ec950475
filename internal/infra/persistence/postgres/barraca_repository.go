// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"coastal/internal/domain/entity"
	"coastal/internal/domain/repository"
	"coastal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// barracaRepository implements the repository.BarracaRepository interface.
type barracaRepository struct {
	db *gorm.DB
}

// NewBarracaRepository is the constructor for barracaRepository.
func NewBarracaRepository(db *gorm.DB) repository.BarracaRepository {
	return &barracaRepository{
		db: db,
	}
}

// ListWithOpenStatus runs the combined listing procedure. Filtering,
// pagination and open-status computation all happen server-side; each
// returned row carries the total match count.
func (repo *barracaRepository) ListWithOpenStatus(ctx context.Context, q repository.BarracaQuery) ([]*entity.Barraca, int64, error) {
	var rows []*model.BarracaStatusRow

	status := q.Status
	if status == "" {
		status = repository.StatusFilterAll
	}

	if err := repo.db.WithContext(ctx).
		Raw(`SELECT * FROM get_barracas_with_open_status(?, ?, ?, ?, ?, ?)`,
			q.Page, q.PageSize, q.Query, q.Locations, string(status), q.Rating).
		Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list barracas with open status")
	}

	var total int64
	barracas := make([]*entity.Barraca, 0, len(rows))
	for _, row := range rows {
		total = row.TotalCount

		barraca, err := toBarracaDomain(&row.BarracaModel)
		if err != nil {
			return nil, 0, err
		}
		// The live computed flag wins over the stored column.
		barraca.IsOpen = row.ComputedIsOpen
		barracas = append(barracas, barraca)
	}

	return barracas, total, nil
}

// ListRows fetches plain table rows matching the query. The status filter is
// intentionally not applied here; callers resolve status per row.
func (repo *barracaRepository) ListRows(ctx context.Context, q repository.BarracaQuery) ([]*entity.Barraca, int64, error) {
	base := repo.applyFilters(repo.db.WithContext(ctx).Model(&model.BarracaModel{}), q)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count barracas")
	}

	var barracaModels []*model.BarracaModel
	query := base.Order("name ASC")
	if q.PageSize > 0 {
		query = query.Offset((q.Page - 1) * q.PageSize).Limit(q.PageSize)
	}
	if err := query.Find(&barracaModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list barracas")
	}

	barracas := make([]*entity.Barraca, 0, len(barracaModels))
	for _, barracaM := range barracaModels {
		barraca, err := toBarracaDomain(barracaM)
		if err != nil {
			return nil, 0, err
		}
		barracas = append(barracas, barraca)
	}

	return barracas, total, nil
}

// ListContacts fetches id, name and contact info for every barraca.
func (repo *barracaRepository) ListContacts(ctx context.Context) ([]*entity.Barraca, error) {
	var barracaModels []*model.BarracaModel

	if err := repo.db.WithContext(ctx).
		Select("id", "name", "barraca_number", "location", "contact").
		Order("name ASC").
		Find(&barracaModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list barraca contacts")
	}

	barracas := make([]*entity.Barraca, 0, len(barracaModels))
	for _, barracaM := range barracaModels {
		barraca, err := toBarracaDomain(barracaM)
		if err != nil {
			return nil, err
		}
		barracas = append(barracas, barraca)
	}

	return barracas, nil
}

// FindByID retrieves a barraca by its id, without open-status resolution.
func (repo *barracaRepository) FindByID(ctx context.Context, id entity.BarracaID) (*entity.Barraca, error) {
	var barracaM model.BarracaModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id.String()).
		First(&barracaM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBarracaNotFound
		}

		return nil, errors.Wrap(err, "failed to find barraca by ID")
	}

	return toBarracaDomain(&barracaM)
}

// Create persists a new barraca and hydrates server-assigned timestamps.
func (repo *barracaRepository) Create(ctx context.Context, barraca *entity.Barraca) error {
	barracaM, err := fromBarracaDomain(barraca)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(barracaM).Error; err != nil {
		return errors.Wrap(err, "failed to create barraca")
	}

	barraca.CreatedAt = barracaM.CreatedAt
	barraca.UpdatedAt = barracaM.UpdatedAt

	return nil
}

// Update persists the non-nil fields of the partial update and returns the
// refreshed row.
func (repo *barracaRepository) Update(ctx context.Context, id entity.BarracaID, update *entity.BarracaUpdate) (*entity.Barraca, error) {
	values, err := updateValues(update)
	if err != nil {
		return nil, err
	}

	if len(values) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.BarracaModel{}).
			Where("id = ?", id.String()).
			Updates(values)
		if result.Error != nil {
			return nil, errors.Wrap(result.Error, "failed to update barraca")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrBarracaNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// UpdateContact replaces only the contact payload of a barraca.
func (repo *barracaRepository) UpdateContact(ctx context.Context, id entity.BarracaID, contact entity.Contact) error {
	contactJSON, err := marshalColumn(contact)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BarracaModel{}).
		Where("id = ?", id.String()).
		Update("contact", contactJSON)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update barraca contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBarracaNotFound
	}

	return nil
}

// Delete removes the row.
func (repo *barracaRepository) Delete(ctx context.Context, id entity.BarracaID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id.String()).
		Delete(&model.BarracaModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete barraca")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBarracaNotFound
	}

	return nil
}

// IsOpenNow invokes the schedule procedure for a single canonical id.
func (repo *barracaRepository) IsOpenNow(ctx context.Context, id uuid.UUID) (bool, error) {
	var open bool

	if err := repo.db.WithContext(ctx).
		Raw(`SELECT is_barraca_open_now(?)`, id).
		Scan(&open).Error; err != nil {
		return false, errors.Wrap(err, "failed to check open status")
	}

	return open, nil
}

// SetWeekendHours invokes the weekend-hours procedure with the six open/close
// time values.
func (repo *barracaRepository) SetWeekendHours(ctx context.Context, id uuid.UUID, hours entity.WeekendHours) error {
	if err := repo.db.WithContext(ctx).
		Exec(`SELECT set_weekend_hours(?, ?, ?, ?, ?, ?, ?)`,
			id,
			hours.Friday.Open, hours.Friday.Close,
			hours.Saturday.Open, hours.Saturday.Close,
			hours.Sunday.Open, hours.Sunday.Close).Error; err != nil {
		return errors.Wrap(err, "failed to set weekend hours")
	}

	return nil
}

// DisableWeekendHours clears the structured weekend schedule.
func (repo *barracaRepository) DisableWeekendHours(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Exec(`SELECT disable_weekend_hours(?)`, id).Error; err != nil {
		return errors.Wrap(err, "failed to disable weekend hours")
	}

	return nil
}

// SpecialAdminOpen forces the barraca open for the given duration.
func (repo *barracaRepository) SpecialAdminOpen(ctx context.Context, id uuid.UUID, duration time.Duration) error {
	if err := repo.db.WithContext(ctx).
		Exec(`SELECT special_admin_open_barraca(?, ?)`, id, duration.Hours()).Error; err != nil {
		return errors.Wrap(err, "failed to force-open barraca")
	}

	return nil
}

// SpecialAdminClose clears an active forced-open override.
func (repo *barracaRepository) SpecialAdminClose(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Exec(`SELECT special_admin_close_barraca(?)`, id).Error; err != nil {
		return errors.Wrap(err, "failed to clear barraca override")
	}

	return nil
}

// SetManualStatus sets the manual status of a non-partnered barraca.
func (repo *barracaRepository) SetManualStatus(ctx context.Context, id uuid.UUID, status entity.ManualStatus) error {
	if err := repo.db.WithContext(ctx).
		Exec(`SELECT set_manual_barraca_status(?, ?)`, id, string(status)).Error; err != nil {
		return errors.Wrap(err, "failed to set manual status")
	}

	return nil
}

// ListSpecialOverrides returns the currently active forced-open overrides
// with their remaining time.
func (repo *barracaRepository) ListSpecialOverrides(ctx context.Context) ([]*entity.OverrideInfo, error) {
	var rows []*model.OverrideRow

	query := `
		SELECT id,
		       name,
		       special_admin_override_expires AS override_expires,
		       EXTRACT(EPOCH FROM (special_admin_override_expires - NOW())) / 3600 AS hours_remaining
		FROM barracas
		WHERE special_admin_override = true
		  AND special_admin_override_expires > NOW()
		ORDER BY special_admin_override_expires ASC
	`

	if err := repo.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list special overrides")
	}

	overrides := make([]*entity.OverrideInfo, 0, len(rows))
	for _, row := range rows {
		overrides = append(overrides, &entity.OverrideInfo{
			BarracaID:       entity.BarracaID(row.ID),
			BarracaName:     row.Name,
			OverrideExpires: row.OverrideExpires,
			HoursRemaining:  row.HoursRemaining,
		})
	}

	return overrides, nil
}

// ListManualStatus returns every barraca whose status an admin has pinned,
// most recently updated first.
func (repo *barracaRepository) ListManualStatus(ctx context.Context) ([]*entity.ManualStatusEntry, error) {
	var rows []*model.ManualStatusRow

	query := `
		SELECT id,
		       name,
		       location,
		       partnered,
		       manual_status,
		       updated_at
		FROM barracas
		WHERE manual_status <> 'undefined'
		ORDER BY updated_at DESC
	`

	if err := repo.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list manual statuses")
	}

	entries := make([]*entity.ManualStatusEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entity.ManualStatusEntry{
			BarracaID:    entity.BarracaID(row.ID),
			BarracaName:  row.Name,
			Location:     row.Location,
			Partnered:    row.Partnered,
			ManualStatus: entity.ManualStatus(row.ManualStatus),
			LastUpdated:  row.UpdatedAt,
		})
	}

	return entries, nil
}

// applyFilters adds the shared text, location and rating predicates.
func (repo *barracaRepository) applyFilters(db *gorm.DB, q repository.BarracaQuery) *gorm.DB {
	if q.Query != "" {
		pattern := "%" + q.Query + "%"
		db = db.Where("name ILIKE ? OR barraca_number ILIKE ? OR location ILIKE ?", pattern, pattern, pattern)
	}
	if len(q.Locations) > 0 {
		db = db.Where("location IN ?", q.Locations)
	}
	if q.Rating > 0 {
		db = db.Where("rating = ?", q.Rating)
	}

	return db
}

// toBarracaDomain converts a GORM BarracaModel to a domain Barraca entity.
func toBarracaDomain(data *model.BarracaModel) (*entity.Barraca, error) {
	if data == nil {
		return nil, nil
	}

	barraca := &entity.Barraca{
		ID:            entity.BarracaID(data.ID),
		Name:          data.Name,
		BarracaNumber: data.BarracaNumber,
		Location:      data.Location,
		Coordinates:   entity.Coordinates{Lat: data.Latitude, Lng: data.Longitude},
		IsOpen:        data.IsOpen,
		TypicalHours:  data.TypicalHours,
		Description:   data.Description,
		NearestPosto:  data.NearestPosto,

		WeatherDependent: data.WeatherDependent,
		Partnered:        data.Partnered,

		WeekendHoursEnabled: data.WeekendHoursEnabled,

		ManualStatus:                entity.ManualStatus(data.ManualStatus),
		SpecialAdminOverride:        data.SpecialAdminOverride,
		SpecialAdminOverrideExpires: data.SpecialAdminOverrideExpires,

		Rating: data.Rating,

		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if barraca.ManualStatus == "" {
		barraca.ManualStatus = entity.ManualStatusUndefined
	}

	if err := unmarshalColumn(data.Photos, &barraca.Photos); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(data.MenuPreview, &barraca.MenuPreview); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(data.Contact, &barraca.Contact); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(data.Amenities, &barraca.Amenities); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(data.Environment, &barraca.Environment); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(data.CTAButtons, &barraca.CTAButtons); err != nil {
		return nil, err
	}
	if len(data.WeekendHours) > 0 {
		hours := new(entity.WeekendHours)
		if err := unmarshalColumn(data.WeekendHours, hours); err != nil {
			return nil, err
		}
		barraca.WeekendHours = hours
	}

	return barraca, nil
}

// fromBarracaDomain converts a domain Barraca entity to a GORM BarracaModel.
func fromBarracaDomain(data *entity.Barraca) (*model.BarracaModel, error) {
	if data == nil {
		return nil, nil
	}

	barracaM := &model.BarracaModel{
		ID:            data.ID.String(),
		Name:          data.Name,
		BarracaNumber: data.BarracaNumber,
		Location:      data.Location,
		Latitude:      data.Coordinates.Lat,
		Longitude:     data.Coordinates.Lng,
		IsOpen:        data.IsOpen,
		TypicalHours:  data.TypicalHours,
		Description:   data.Description,
		NearestPosto:  data.NearestPosto,

		WeatherDependent: data.WeatherDependent,
		Partnered:        data.Partnered,

		WeekendHoursEnabled: data.WeekendHoursEnabled,

		ManualStatus:                string(data.ManualStatus),
		SpecialAdminOverride:        data.SpecialAdminOverride,
		SpecialAdminOverrideExpires: data.SpecialAdminOverrideExpires,

		Rating: data.Rating,

		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if barracaM.ManualStatus == "" {
		barracaM.ManualStatus = string(entity.ManualStatusUndefined)
	}

	var err error
	if barracaM.Photos, err = marshalColumn(data.Photos); err != nil {
		return nil, err
	}
	if barracaM.MenuPreview, err = marshalColumn(data.MenuPreview); err != nil {
		return nil, err
	}
	if barracaM.Contact, err = marshalColumn(data.Contact); err != nil {
		return nil, err
	}
	if barracaM.Amenities, err = marshalColumn(data.Amenities); err != nil {
		return nil, err
	}
	if barracaM.Environment, err = marshalColumn(data.Environment); err != nil {
		return nil, err
	}
	if barracaM.CTAButtons, err = marshalColumn(data.CTAButtons); err != nil {
		return nil, err
	}
	if data.WeekendHours != nil {
		if barracaM.WeekendHours, err = marshalColumn(data.WeekendHours); err != nil {
			return nil, err
		}
	}

	return barracaM, nil
}

// updateValues builds the column map for a partial update from the non-nil
// pointer fields.
func updateValues(update *entity.BarracaUpdate) (map[string]any, error) {
	values := map[string]any{}
	if update == nil {
		return values, nil
	}

	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.BarracaNumber != nil {
		values["barraca_number"] = *update.BarracaNumber
	}
	if update.Location != nil {
		values["location"] = *update.Location
	}
	if update.Coordinates != nil {
		values["latitude"] = update.Coordinates.Lat
		values["longitude"] = update.Coordinates.Lng
	}
	if update.TypicalHours != nil {
		values["typical_hours"] = *update.TypicalHours
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.NearestPosto != nil {
		values["nearest_posto"] = *update.NearestPosto
	}
	if update.WeatherDependent != nil {
		values["weather_dependent"] = *update.WeatherDependent
	}
	if update.Partnered != nil {
		values["partnered"] = *update.Partnered
	}
	if update.WeekendHoursEnabled != nil {
		values["weekend_hours_enabled"] = *update.WeekendHoursEnabled
	}
	if update.SpecialAdminOverride != nil {
		values["special_admin_override"] = *update.SpecialAdminOverride
	}
	if update.SpecialAdminOverrideExpires != nil {
		values["special_admin_override_expires"] = *update.SpecialAdminOverrideExpires
	}
	if update.Rating != nil {
		values["rating"] = *update.Rating
	}

	jsonColumns := []struct {
		name  string
		value any
		set   bool
	}{
		{"photos", update.Photos, update.Photos != nil},
		{"menu_preview", update.MenuPreview, update.MenuPreview != nil},
		{"contact", update.Contact, update.Contact != nil},
		{"amenities", update.Amenities, update.Amenities != nil},
		{"environment", update.Environment, update.Environment != nil},
		{"weekend_hours", update.WeekendHours, update.WeekendHours != nil},
		{"cta_buttons", update.CTAButtons, update.CTAButtons != nil},
	}
	for _, column := range jsonColumns {
		if !column.set {
			continue
		}
		encoded, err := marshalColumn(column.value)
		if err != nil {
			return nil, err
		}
		values[column.name] = encoded
	}

	return values, nil
}

// marshalColumn JSON-encodes a value for a jsonb column.
func marshalColumn(v any) (datatypes.JSON, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode jsonb column")
	}

	return datatypes.JSON(encoded), nil
}

// unmarshalColumn decodes a jsonb column, leaving the target zero-valued for
// empty columns.
func unmarshalColumn(data datatypes.JSON, target any) error {
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return errors.Wrap(err, "failed to decode jsonb column")
	}

	return nil
}
