package postgres

import (
	"context"
	"time"

	"coastal/internal/domain/entity"
	"coastal/internal/domain/repository"
	"coastal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// registrationRepository implements the repository.RegistrationRepository interface.
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository is the constructor for registrationRepository.
func NewRegistrationRepository(db *gorm.DB) repository.RegistrationRepository {
	return &registrationRepository{
		db: db,
	}
}

// Create persists a submitted registration with status pending.
func (repo *registrationRepository) Create(ctx context.Context, registration *entity.BarracaRegistration) error {
	registrationM, err := fromRegistrationDomain(registration)
	if err != nil {
		return err
	}
	registrationM.Status = string(entity.RegistrationPending)

	if err := repo.db.WithContext(ctx).Create(registrationM).Error; err != nil {
		return errors.Wrap(err, "failed to create registration")
	}

	registration.ID = registrationM.ID
	registration.Status = entity.RegistrationPending
	registration.SubmittedAt = registrationM.CreatedAt

	return nil
}

// FindByID retrieves a registration by its id.
func (repo *registrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BarracaRegistration, error) {
	var registrationM model.BarracaRegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&registrationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration by ID")
	}

	return toRegistrationDomain(&registrationM)
}

// List returns one page of registrations filtered by status, newest first,
// along with the total matching count.
func (repo *registrationRepository) List(ctx context.Context, status entity.RegistrationStatus, page, pageSize int) ([]*entity.BarracaRegistration, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BarracaRegistrationModel{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count registrations")
	}

	query = query.Order("created_at DESC")
	if pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	var registrationModels []*model.BarracaRegistrationModel
	if err := query.Find(&registrationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list registrations")
	}

	registrations := make([]*entity.BarracaRegistration, 0, len(registrationModels))
	for _, registrationM := range registrationModels {
		registration, err := toRegistrationDomain(registrationM)
		if err != nil {
			return nil, 0, err
		}
		registrations = append(registrations, registration)
	}

	return registrations, total, nil
}

// UpdateStatus transitions a registration and records the reviewer and
// optional notes.
func (repo *registrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RegistrationStatus, reviewedBy, notes string) error {
	now := time.Now()
	values := map[string]any{
		"status":      string(status),
		"reviewed_at": now,
		"reviewed_by": reviewedBy,
	}
	if notes != "" {
		values["admin_notes"] = notes
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BarracaRegistrationModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update registration status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRegistrationNotFound
	}

	return nil
}

// Delete removes a registration row.
func (repo *registrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BarracaRegistrationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete registration")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRegistrationNotFound
	}

	return nil
}

// Stats returns the per-status counts for the moderation dashboard.
func (repo *registrationRepository) Stats(ctx context.Context) (*entity.RegistrationStats, error) {
	var rows []struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.BarracaRegistrationModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count registrations")
	}

	stats := &entity.RegistrationStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch entity.RegistrationStatus(row.Status) {
		case entity.RegistrationPending:
			stats.Pending = row.Count
		case entity.RegistrationApproved:
			stats.Approved = row.Count
		case entity.RegistrationRejected:
			stats.Rejected = row.Count
		}
	}

	return stats, nil
}

// toRegistrationDomain converts a GORM BarracaRegistrationModel to a domain entity.
func toRegistrationDomain(data *model.BarracaRegistrationModel) (*entity.BarracaRegistration, error) {
	if data == nil {
		return nil, nil
	}

	registration := &entity.BarracaRegistration{
		ID:            data.ID,
		Name:          data.Name,
		OwnerName:     data.OwnerName,
		BarracaNumber: data.BarracaNumber,
		Location:      data.Location,
		Coordinates:   entity.Coordinates{Lat: data.Latitude, Lng: data.Longitude},
		TypicalHours:  data.TypicalHours,
		Description:   data.Description,
		NearestPosto:  data.NearestPosto,
		DefaultPhoto:  data.DefaultPhoto,

		WeekendHoursEnabled: data.WeekendHoursEnabled,
		AdditionalInfo:      data.AdditionalInfo,

		EnglishFluency:      entity.EnglishFluency(data.EnglishFluency),
		EnglishSpeakerNames: data.EnglishSpeakerNames,
		TabSystem:           entity.TabSystem(data.TabSystem),

		Status:      entity.RegistrationStatus(data.Status),
		SubmittedAt: data.CreatedAt,
		ReviewedAt:  data.ReviewedAt,
		ReviewedBy:  data.ReviewedBy,
		AdminNotes:  data.AdminNotes,
	}

	if err := unmarshalColumn(data.Contact, &registration.Contact); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(data.Amenities, &registration.Amenities); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(data.Environment, &registration.Environment); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(data.Partnership, &registration.Partnership); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(data.ContactPref, &registration.ContactPref); err != nil {
		return nil, err
	}
	if len(data.WeekendHours) > 0 {
		hours := new(entity.WeekendHours)
		if err := unmarshalColumn(data.WeekendHours, hours); err != nil {
			return nil, err
		}
		registration.WeekendHours = hours
	}

	return registration, nil
}

// fromRegistrationDomain converts a domain entity to a GORM BarracaRegistrationModel.
func fromRegistrationDomain(data *entity.BarracaRegistration) (*model.BarracaRegistrationModel, error) {
	if data == nil {
		return nil, nil
	}

	registrationM := &model.BarracaRegistrationModel{
		ID:            data.ID,
		Name:          data.Name,
		OwnerName:     data.OwnerName,
		BarracaNumber: data.BarracaNumber,
		Location:      data.Location,
		Latitude:      data.Coordinates.Lat,
		Longitude:     data.Coordinates.Lng,
		TypicalHours:  data.TypicalHours,
		Description:   data.Description,
		NearestPosto:  data.NearestPosto,
		DefaultPhoto:  data.DefaultPhoto,

		WeekendHoursEnabled: data.WeekendHoursEnabled,
		AdditionalInfo:      data.AdditionalInfo,

		EnglishFluency:      string(data.EnglishFluency),
		EnglishSpeakerNames: data.EnglishSpeakerNames,
		TabSystem:           string(data.TabSystem),

		Status:     string(data.Status),
		ReviewedAt: data.ReviewedAt,
		ReviewedBy: data.ReviewedBy,
		AdminNotes: data.AdminNotes,
	}

	var err error
	if registrationM.Contact, err = marshalColumn(data.Contact); err != nil {
		return nil, err
	}
	if registrationM.Amenities, err = marshalColumn(data.Amenities); err != nil {
		return nil, err
	}
	if registrationM.Environment, err = marshalColumn(data.Environment); err != nil {
		return nil, err
	}
	if registrationM.Partnership, err = marshalColumn(data.Partnership); err != nil {
		return nil, err
	}
	if registrationM.ContactPref, err = marshalColumn(data.ContactPref); err != nil {
		return nil, err
	}
	if data.WeekendHours != nil {
		if registrationM.WeekendHours, err = marshalColumn(data.WeekendHours); err != nil {
			return nil, err
		}
	}

	return registrationM, nil
}
