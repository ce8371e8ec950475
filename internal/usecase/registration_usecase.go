package usecase

import (
	"context"

	"coastal/internal/domain/entity"

	"github.com/google/uuid"
)

// RegistrationList is one page of registrations for the moderation dashboard.
type RegistrationList struct {
	Registrations []*entity.BarracaRegistration `json:"registrations"`
	Total         int64                         `json:"total"`
	Page          int                           `json:"page"`
	PageSize      int                           `json:"pageSize"`
}

// RegistrationUsecase defines the interface for registration workflow use cases
type RegistrationUsecase interface {
	// Submit stores a new registration as pending and fires the moderation
	// alert. Alert failures never fail the submission.
	Submit(ctx context.Context, registration *entity.BarracaRegistration) (*entity.BarracaRegistration, error)

	// List returns one page of registrations newest first; an empty status
	// returns all.
	List(ctx context.Context, page, pageSize int, status entity.RegistrationStatus) (*RegistrationList, error)

	// GetByID returns a single registration.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BarracaRegistration, error)

	// UpdateStatus reviews a pending registration.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RegistrationStatus, reviewedBy, notes string) error

	// ConvertToBarraca turns an approved registration into a live barraca.
	ConvertToBarraca(ctx context.Context, id uuid.UUID, convertedBy string) (*entity.Barraca, error)

	// Delete removes a registration.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetStats returns the per-status counts.
	GetStats(ctx context.Context) (*entity.RegistrationStats, error)
}
