package repository

import (
	"context"

	"coastal/internal/domain/entity"
	"coastal/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrRegistrationNotFound is returned when a registration is not found.
	ErrRegistrationNotFound = errors.New("registration not found")
)

// RegistrationRepository defines the interface for registration-related
// database operations.
type RegistrationRepository interface {
	// Create persists a submitted registration with status pending.
	Create(ctx context.Context, registration *entity.BarracaRegistration) error

	// FindByID retrieves a registration by its id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BarracaRegistration, error)

	// List returns one page of registrations filtered by status, newest
	// first, along with the total matching count. An empty status returns
	// all; a pageSize of zero disables paging.
	List(ctx context.Context, status entity.RegistrationStatus, page, pageSize int) ([]*entity.BarracaRegistration, int64, error)

	// UpdateStatus transitions a registration and records the reviewer and
	// optional notes.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RegistrationStatus, reviewedBy, notes string) error

	// Delete removes a registration row.
	Delete(ctx context.Context, id uuid.UUID) error

	// Stats returns the per-status counts for the moderation dashboard.
	Stats(ctx context.Context) (*entity.RegistrationStats, error)
}
