// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"coastal/internal/domain/entity"
	"coastal/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for barraca persistence.
var (
	// ErrBarracaNotFound is returned when a barraca is not found.
	ErrBarracaNotFound = errors.New("barraca not found")
)

// StatusFilter narrows a listing by effective open state.
type StatusFilter string

const (
	StatusFilterAll    StatusFilter = "all"
	StatusFilterOpen   StatusFilter = "open"
	StatusFilterClosed StatusFilter = "closed"
)

// BarracaQuery is the paginated listing request. Query matches name, number
// and location; Locations restricts to any of the given neighborhoods; Rating
// filters on the exact star count (0 = no filter).
type BarracaQuery struct {
	Page      int
	PageSize  int
	Query     string
	Locations []string
	Status    StatusFilter
	Rating    int
}

// BarracaRepository defines the interface for barraca-related database
// operations, including the remote procedures that compute open status
// server-side.
type BarracaRepository interface {
	// ListWithOpenStatus runs the single-query listing procedure that
	// returns rows together with their computed open flag and the total
	// count. This is the preferred listing path.
	ListWithOpenStatus(ctx context.Context, q BarracaQuery) ([]*entity.Barraca, int64, error)

	// ListRows fetches plain table rows matching everything in q except the
	// status filter, which requires per-row status resolution by the caller.
	// This is the degraded listing path.
	ListRows(ctx context.Context, q BarracaQuery) ([]*entity.Barraca, int64, error)

	// ListContacts fetches id, name and contact info for every barraca.
	ListContacts(ctx context.Context) ([]*entity.Barraca, error)

	// FindByID retrieves a barraca by its id, without open-status resolution.
	FindByID(ctx context.Context, id entity.BarracaID) (*entity.Barraca, error)

	// Create persists a new barraca and hydrates server-assigned fields.
	Create(ctx context.Context, barraca *entity.Barraca) error

	// Update persists the non-nil fields of the partial update and returns
	// the refreshed row.
	Update(ctx context.Context, id entity.BarracaID, update *entity.BarracaUpdate) (*entity.Barraca, error)

	// UpdateContact replaces only the contact payload of a barraca.
	UpdateContact(ctx context.Context, id entity.BarracaID, contact entity.Contact) error

	// Delete removes the row. No client-side cascade is required.
	Delete(ctx context.Context, id entity.BarracaID) error

	// IsOpenNow invokes the is-open-now procedure for a canonical id.
	IsOpenNow(ctx context.Context, id uuid.UUID) (bool, error)

	// SetWeekendHours invokes the weekend-hours procedure with the six
	// open/close time values.
	SetWeekendHours(ctx context.Context, id uuid.UUID, hours entity.WeekendHours) error

	// DisableWeekendHours clears the structured weekend schedule.
	DisableWeekendHours(ctx context.Context, id uuid.UUID) error

	// SpecialAdminOpen forces the barraca open for the given duration.
	SpecialAdminOpen(ctx context.Context, id uuid.UUID, duration time.Duration) error

	// SpecialAdminClose clears an active forced-open override.
	SpecialAdminClose(ctx context.Context, id uuid.UUID) error

	// SetManualStatus sets the manual status of a non-partnered barraca.
	SetManualStatus(ctx context.Context, id uuid.UUID, status entity.ManualStatus) error

	// ListSpecialOverrides returns the currently active forced-open
	// overrides with their remaining time.
	ListSpecialOverrides(ctx context.Context) ([]*entity.OverrideInfo, error)

	// ListManualStatus returns every barraca with an explicit manual
	// status, most recently updated first.
	ListManualStatus(ctx context.Context) ([]*entity.ManualStatusEntry, error)
}
