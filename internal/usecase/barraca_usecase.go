// Package usecase defines the application's business operations as interfaces,
// keeping delivery and persistence decoupled from the rules between them.
package usecase

import (
	"context"

	"coastal/internal/domain/entity"
)

// BarracaFilters narrows a listing request. Status accepts "all", "open" or
// "closed"; Rating is an exact star count, 0 meaning no filter.
type BarracaFilters struct {
	Query     string
	Locations []string
	Status    string
	Rating    int
}

// BarracaView is a barraca together with its resolved display status.
type BarracaView struct {
	*entity.Barraca
	Status entity.OpenStatus `json:"status"`
}

// BarracaList is one page of resolved, sorted barracas.
type BarracaList struct {
	Barracas []*BarracaView `json:"barracas"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// BarracaUsecase defines the interface for barraca management use cases
type BarracaUsecase interface {
	// List returns one page of barracas with resolved status, sorted by the
	// directory ordering.
	List(ctx context.Context, page, pageSize int, filters BarracaFilters) (*BarracaList, error)

	// GetByID returns a single barraca with resolved status.
	GetByID(ctx context.Context, id entity.BarracaID) (*BarracaView, error)

	// Create persists a new barraca under a fresh id.
	Create(ctx context.Context, barraca *entity.Barraca) (*BarracaView, error)

	// Update applies a partial update and returns the refreshed record.
	Update(ctx context.Context, id entity.BarracaID, update *entity.BarracaUpdate) (*BarracaView, error)

	// Delete removes a barraca.
	Delete(ctx context.Context, id entity.BarracaID) error

	// SetManualStatus sets the admin-chosen status of a non-partnered barraca.
	SetManualStatus(ctx context.Context, id entity.BarracaID, status entity.ManualStatus) error

	// SpecialAdminOpen forces a barraca open for the given number of hours.
	SpecialAdminOpen(ctx context.Context, id entity.BarracaID, durationHours float64) error

	// SpecialAdminClose clears an active forced-open override.
	SpecialAdminClose(ctx context.Context, id entity.BarracaID) error

	// ListSpecialOverrides returns the active forced-open overrides.
	ListSpecialOverrides(ctx context.Context) ([]*entity.OverrideInfo, error)

	// ListManualStatus returns every barraca with an explicit manual status.
	ListManualStatus(ctx context.Context) ([]*entity.ManualStatusEntry, error)
}
