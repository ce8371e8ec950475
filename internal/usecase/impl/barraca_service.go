// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"coastal/internal/domain/entity"
	domainerrors "coastal/internal/domain/errors"
	"coastal/internal/domain/repository"
	"coastal/internal/store"
	"coastal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	maxOverrideHours = 24
)

type barracaService struct {
	barracaRepo  repository.BarracaRepository
	settingsRepo repository.SettingsRepository
	store        *store.Store
	logger       *slog.Logger
}

// BarracaServiceParams holds dependencies for BarracaService, injected by Fx.
type BarracaServiceParams struct {
	fx.In

	BarracaRepo  repository.BarracaRepository
	SettingsRepo repository.SettingsRepository
	Store        *store.Store
	Logger       *slog.Logger
}

// NewBarracaService creates a new barraca service instance
func NewBarracaService(params BarracaServiceParams) usecase.BarracaUsecase {
	return &barracaService{
		barracaRepo:  params.BarracaRepo,
		settingsRepo: params.SettingsRepo,
		store:        params.Store,
		logger:       params.Logger,
	}
}

// List returns one page of barracas with resolved status. The combined
// server-side procedure is the preferred path; when it fails, the service
// falls back to plain rows plus per-barraca schedule checks so the directory
// stays available during partial backend degradation. Both paths apply the
// same filter and ordering semantics.
func (s *barracaService) List(ctx context.Context, page, pageSize int, filters usecase.BarracaFilters) (*usecase.BarracaList, error) {
	page, pageSize = normalizePage(page, pageSize)
	weather := s.weatherOverride(ctx)

	s.store.SetLoading(true)
	defer s.store.SetLoading(false)

	query := repository.BarracaQuery{
		Page:      page,
		PageSize:  pageSize,
		Query:     filters.Query,
		Locations: filters.Locations,
		Status:    repository.StatusFilter(filters.Status),
		Rating:    filters.Rating,
	}
	if query.Status == "" {
		query.Status = repository.StatusFilterAll
	}

	barracas, total, err := s.barracaRepo.ListWithOpenStatus(ctx, query)
	if err != nil {
		s.logger.Warn("combined listing procedure failed, falling back to row query",
			slog.String("error", err.Error()),
		)

		barracas, total, err = s.listFallback(ctx, query, weather)
		if err != nil {
			s.store.SetLastError(err.Error())

			return nil, err
		}
	} else {
		normalizeLegacyStatus(barracas)
	}

	now := time.Now()
	entity.SortBarracas(barracas)

	views := make([]*usecase.BarracaView, 0, len(barracas))
	for _, barraca := range barracas {
		views = append(views, &usecase.BarracaView{
			Barraca: barraca,
			Status:  barraca.EffectiveStatus(weather, now),
		})
	}

	s.store.SetBarracas(barracas)
	s.store.SetLastError("")

	return &usecase.BarracaList{
		Barracas: views,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// listFallback fetches plain rows and resolves the open flag one barraca at a
// time. Schedule checks only apply to partnered barracas with canonical ids;
// non-partnered barracas never depend on a schedule. Since the status filter
// needs resolved flags, pagination moves client-side here.
func (s *barracaService) listFallback(ctx context.Context, q repository.BarracaQuery, weather bool) ([]*entity.Barraca, int64, error) {
	all := q
	all.Page = 1
	all.PageSize = 0

	barracas, _, err := s.barracaRepo.ListRows(ctx, all)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to load barraca rows")
	}

	now := time.Now()
	for _, barraca := range barracas {
		s.refreshOpenFlag(ctx, barraca)
	}

	if q.Status == repository.StatusFilterOpen || q.Status == repository.StatusFilterClosed {
		want := entity.StatusClosed
		if q.Status == repository.StatusFilterOpen {
			want = entity.StatusOpen
		}
		filtered := barracas[:0]
		for _, barraca := range barracas {
			if barraca.EffectiveStatus(weather, now) == want {
				filtered = append(filtered, barraca)
			}
		}
		barracas = filtered
	}

	total := int64(len(barracas))
	entity.SortBarracas(barracas)

	if q.PageSize > 0 {
		start := (q.Page - 1) * q.PageSize
		if start >= len(barracas) {
			return []*entity.Barraca{}, total, nil
		}
		end := start + q.PageSize
		if end > len(barracas) {
			end = len(barracas)
		}
		barracas = barracas[start:end]
	}

	return barracas, total, nil
}

// GetByID returns a single barraca with resolved status. The open flag is
// re-checked against the schedule so a single fetch is as fresh as a listing.
func (s *barracaService) GetByID(ctx context.Context, id entity.BarracaID) (*usecase.BarracaView, error) {
	barraca, err := s.barracaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBarracaNotFound) {
			return nil, domainerrors.ErrBarracaNotFound
		}

		return nil, errors.Wrap(err, "failed to load barraca")
	}

	s.refreshOpenFlag(ctx, barraca)

	return s.view(ctx, barraca), nil
}

// refreshOpenFlag resolves the stored open flag for one barraca. A partnered
// barraca on a canonical id gets a live schedule check; on a legacy id its
// schedule can never be checked, so the flag is forced off rather than trusting
// a stale stored value. Non-partnered barracas resolve to undetermined anyway
// and keep their flag.
func (s *barracaService) refreshOpenFlag(ctx context.Context, barraca *entity.Barraca) {
	if !barraca.Partnered {
		return
	}

	uid, err := barraca.ID.UUID()
	if err != nil {
		barraca.IsOpen = false

		return
	}

	open, err := s.barracaRepo.IsOpenNow(ctx, uid)
	if err != nil {
		s.logger.Warn("per-barraca schedule check failed, keeping stored flag",
			slog.String("barracaId", barraca.ID.String()),
			slog.String("error", err.Error()),
		)

		return
	}
	barraca.IsOpen = open
}

// normalizeLegacyStatus forces the open flag off for partnered barracas with
// legacy ids. The combined listing procedure leaves their stored flag in
// place, but a schedule that can never be checked must not report open.
func normalizeLegacyStatus(barracas []*entity.Barraca) {
	for _, barraca := range barracas {
		if barraca.Partnered && !barraca.ID.IsCanonical() {
			barraca.IsOpen = false
		}
	}
}

// Create persists a new barraca under a fresh id.
func (s *barracaService) Create(ctx context.Context, barraca *entity.Barraca) (*usecase.BarracaView, error) {
	if barraca.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if barraca.ID == "" {
		barraca.ID = entity.BarracaID(uuid.NewString())
	}
	if barraca.ManualStatus == "" {
		barraca.ManualStatus = entity.ManualStatusUndefined
	}

	if err := s.barracaRepo.Create(ctx, barraca); err != nil {
		return nil, domainerrors.ErrBarracaCreationFailed.WrapMessage(err.Error())
	}

	s.store.AddBarraca(barraca)

	return s.view(ctx, barraca), nil
}

// Update applies a partial update and returns the refreshed record. Flipping
// the weekend-hours enablement additionally invokes the schedule procedures,
// best-effort: a schedule sync failure is logged, never surfaced, so the
// primary update always lands.
func (s *barracaService) Update(ctx context.Context, id entity.BarracaID, update *entity.BarracaUpdate) (*usecase.BarracaView, error) {
	barraca, err := s.barracaRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrBarracaNotFound) {
			return nil, domainerrors.ErrBarracaNotFound
		}

		return nil, domainerrors.ErrBarracaUpdateFailed.WrapMessage(err.Error())
	}

	s.syncWeekendHours(ctx, barraca, update)
	s.store.UpdateBarraca(barraca)

	return s.view(ctx, barraca), nil
}

// syncWeekendHours pushes a weekend-hours enablement flip into the schedule
// procedures. Legacy ids cannot carry a structured schedule and are skipped.
func (s *barracaService) syncWeekendHours(ctx context.Context, barraca *entity.Barraca, update *entity.BarracaUpdate) {
	if update == nil || update.WeekendHoursEnabled == nil {
		return
	}

	uid, err := barraca.ID.UUID()
	if err != nil {
		s.logger.Warn("skipping weekend-hours sync for legacy id",
			slog.String("barracaId", barraca.ID.String()),
		)

		return
	}

	if *update.WeekendHoursEnabled {
		if barraca.WeekendHours == nil {
			return
		}
		if err := s.barracaRepo.SetWeekendHours(ctx, uid, *barraca.WeekendHours); err != nil {
			s.logger.Warn("weekend-hours sync failed",
				slog.String("barracaId", barraca.ID.String()),
				slog.String("error", err.Error()),
			)
		}

		return
	}

	if err := s.barracaRepo.DisableWeekendHours(ctx, uid); err != nil {
		s.logger.Warn("weekend-hours disable failed",
			slog.String("barracaId", barraca.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// Delete removes a barraca.
func (s *barracaService) Delete(ctx context.Context, id entity.BarracaID) error {
	if err := s.barracaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBarracaNotFound) {
			return domainerrors.ErrBarracaNotFound
		}

		return errors.Wrap(err, "failed to delete barraca")
	}

	s.store.DeleteBarraca(id)

	return nil
}

// SetManualStatus sets the admin-chosen status of a non-partnered barraca.
func (s *barracaService) SetManualStatus(ctx context.Context, id entity.BarracaID, status entity.ManualStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown manual status")
	}

	barraca, err := s.barracaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBarracaNotFound) {
			return domainerrors.ErrBarracaNotFound
		}

		return errors.Wrap(err, "failed to load barraca")
	}
	if barraca.Partnered {
		return domainerrors.ErrPartneredManualStatus
	}

	uid, err := id.UUID()
	if err != nil {
		return domainerrors.ErrLegacyBarracaID
	}

	if err := s.barracaRepo.SetManualStatus(ctx, uid, status); err != nil {
		return errors.Wrap(err, "failed to set manual status")
	}

	return nil
}

// SpecialAdminOpen forces a barraca open for the given number of hours.
func (s *barracaService) SpecialAdminOpen(ctx context.Context, id entity.BarracaID, durationHours float64) error {
	if durationHours <= 0 || durationHours > maxOverrideHours {
		return domainerrors.ErrValidationFailed.WithDetails("override duration must be between 0 and 24 hours")
	}

	uid, err := id.UUID()
	if err != nil {
		return domainerrors.ErrLegacyBarracaID
	}

	duration := time.Duration(durationHours * float64(time.Hour))
	if err := s.barracaRepo.SpecialAdminOpen(ctx, uid, duration); err != nil {
		return errors.Wrap(err, "failed to force-open barraca")
	}

	return nil
}

// SpecialAdminClose clears an active forced-open override.
func (s *barracaService) SpecialAdminClose(ctx context.Context, id entity.BarracaID) error {
	uid, err := id.UUID()
	if err != nil {
		return domainerrors.ErrLegacyBarracaID
	}

	if err := s.barracaRepo.SpecialAdminClose(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to clear barraca override")
	}

	return nil
}

// ListSpecialOverrides returns the active forced-open overrides.
func (s *barracaService) ListSpecialOverrides(ctx context.Context) ([]*entity.OverrideInfo, error) {
	overrides, err := s.barracaRepo.ListSpecialOverrides(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list overrides")
	}

	return overrides, nil
}

// ListManualStatus returns every barraca with an explicit manual status.
func (s *barracaService) ListManualStatus(ctx context.Context) ([]*entity.ManualStatusEntry, error) {
	entries, err := s.barracaRepo.ListManualStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list manual statuses")
	}

	return entries, nil
}

// view wraps a barraca with its resolved display status.
func (s *barracaService) view(ctx context.Context, barraca *entity.Barraca) *usecase.BarracaView {
	return &usecase.BarracaView{
		Barraca: barraca,
		Status:  barraca.EffectiveStatus(s.weatherOverride(ctx), time.Now()),
	}
}

// weatherOverride reads the bad-weather flag, falling back to the cached value
// when the settings row is unreachable.
func (s *barracaService) weatherOverride(ctx context.Context) bool {
	enabled, err := s.settingsRepo.WeatherOverride(ctx)
	if err != nil {
		s.logger.Warn("failed to read weather override, using cached value",
			slog.String("error", err.Error()),
		)

		return s.store.WeatherOverride()
	}

	s.store.SetWeatherOverride(enabled, s.store.WeatherOverrideExpires())

	return enabled
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return page, pageSize
}
