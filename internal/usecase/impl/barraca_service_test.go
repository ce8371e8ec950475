package impl

import (
	"context"
	"testing"
	"time"

	"coastal/internal/domain/entity"
	domainerrors "coastal/internal/domain/errors"
	"coastal/internal/domain/repository"
	mockRepo "coastal/internal/mocks/repository"
	"coastal/internal/store"
	"coastal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBarracaService(t *testing.T) (*mockRepo.MockBarracaRepository, *mockRepo.MockSettingsRepository, *store.Store, *barracaService) {
	t.Helper()

	barracaRepo := mockRepo.NewMockBarracaRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	st := store.New()
	svc := NewBarracaService(BarracaServiceParams{
		BarracaRepo:  barracaRepo,
		SettingsRepo: settingsRepo,
		Store:        st,
		Logger:       newDiscardLogger(),
	}).(*barracaService)

	return barracaRepo, settingsRepo, st, svc
}

func TestBarracaService_List_PreferredPath(t *testing.T) {
	barracaRepo, settingsRepo, st, svc := newBarracaService(t)
	ctx := context.Background()

	closed := partneredBarraca(uuid.NewString(), "Barraca Fechada")
	closed.IsOpen = false
	open := partneredBarraca(uuid.NewString(), "Barraca Aberta")

	settingsRepo.EXPECT().WeatherOverride(ctx).Return(false, nil)
	barracaRepo.EXPECT().
		ListWithOpenStatus(ctx, mock.AnythingOfType("repository.BarracaQuery")).
		Return([]*entity.Barraca{closed, open}, 2, nil)

	result, err := svc.List(ctx, 1, 20, usecase.BarracaFilters{})
	require.NoError(t, err)
	require.Len(t, result.Barracas, 2)
	assert.Equal(t, int64(2), result.Total)

	// Open barracas sort first.
	assert.Equal(t, "Barraca Aberta", result.Barracas[0].Name)
	assert.Equal(t, entity.StatusOpen, result.Barracas[0].Status)
	assert.Equal(t, entity.StatusClosed, result.Barracas[1].Status)

	// A successful refresh replaces the cache wholesale and clears errors.
	assert.Len(t, st.Barracas(), 2)
	assert.Empty(t, st.LastError())
	assert.False(t, st.Loading())
}

func TestBarracaService_List_FallbackPath(t *testing.T) {
	barracaRepo, settingsRepo, _, svc := newBarracaService(t)
	ctx := context.Background()

	canonical := partneredBarraca(uuid.NewString(), "Com Agenda")
	canonical.IsOpen = false
	legacy := partneredBarraca("barraca-legada", "Sem Agenda")
	nonPartnered := partneredBarraca(uuid.NewString(), "Independente")
	nonPartnered.Partnered = false

	settingsRepo.EXPECT().WeatherOverride(ctx).Return(false, nil)
	barracaRepo.EXPECT().
		ListWithOpenStatus(ctx, mock.AnythingOfType("repository.BarracaQuery")).
		Return(nil, 0, errors.New("rpc unavailable"))
	barracaRepo.EXPECT().
		ListRows(ctx, mock.AnythingOfType("repository.BarracaQuery")).
		Return([]*entity.Barraca{canonical, legacy, nonPartnered}, 3, nil)

	// Only the partnered barraca with a canonical id gets a schedule check.
	canonicalID, err := canonical.ID.UUID()
	require.NoError(t, err)
	barracaRepo.EXPECT().IsOpenNow(ctx, canonicalID).Return(true, nil)

	result, err := svc.List(ctx, 1, 20, usecase.BarracaFilters{})
	require.NoError(t, err)
	require.Len(t, result.Barracas, 3)
	assert.Equal(t, int64(3), result.Total)

	byName := map[string]*entityStatus{}
	for _, view := range result.Barracas {
		byName[view.Name] = &entityStatus{open: view.IsOpen, status: view.Status}
	}
	assert.True(t, byName["Com Agenda"].open)
	assert.Equal(t, entity.StatusOpen, byName["Com Agenda"].status)
	assert.Equal(t, entity.StatusUndetermined, byName["Independente"].status)

	// A partnered barraca on a legacy id has no checkable schedule: its stored
	// flag is discarded and it reads closed.
	assert.False(t, byName["Sem Agenda"].open)
	assert.Equal(t, entity.StatusClosed, byName["Sem Agenda"].status)
}

func TestBarracaService_List_PreferredPath_LegacyPartneredReadsClosed(t *testing.T) {
	barracaRepo, settingsRepo, _, svc := newBarracaService(t)
	ctx := context.Background()

	legacy := partneredBarraca("barraca-legada", "Sem Agenda")
	legacy.IsOpen = true

	settingsRepo.EXPECT().WeatherOverride(ctx).Return(false, nil)
	barracaRepo.EXPECT().
		ListWithOpenStatus(ctx, mock.AnythingOfType("repository.BarracaQuery")).
		Return([]*entity.Barraca{legacy}, 1, nil)

	result, err := svc.List(ctx, 1, 20, usecase.BarracaFilters{})
	require.NoError(t, err)
	require.Len(t, result.Barracas, 1)
	assert.False(t, result.Barracas[0].IsOpen)
	assert.Equal(t, entity.StatusClosed, result.Barracas[0].Status)
}

type entityStatus struct {
	open   bool
	status entity.OpenStatus
}

func TestBarracaService_List_FallbackStatusFilter(t *testing.T) {
	barracaRepo, settingsRepo, _, svc := newBarracaService(t)
	ctx := context.Background()

	open := partneredBarraca(uuid.NewString(), "Aberta")
	closed := partneredBarraca(uuid.NewString(), "Fechada")
	closed.IsOpen = false

	settingsRepo.EXPECT().WeatherOverride(ctx).Return(false, nil)
	barracaRepo.EXPECT().
		ListWithOpenStatus(ctx, mock.AnythingOfType("repository.BarracaQuery")).
		Return(nil, 0, errors.New("rpc unavailable"))
	barracaRepo.EXPECT().
		ListRows(ctx, mock.AnythingOfType("repository.BarracaQuery")).
		Return([]*entity.Barraca{open, closed}, 2, nil)
	barracaRepo.EXPECT().IsOpenNow(ctx, mock.AnythingOfType("uuid.UUID")).Return(true, nil).Once()
	barracaRepo.EXPECT().IsOpenNow(ctx, mock.AnythingOfType("uuid.UUID")).Return(false, nil).Once()

	filters := usecase.BarracaFilters{}
	filters.Status = "open"

	result, err := svc.List(ctx, 1, 20, filters)
	require.NoError(t, err)
	require.Len(t, result.Barracas, 1)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, entity.StatusOpen, result.Barracas[0].Status)
}

func TestBarracaService_List_BothPathsFail(t *testing.T) {
	barracaRepo, settingsRepo, st, svc := newBarracaService(t)
	ctx := context.Background()

	settingsRepo.EXPECT().WeatherOverride(ctx).Return(false, nil)
	barracaRepo.EXPECT().
		ListWithOpenStatus(ctx, mock.AnythingOfType("repository.BarracaQuery")).
		Return(nil, 0, errors.New("rpc unavailable"))
	barracaRepo.EXPECT().
		ListRows(ctx, mock.AnythingOfType("repository.BarracaQuery")).
		Return(nil, 0, errors.New("connection refused"))

	_, err := svc.List(ctx, 1, 20, usecase.BarracaFilters{})
	require.Error(t, err)
	assert.NotEmpty(t, st.LastError())
}

func TestBarracaService_GetByID_RefreshesSchedule(t *testing.T) {
	barracaRepo, settingsRepo, _, svc := newBarracaService(t)
	ctx := context.Background()

	barraca := partneredBarraca(uuid.NewString(), "Com Agenda")
	barraca.IsOpen = false
	uid, err := barraca.ID.UUID()
	require.NoError(t, err)

	settingsRepo.EXPECT().WeatherOverride(ctx).Return(false, nil)
	barracaRepo.EXPECT().FindByID(ctx, barraca.ID).Return(barraca, nil)
	barracaRepo.EXPECT().IsOpenNow(ctx, uid).Return(true, nil)

	view, err := svc.GetByID(ctx, barraca.ID)
	require.NoError(t, err)
	assert.True(t, view.IsOpen)
	assert.Equal(t, entity.StatusOpen, view.Status)
}

func TestBarracaService_GetByID_LegacyPartneredReadsClosed(t *testing.T) {
	barracaRepo, settingsRepo, _, svc := newBarracaService(t)
	ctx := context.Background()

	legacy := partneredBarraca("barraca-legada", "Sem Agenda")
	legacy.IsOpen = true

	settingsRepo.EXPECT().WeatherOverride(ctx).Return(false, nil)
	barracaRepo.EXPECT().FindByID(ctx, legacy.ID).Return(legacy, nil)

	view, err := svc.GetByID(ctx, legacy.ID)
	require.NoError(t, err)
	assert.False(t, view.IsOpen)
	assert.Equal(t, entity.StatusClosed, view.Status)
}

func TestBarracaService_GetByID_NotFound(t *testing.T) {
	barracaRepo, _, _, svc := newBarracaService(t)
	ctx := context.Background()

	barracaRepo.EXPECT().
		FindByID(ctx, entity.BarracaID("missing")).
		Return(nil, repository.ErrBarracaNotFound)

	_, err := svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrBarracaNotFound)
}

func TestBarracaService_Create_AssignsID(t *testing.T) {
	barracaRepo, settingsRepo, st, svc := newBarracaService(t)
	ctx := context.Background()

	settingsRepo.EXPECT().WeatherOverride(ctx).Return(false, nil)
	barracaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Barraca")).
		Return(nil)

	view, err := svc.Create(ctx, &entity.Barraca{Name: "Nova Barraca", Location: "Ipanema"})
	require.NoError(t, err)
	assert.True(t, view.ID.IsCanonical())
	assert.Equal(t, entity.ManualStatusUndefined, view.ManualStatus)
	assert.Len(t, st.Barracas(), 1)
}

func TestBarracaService_Create_RequiresName(t *testing.T) {
	_, _, _, svc := newBarracaService(t)

	_, err := svc.Create(context.Background(), &entity.Barraca{Location: "Leme"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "validation")
}

func TestBarracaService_Update_SyncsWeekendHours(t *testing.T) {
	barracaRepo, settingsRepo, _, svc := newBarracaService(t)
	ctx := context.Background()

	id := uuid.New()
	enabled := true
	hours := entity.WeekendHours{
		Friday:   entity.DayHours{Open: "09:00", Close: "18:00"},
		Saturday: entity.DayHours{Open: "08:00", Close: "19:00"},
		Sunday:   entity.DayHours{Open: "08:00", Close: "17:00"},
	}
	updated := partneredBarraca(id.String(), "Com Horário")
	updated.WeekendHoursEnabled = true
	updated.WeekendHours = &hours

	update := &entity.BarracaUpdate{
		WeekendHoursEnabled: &enabled,
		WeekendHours:        &hours,
	}

	settingsRepo.EXPECT().WeatherOverride(ctx).Return(false, nil)
	barracaRepo.EXPECT().
		Update(ctx, entity.BarracaID(id.String()), update).
		Return(updated, nil)
	barracaRepo.EXPECT().SetWeekendHours(ctx, id, hours).Return(nil)

	view, err := svc.Update(ctx, entity.BarracaID(id.String()), update)
	require.NoError(t, err)
	assert.True(t, view.WeekendHoursEnabled)
}

func TestBarracaService_Update_WeekendSyncFailureIsNotFatal(t *testing.T) {
	barracaRepo, settingsRepo, _, svc := newBarracaService(t)
	ctx := context.Background()

	id := uuid.New()
	disabled := false
	updated := partneredBarraca(id.String(), "Sem Horário")

	update := &entity.BarracaUpdate{WeekendHoursEnabled: &disabled}

	settingsRepo.EXPECT().WeatherOverride(ctx).Return(false, nil)
	barracaRepo.EXPECT().
		Update(ctx, entity.BarracaID(id.String()), update).
		Return(updated, nil)
	barracaRepo.EXPECT().
		DisableWeekendHours(ctx, id).
		Return(errors.New("rpc unavailable"))

	_, err := svc.Update(ctx, entity.BarracaID(id.String()), update)
	assert.NoError(t, err)
}

func TestBarracaService_SetManualStatus(t *testing.T) {
	barracaRepo, _, _, svc := newBarracaService(t)
	ctx := context.Background()

	id := uuid.New()
	independent := partneredBarraca(id.String(), "Independente")
	independent.Partnered = false

	barracaRepo.EXPECT().FindByID(ctx, entity.BarracaID(id.String())).Return(independent, nil)
	barracaRepo.EXPECT().SetManualStatus(ctx, id, entity.ManualStatusClosed).Return(nil)

	err := svc.SetManualStatus(ctx, entity.BarracaID(id.String()), entity.ManualStatusClosed)
	assert.NoError(t, err)
}

func TestBarracaService_ListManualStatus(t *testing.T) {
	barracaRepo, _, _, svc := newBarracaService(t)
	ctx := context.Background()

	entries := []*entity.ManualStatusEntry{{
		BarracaID:    entity.BarracaID(uuid.NewString()),
		BarracaName:  "Independente",
		Location:     "Leblon",
		ManualStatus: entity.ManualStatusOpen,
	}}
	barracaRepo.EXPECT().ListManualStatus(ctx).Return(entries, nil)

	got, err := svc.ListManualStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestBarracaService_SetManualStatus_RejectsPartnered(t *testing.T) {
	barracaRepo, _, _, svc := newBarracaService(t)
	ctx := context.Background()

	id := uuid.New()
	barracaRepo.EXPECT().
		FindByID(ctx, entity.BarracaID(id.String())).
		Return(partneredBarraca(id.String(), "Parceira"), nil)

	err := svc.SetManualStatus(ctx, entity.BarracaID(id.String()), entity.ManualStatusOpen)
	assert.ErrorIs(t, err, domainerrors.ErrPartneredManualStatus)
}

func TestBarracaService_SetManualStatus_RejectsLegacyID(t *testing.T) {
	barracaRepo, _, _, svc := newBarracaService(t)
	ctx := context.Background()

	legacy := partneredBarraca("barraca-legada", "Legada")
	legacy.Partnered = false
	barracaRepo.EXPECT().
		FindByID(ctx, entity.BarracaID("barraca-legada")).
		Return(legacy, nil)

	err := svc.SetManualStatus(ctx, "barraca-legada", entity.ManualStatusOpen)
	assert.ErrorIs(t, err, domainerrors.ErrLegacyBarracaID)
}

func TestBarracaService_SpecialAdminOpen(t *testing.T) {
	barracaRepo, _, _, svc := newBarracaService(t)
	ctx := context.Background()

	id := uuid.New()
	barracaRepo.EXPECT().SpecialAdminOpen(ctx, id, 2*time.Hour).Return(nil)

	err := svc.SpecialAdminOpen(ctx, entity.BarracaID(id.String()), 2)
	assert.NoError(t, err)
}

func TestBarracaService_SpecialAdminOpen_Validation(t *testing.T) {
	_, _, _, svc := newBarracaService(t)
	ctx := context.Background()

	id := entity.BarracaID(uuid.NewString())
	assert.Error(t, svc.SpecialAdminOpen(ctx, id, 0))
	assert.Error(t, svc.SpecialAdminOpen(ctx, id, 25))
	assert.ErrorIs(t, svc.SpecialAdminOpen(ctx, "barraca-legada", 2), domainerrors.ErrLegacyBarracaID)
}

func TestBarracaService_Delete_PatchesCache(t *testing.T) {
	barracaRepo, _, st, svc := newBarracaService(t)
	ctx := context.Background()

	barraca := partneredBarraca(uuid.NewString(), "Para Remover")
	st.SetBarracas([]*entity.Barraca{barraca})

	barracaRepo.EXPECT().Delete(ctx, barraca.ID).Return(nil)

	require.NoError(t, svc.Delete(ctx, barraca.ID))
	assert.Empty(t, st.Barracas())
}
