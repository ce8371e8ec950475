package impl

import (
	"context"
	"testing"

	"coastal/internal/domain/entity"
	domainerrors "coastal/internal/domain/errors"
	"coastal/internal/domain/repository"
	mockRepo "coastal/internal/mocks/repository"
	mockSvc "coastal/internal/mocks/service"
	"coastal/internal/store"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registrationServiceFixture struct {
	registrationRepo *mockRepo.MockRegistrationRepository
	barracaRepo      *mockRepo.MockBarracaRepository
	notifier         *mockSvc.MockRegistrationNotifier
	store            *store.Store
	svc              *registrationService
}

func newRegistrationService(t *testing.T) registrationServiceFixture {
	t.Helper()

	f := registrationServiceFixture{
		registrationRepo: mockRepo.NewMockRegistrationRepository(t),
		barracaRepo:      mockRepo.NewMockBarracaRepository(t),
		notifier:         mockSvc.NewMockRegistrationNotifier(t),
		store:            store.New(),
	}
	f.svc = NewRegistrationService(RegistrationServiceParams{
		RegistrationRepo: f.registrationRepo,
		BarracaRepo:      f.barracaRepo,
		Notifier:         f.notifier,
		Store:            f.store,
		Logger:           newDiscardLogger(),
	}).(*registrationService)

	return f
}

func pendingRegistration() *entity.BarracaRegistration {
	return &entity.BarracaRegistration{
		ID:            uuid.New(),
		Name:          "Barraca do Sol",
		OwnerName:     "Maria",
		BarracaNumber: "42",
		Location:      "Posto 9, Ipanema",
		Status:        entity.RegistrationPending,
	}
}

func TestRegistrationService_Submit(t *testing.T) {
	f := newRegistrationService(t)
	ctx := context.Background()

	f.registrationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BarracaRegistration")).
		Return(nil)
	f.notifier.EXPECT().
		NotifyNewRegistration(ctx, mock.AnythingOfType("*entity.BarracaRegistration")).
		Return(nil)

	registration, err := f.svc.Submit(ctx, &entity.BarracaRegistration{
		Name:      "Barraca do Sol",
		OwnerName: "Maria",
		Location:  "Posto 9, Ipanema",
		Status:    entity.RegistrationApproved, // callers cannot pick their status
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationPending, registration.Status)
}

func TestRegistrationService_Submit_NotifyFailureIsNotFatal(t *testing.T) {
	f := newRegistrationService(t)
	ctx := context.Background()

	f.registrationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BarracaRegistration")).
		Return(nil)
	f.notifier.EXPECT().
		NotifyNewRegistration(ctx, mock.AnythingOfType("*entity.BarracaRegistration")).
		Return(errors.New("webhook timeout"))

	_, err := f.svc.Submit(ctx, &entity.BarracaRegistration{
		Name:      "Barraca do Sol",
		OwnerName: "Maria",
		Location:  "Posto 9, Ipanema",
	})
	assert.NoError(t, err)
}

func TestRegistrationService_Submit_Validation(t *testing.T) {
	f := newRegistrationService(t)

	_, err := f.svc.Submit(context.Background(), &entity.BarracaRegistration{Name: "Sem Dono"})
	assert.ErrorContains(t, err, "validation")
}

func TestRegistrationService_List_CachesResult(t *testing.T) {
	f := newRegistrationService(t)
	ctx := context.Background()

	registrations := []*entity.BarracaRegistration{pendingRegistration()}
	f.registrationRepo.EXPECT().
		List(ctx, entity.RegistrationPending, 1, 20).
		Return(registrations, 1, nil)

	got, err := f.svc.List(ctx, 1, 20, entity.RegistrationPending)
	require.NoError(t, err)
	assert.Len(t, got.Registrations, 1)
	assert.Equal(t, int64(1), got.Total)
	assert.Len(t, f.store.Registrations(), 1)
}

func TestRegistrationService_List_NormalizesPaging(t *testing.T) {
	f := newRegistrationService(t)
	ctx := context.Background()

	// Out-of-range paging values clamp to the defaults before hitting the
	// repository.
	f.registrationRepo.EXPECT().
		List(ctx, entity.RegistrationStatus(""), 1, 20).
		Return([]*entity.BarracaRegistration{}, 42, nil)

	got, err := f.svc.List(ctx, 0, -5, "")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 20, got.PageSize)
	assert.Equal(t, int64(42), got.Total)
}

func TestRegistrationService_List_RejectsUnknownStatus(t *testing.T) {
	f := newRegistrationService(t)

	_, err := f.svc.List(context.Background(), 1, 20, entity.RegistrationStatus("archived"))
	assert.Error(t, err)
}

func TestRegistrationService_UpdateStatus_PendingOnly(t *testing.T) {
	f := newRegistrationService(t)
	ctx := context.Background()

	approved := pendingRegistration()
	approved.Status = entity.RegistrationApproved

	f.registrationRepo.EXPECT().FindByID(ctx, approved.ID).Return(approved, nil)

	err := f.svc.UpdateStatus(ctx, approved.ID, entity.RegistrationRejected, "admin@example.com", "")
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotPending)
}

func TestRegistrationService_UpdateStatus_RejectsPendingTarget(t *testing.T) {
	f := newRegistrationService(t)

	err := f.svc.UpdateStatus(context.Background(), uuid.New(), entity.RegistrationPending, "admin@example.com", "")
	assert.Error(t, err)
}

func TestRegistrationService_UpdateStatus(t *testing.T) {
	f := newRegistrationService(t)
	ctx := context.Background()

	registration := pendingRegistration()
	f.registrationRepo.EXPECT().FindByID(ctx, registration.ID).Return(registration, nil)
	f.registrationRepo.EXPECT().
		UpdateStatus(ctx, registration.ID, entity.RegistrationApproved, "admin@example.com", "looks good").
		Return(nil)

	err := f.svc.UpdateStatus(ctx, registration.ID, entity.RegistrationApproved, "admin@example.com", "looks good")
	assert.NoError(t, err)
}

func TestRegistrationService_ConvertToBarraca(t *testing.T) {
	f := newRegistrationService(t)
	ctx := context.Background()

	registration := pendingRegistration()
	registration.Status = entity.RegistrationApproved

	f.registrationRepo.EXPECT().FindByID(ctx, registration.ID).Return(registration, nil)
	f.barracaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Barraca")).
		Return(nil)
	f.registrationRepo.EXPECT().
		UpdateStatus(ctx, registration.ID, entity.RegistrationApproved, "admin@example.com", convertedNote).
		Return(nil)

	barraca, err := f.svc.ConvertToBarraca(ctx, registration.ID, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, registration.Name, barraca.Name)
	assert.True(t, barraca.ID.IsCanonical())
	assert.Len(t, f.store.Barracas(), 1)
}

func TestRegistrationService_ConvertToBarraca_ApprovedOnly(t *testing.T) {
	f := newRegistrationService(t)
	ctx := context.Background()

	registration := pendingRegistration()
	f.registrationRepo.EXPECT().FindByID(ctx, registration.ID).Return(registration, nil)

	_, err := f.svc.ConvertToBarraca(ctx, registration.ID, "admin@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotApproved)
}

func TestRegistrationService_ConvertToBarraca_CreateFailureLeavesRegistration(t *testing.T) {
	f := newRegistrationService(t)
	ctx := context.Background()

	registration := pendingRegistration()
	registration.Status = entity.RegistrationApproved

	f.registrationRepo.EXPECT().FindByID(ctx, registration.ID).Return(registration, nil)
	f.barracaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Barraca")).
		Return(errors.New("insert failed"))

	_, err := f.svc.ConvertToBarraca(ctx, registration.ID, "admin@example.com")
	require.Error(t, err)
	// No annotation write happens, so the registration stays retryable.
	assert.Empty(t, f.store.Barracas())
}

func TestRegistrationService_ConvertToBarraca_AnnotationFailureStillReturnsBarraca(t *testing.T) {
	f := newRegistrationService(t)
	ctx := context.Background()

	registration := pendingRegistration()
	registration.Status = entity.RegistrationApproved

	f.registrationRepo.EXPECT().FindByID(ctx, registration.ID).Return(registration, nil)
	f.barracaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Barraca")).
		Return(nil)
	f.registrationRepo.EXPECT().
		UpdateStatus(ctx, registration.ID, entity.RegistrationApproved, "admin@example.com", convertedNote).
		Return(errors.New("update failed"))

	barraca, err := f.svc.ConvertToBarraca(ctx, registration.ID, "admin@example.com")
	require.NoError(t, err)
	assert.NotNil(t, barraca)
}

func TestRegistrationService_Delete_NotFound(t *testing.T) {
	f := newRegistrationService(t)
	ctx := context.Background()

	id := uuid.New()
	f.registrationRepo.EXPECT().Delete(ctx, id).Return(repository.ErrRegistrationNotFound)

	err := f.svc.Delete(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)
}

func TestRegistrationService_GetStats(t *testing.T) {
	f := newRegistrationService(t)
	ctx := context.Background()

	f.registrationRepo.EXPECT().
		Stats(ctx).
		Return(&entity.RegistrationStats{Total: 3, Pending: 1, Approved: 2}, nil)

	stats, err := f.svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
}
