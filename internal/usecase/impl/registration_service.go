package impl

import (
	"context"
	"log/slog"

	"coastal/internal/domain/entity"
	domainerrors "coastal/internal/domain/errors"
	"coastal/internal/domain/repository"
	"coastal/internal/domain/service"
	"coastal/internal/store"
	"coastal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const convertedNote = "Converted to barraca"

type registrationService struct {
	registrationRepo repository.RegistrationRepository
	barracaRepo      repository.BarracaRepository
	notifier         service.RegistrationNotifier
	store            *store.Store
	logger           *slog.Logger
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	RegistrationRepo repository.RegistrationRepository
	BarracaRepo      repository.BarracaRepository
	Notifier         service.RegistrationNotifier
	Store            *store.Store
	Logger           *slog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		registrationRepo: params.RegistrationRepo,
		barracaRepo:      params.BarracaRepo,
		notifier:         params.Notifier,
		store:            params.Store,
		logger:           params.Logger,
	}
}

// Submit stores a new registration as pending and fires the moderation alert.
// The alert is best-effort: a delivery failure is logged and the submission
// still succeeds.
func (s *registrationService) Submit(ctx context.Context, registration *entity.BarracaRegistration) (*entity.BarracaRegistration, error) {
	if registration.Name == "" || registration.OwnerName == "" || registration.Location == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, owner name and location are required")
	}

	registration.Status = entity.RegistrationPending
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, errors.Wrap(err, "failed to store registration")
	}

	if err := s.notifier.NotifyNewRegistration(ctx, registration); err != nil {
		s.logger.Warn("registration alert delivery failed",
			slog.String("registrationId", registration.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return registration, nil
}

// List returns one page of registrations newest first; an empty status
// returns all.
func (s *registrationService) List(ctx context.Context, page, pageSize int, status entity.RegistrationStatus) (*usecase.RegistrationList, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown registration status")
	}

	page, pageSize = normalizePage(page, pageSize)

	registrations, total, err := s.registrationRepo.List(ctx, status, page, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registrations")
	}

	s.store.SetRegistrations(registrations)

	return &usecase.RegistrationList{
		Registrations: registrations,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// GetByID returns a single registration.
func (s *registrationService) GetByID(ctx context.Context, id uuid.UUID) (*entity.BarracaRegistration, error) {
	registration, err := s.registrationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, domainerrors.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to load registration")
	}

	return registration, nil
}

// UpdateStatus reviews a pending registration. Only pending submissions can
// be approved or rejected.
func (s *registrationService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RegistrationStatus, reviewedBy, notes string) error {
	if status != entity.RegistrationApproved && status != entity.RegistrationRejected {
		return domainerrors.ErrValidationFailed.WithDetails("status must be approved or rejected")
	}

	registration, err := s.registrationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return domainerrors.ErrRegistrationNotFound
		}

		return errors.Wrap(err, "failed to load registration")
	}
	if !registration.Status.CanTransitionTo(status) {
		return domainerrors.ErrRegistrationNotPending
	}

	if err := s.registrationRepo.UpdateStatus(ctx, id, status, reviewedBy, notes); err != nil {
		return errors.Wrap(err, "failed to update registration status")
	}

	return nil
}

// ConvertToBarraca turns an approved registration into a live barraca. The
// two writes are deliberately sequential, not transactional: if the
// annotation write fails after the barraca exists, the registration simply
// shows as approved-but-unconverted, which a later retry resolves by creating
// a duplicate-free annotation only.
func (s *registrationService) ConvertToBarraca(ctx context.Context, id uuid.UUID, convertedBy string) (*entity.Barraca, error) {
	registration, err := s.registrationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, domainerrors.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to load registration")
	}
	if registration.Status != entity.RegistrationApproved {
		return nil, domainerrors.ErrRegistrationNotApproved
	}

	barraca := registration.ToBarracaDraft()
	barraca.ID = entity.BarracaID(uuid.NewString())

	if err := s.barracaRepo.Create(ctx, barraca); err != nil {
		// The registration stays untouched so the conversion can be retried.
		return nil, domainerrors.ErrBarracaCreationFailed.WrapMessage(err.Error())
	}

	if err := s.registrationRepo.UpdateStatus(ctx, id, entity.RegistrationApproved, convertedBy, convertedNote); err != nil {
		s.logger.Warn("conversion annotation failed, barraca already created",
			slog.String("registrationId", id.String()),
			slog.String("barracaId", barraca.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.store.AddBarraca(barraca)

	return barraca, nil
}

// Delete removes a registration.
func (s *registrationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.registrationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return domainerrors.ErrRegistrationNotFound
		}

		return errors.Wrap(err, "failed to delete registration")
	}

	return nil
}

// GetStats returns the per-status counts.
func (s *registrationService) GetStats(ctx context.Context) (*entity.RegistrationStats, error) {
	stats, err := s.registrationRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count registrations")
	}

	return stats, nil
}
