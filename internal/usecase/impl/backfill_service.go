package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"coastal/internal/domain/repository"
	"coastal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type backfillService struct {
	barracaRepo      repository.BarracaRepository
	registrationRepo repository.RegistrationRepository
	logger           *slog.Logger
}

// BackfillServiceParams holds dependencies for BackfillService, injected by Fx.
type BackfillServiceParams struct {
	fx.In

	BarracaRepo      repository.BarracaRepository
	RegistrationRepo repository.RegistrationRepository
	Logger           *slog.Logger
}

// NewBackfillService creates a new backfill service instance
func NewBackfillService(params BackfillServiceParams) usecase.BackfillUsecase {
	return &backfillService{
		barracaRepo:      params.BarracaRepo,
		registrationRepo: params.RegistrationRepo,
		logger:           params.Logger,
	}
}

// Run matches barracas without an Instagram handle against registration
// contact data by normalized name. The job is idempotent: handles already
// set are never touched, and a dry run performs no writes at all. Per-row
// write failures are collected and the run keeps going.
func (s *backfillService) Run(ctx context.Context, apply bool) (*usecase.BackfillReport, error) {
	barracas, err := s.barracaRepo.ListContacts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load barraca contacts")
	}

	// Unpaged: the backfill wants every registration's Instagram handle.
	registrations, _, err := s.registrationRepo.List(ctx, "", 1, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load registrations")
	}

	handles := make(map[string]string)
	for _, registration := range registrations {
		handle := strings.TrimSpace(registration.Contact.Instagram)
		if handle == "" {
			continue
		}

		key := normalizeName(registration.Name)
		if existing, ok := handles[key]; ok && existing != handle {
			s.logger.Warn("conflicting handles for registration name, keeping first",
				slog.String("name", registration.Name),
			)

			continue
		}
		handles[key] = handle
	}

	report := &usecase.BackfillReport{DryRun: !apply}
	for _, barraca := range barracas {
		report.Scanned++

		if barraca.Contact.HasInstagram() {
			report.AlreadySet++

			continue
		}

		handle, ok := handles[normalizeName(barraca.Name)]
		if !ok {
			report.Unmatched++

			continue
		}
		report.Matched++

		s.logger.Info("matched barraca to registration handle",
			slog.String("barracaId", barraca.ID.String()),
			slog.String("name", barraca.Name),
			slog.String("instagram", handle),
			slog.Bool("dryRun", !apply),
		)

		if !apply {
			continue
		}

		contact := barraca.Contact
		contact.Instagram = handle
		if err := s.barracaRepo.UpdateContact(ctx, barraca.ID, contact); err != nil {
			report.Errors = append(report.Errors,
				fmt.Sprintf("%s: %v", barraca.ID.String(), err))

			continue
		}
		report.Updated++
	}

	return report, nil
}

// normalizeName folds case and surrounding whitespace for name matching.
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
