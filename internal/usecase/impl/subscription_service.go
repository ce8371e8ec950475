package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
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

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	store            *store.Store
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Store            *store.Store
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		store:            params.Store,
		logger:           params.Logger,
	}
}

// Subscribe registers an email address. Re-subscribing an address that is
// already active is a conflict; omitted preferences opt in to every category.
func (s *subscriptionService) Subscribe(ctx context.Context, email string, preferences *entity.SubscriptionPreferences) (*entity.EmailSubscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email address")
	}

	prefs := entity.SubscriptionPreferences{NewBarracas: true, SpecialOffers: true}
	if preferences != nil {
		prefs = *preferences
	}

	subscription := &entity.EmailSubscription{
		Email:            email,
		Preferences:      prefs,
		IsActive:         true,
		UnsubscribeToken: uuid.NewString(),
		SubscribedAt:     time.Now(),
	}

	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		if errors.Is(err, repository.ErrSubscriptionExists) {
			return nil, domainerrors.ErrSubscriptionExists
		}

		return nil, errors.Wrap(err, "failed to store subscription")
	}

	s.logger.Info("email subscribed", slog.String("email", email))

	return subscription, nil
}

// Unsubscribe deactivates the subscription carrying the token. The row is
// kept for auditability.
func (s *subscriptionService) Unsubscribe(ctx context.Context, unsubscribeToken string) error {
	if unsubscribeToken == "" {
		return domainerrors.ErrValidationFailed.WithDetails("unsubscribe token is required")
	}

	if err := s.subscriptionRepo.Deactivate(ctx, unsubscribeToken); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to deactivate subscription")
	}

	return nil
}

// IsSubscribed reports whether the email has an active subscription.
func (s *subscriptionService) IsSubscribed(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	subscription, err := s.subscriptionRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to look up subscription")
	}

	return subscription.IsActive, nil
}

// List returns all active subscriptions, newest first.
func (s *subscriptionService) List(ctx context.Context) ([]*entity.EmailSubscription, error) {
	subscriptions, err := s.subscriptionRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	s.store.SetSubscriptions(subscriptions)

	return subscriptions, nil
}

// Count returns the number of active subscriptions.
func (s *subscriptionService) Count(ctx context.Context) (int64, error) {
	subscriptions, err := s.subscriptionRepo.ListActive(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count subscriptions")
	}

	return int64(len(subscriptions)), nil
}
