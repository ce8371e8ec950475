package usecase

import (
	"context"

	"coastal/internal/domain/entity"
)

// SubscriptionUsecase defines the interface for email-subscription use cases
type SubscriptionUsecase interface {
	// Subscribe registers an email address. Nil preferences default to
	// new-barraca announcements only.
	Subscribe(ctx context.Context, email string, preferences *entity.SubscriptionPreferences) (*entity.EmailSubscription, error)

	// Unsubscribe deactivates the subscription carrying the token.
	Unsubscribe(ctx context.Context, unsubscribeToken string) error

	// IsSubscribed reports whether the email has an active subscription.
	IsSubscribed(ctx context.Context, email string) (bool, error)

	// List returns all active subscriptions, newest first.
	List(ctx context.Context) ([]*entity.EmailSubscription, error)

	// Count returns the number of active subscriptions.
	Count(ctx context.Context) (int64, error)
}
