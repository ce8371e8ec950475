package repository

import (
	"context"

	"coastal/internal/domain/entity"
	"coastal/internal/errors"
)

var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrSubscriptionExists is returned when the email is already subscribed.
	ErrSubscriptionExists = errors.New("subscription already exists")
)

// SubscriptionRepository defines the interface for email-subscription
// database operations.
type SubscriptionRepository interface {
	// Create persists a new subscription.
	Create(ctx context.Context, subscription *entity.EmailSubscription) error

	// FindByEmail retrieves a subscription by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.EmailSubscription, error)

	// ListActive returns all active subscriptions.
	ListActive(ctx context.Context) ([]*entity.EmailSubscription, error)

	// Deactivate marks the subscription carrying the token as inactive.
	Deactivate(ctx context.Context, unsubscribeToken string) error
}
