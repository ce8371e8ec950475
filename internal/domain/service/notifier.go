package service

import (
	"context"

	"coastal/internal/domain/entity"
)

// RegistrationNotifier delivers moderation alerts when a new registration
// arrives. Delivery failures are logged, never surfaced to the submitter.
type RegistrationNotifier interface {
	// NotifyNewRegistration announces a freshly submitted registration.
	NotifyNewRegistration(ctx context.Context, registration *entity.BarracaRegistration) error
}
