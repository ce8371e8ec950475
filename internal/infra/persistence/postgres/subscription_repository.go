package postgres

import (
	"context"

	"coastal/internal/domain/entity"
	"coastal/internal/domain/repository"
	"coastal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create persists a new subscription.
func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.EmailSubscription) error {
	subscriptionM := fromEmailSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSubscriptionExists
		}

		return errors.Wrap(err, "failed to create subscription")
	}

	subscription.SubscribedAt = subscriptionM.SubscribedAt

	return nil
}

// FindByEmail retrieves a subscription by its email address.
func (repo *subscriptionRepository) FindByEmail(ctx context.Context, email string) (*entity.EmailSubscription, error) {
	var subscriptionM model.EmailSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by email")
	}

	return toEmailSubscriptionDomain(&subscriptionM), nil
}

// ListActive returns all active subscriptions.
func (repo *subscriptionRepository) ListActive(ctx context.Context) ([]*entity.EmailSubscription, error) {
	var subscriptionModels []*model.EmailSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("subscribed_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active subscriptions")
	}

	subscriptions := make([]*entity.EmailSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toEmailSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// Deactivate marks the subscription carrying the token as inactive.
func (repo *subscriptionRepository) Deactivate(ctx context.Context, unsubscribeToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmailSubscriptionModel{}).
		Where("unsubscribe_token = ?", unsubscribeToken).
		Update("is_active", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate subscription")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// toEmailSubscriptionDomain converts a GORM EmailSubscriptionModel to a domain entity.
func toEmailSubscriptionDomain(data *model.EmailSubscriptionModel) *entity.EmailSubscription {
	if data == nil {
		return nil
	}

	return &entity.EmailSubscription{
		Email: data.Email,
		Preferences: entity.SubscriptionPreferences{
			NewBarracas:   data.NewBarracas,
			SpecialOffers: data.SpecialOffers,
		},
		IsActive:         data.IsActive,
		UnsubscribeToken: data.UnsubscribeToken,
		SubscribedAt:     data.SubscribedAt,
	}
}

// fromEmailSubscriptionDomain converts a domain entity to a GORM EmailSubscriptionModel.
func fromEmailSubscriptionDomain(data *entity.EmailSubscription) *model.EmailSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.EmailSubscriptionModel{
		Email:            data.Email,
		NewBarracas:      data.Preferences.NewBarracas,
		SpecialOffers:    data.Preferences.SpecialOffers,
		IsActive:         data.IsActive,
		UnsubscribeToken: data.UnsubscribeToken,
		SubscribedAt:     data.SubscribedAt,
	}
}
