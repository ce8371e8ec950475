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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubscriptionService(t *testing.T) (*mockRepo.MockSubscriptionRepository, *store.Store, *subscriptionService) {
	t.Helper()

	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	st := store.New()
	svc := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: subscriptionRepo,
		Store:            st,
		Logger:           newDiscardLogger(),
	}).(*subscriptionService)

	return subscriptionRepo, st, svc
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	subscriptionRepo, _, svc := newSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.EmailSubscription")).
		Return(nil)

	subscription, err := svc.Subscribe(ctx, "  Praia@Example.COM ", nil)
	require.NoError(t, err)
	assert.Equal(t, "praia@example.com", subscription.Email)
	assert.True(t, subscription.IsActive)
	// Nil preferences opt in to every category.
	assert.True(t, subscription.Preferences.NewBarracas)
	assert.True(t, subscription.Preferences.SpecialOffers)
	assert.NotEmpty(t, subscription.UnsubscribeToken)
}

func TestSubscriptionService_Subscribe_ExplicitPreferences(t *testing.T) {
	subscriptionRepo, _, svc := newSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.EmailSubscription")).
		Return(nil)

	subscription, err := svc.Subscribe(ctx, "praia@example.com", &entity.SubscriptionPreferences{NewBarracas: true})
	require.NoError(t, err)
	assert.True(t, subscription.Preferences.NewBarracas)
	assert.False(t, subscription.Preferences.SpecialOffers)
}

func TestSubscriptionService_Subscribe_InvalidEmail(t *testing.T) {
	_, _, svc := newSubscriptionService(t)

	_, err := svc.Subscribe(context.Background(), "not-an-email", nil)
	assert.ErrorContains(t, err, "validation")
}

func TestSubscriptionService_Subscribe_Duplicate(t *testing.T) {
	subscriptionRepo, _, svc := newSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.EmailSubscription")).
		Return(repository.ErrSubscriptionExists)

	_, err := svc.Subscribe(ctx, "praia@example.com", nil)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionExists)
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	subscriptionRepo, _, svc := newSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().Deactivate(ctx, "token-123").Return(nil)

	assert.NoError(t, svc.Unsubscribe(ctx, "token-123"))
}

func TestSubscriptionService_Unsubscribe_UnknownToken(t *testing.T) {
	subscriptionRepo, _, svc := newSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().
		Deactivate(ctx, "missing").
		Return(repository.ErrSubscriptionNotFound)

	err := svc.Unsubscribe(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_Unsubscribe_EmptyToken(t *testing.T) {
	_, _, svc := newSubscriptionService(t)

	assert.Error(t, svc.Unsubscribe(context.Background(), ""))
}

func TestSubscriptionService_IsSubscribed(t *testing.T) {
	subscriptionRepo, _, svc := newSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().
		FindByEmail(ctx, "praia@example.com").
		Return(&entity.EmailSubscription{Email: "praia@example.com", IsActive: true}, nil)

	active, err := svc.IsSubscribed(ctx, "Praia@Example.com")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestSubscriptionService_IsSubscribed_NotFound(t *testing.T) {
	subscriptionRepo, _, svc := newSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrSubscriptionNotFound)

	active, err := svc.IsSubscribed(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestSubscriptionService_List_CachesResult(t *testing.T) {
	subscriptionRepo, st, svc := newSubscriptionService(t)
	ctx := context.Background()

	subscriptions := []*entity.EmailSubscription{
		{Email: "a@example.com", IsActive: true, SubscribedAt: time.Now()},
		{Email: "b@example.com", IsActive: true, SubscribedAt: time.Now()},
	}
	subscriptionRepo.EXPECT().ListActive(ctx).Return(subscriptions, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, st.Subscriptions(), 2)
}

func TestSubscriptionService_Count(t *testing.T) {
	subscriptionRepo, _, svc := newSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().
		ListActive(ctx).
		Return([]*entity.EmailSubscription{{Email: "a@example.com"}}, nil)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubscriptionService_Count_Error(t *testing.T) {
	subscriptionRepo, _, svc := newSubscriptionService(t)
	ctx := context.Background()

	subscriptionRepo.EXPECT().ListActive(ctx).Return(nil, errors.New("connection refused"))

	_, err := svc.Count(ctx)
	assert.Error(t, err)
}
