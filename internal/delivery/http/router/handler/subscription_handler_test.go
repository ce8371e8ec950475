package handler

import (
	"net/http"
	"testing"
	"time"

	"coastal/internal/domain/entity"
	domainerrors "coastal/internal/domain/errors"
	mockUC "coastal/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubscriptionHandler(t *testing.T) (*mockUC.MockSubscriptionUsecase, *SubscriptionHandler) {
	t.Helper()

	subscriptionUC := mockUC.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{
		SubscriptionUC: subscriptionUC,
		Logger:         newDiscardLogger(),
	})

	return subscriptionUC, h
}

func TestSubscriptionHandler_Subscribe(t *testing.T) {
	subscriptionUC, h := newSubscriptionHandler(t)
	subscriptionUC.EXPECT().
		Subscribe(mock.Anything, "praia@example.com", &entity.SubscriptionPreferences{NewBarracas: true}).
		Return(&entity.EmailSubscription{
			Email:        "praia@example.com",
			SubscribedAt: time.Now(),
			Preferences:  entity.SubscriptionPreferences{NewBarracas: true},
			IsActive:     true,
		}, nil)

	e := newTestEcho()
	body := `{"email":"praia@example.com","preferences":{"newBarracas":true}}`
	c, rec := newJSONContext(t, e, http.MethodPost, "/api/subscriptions", body)

	require.NoError(t, h.Subscribe(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "praia@example.com")
}

func TestSubscriptionHandler_Subscribe_MissingEmail(t *testing.T) {
	_, h := newSubscriptionHandler(t)

	e := newTestEcho()
	c, rec := newJSONContext(t, e, http.MethodPost, "/api/subscriptions", `{"email":""}`)

	require.NoError(t, h.Subscribe(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestSubscriptionHandler_Subscribe_Duplicate(t *testing.T) {
	subscriptionUC, h := newSubscriptionHandler(t)
	subscriptionUC.EXPECT().
		Subscribe(mock.Anything, "praia@example.com", (*entity.SubscriptionPreferences)(nil)).
		Return(nil, domainerrors.ErrSubscriptionExists)

	e := newTestEcho()
	c, rec := newJSONContext(t, e, http.MethodPost, "/api/subscriptions", `{"email":"praia@example.com"}`)

	require.NoError(t, h.Subscribe(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubscriptionHandler_Check(t *testing.T) {
	subscriptionUC, h := newSubscriptionHandler(t)
	subscriptionUC.EXPECT().
		IsSubscribed(mock.Anything, "praia@example.com").
		Return(true, nil)

	e := newTestEcho()
	c, rec := newJSONContext(t, e, http.MethodGet, "/api/subscriptions/check?email=praia%40example.com", "")

	require.NoError(t, h.Check(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subscribed":true`)
}

func TestSubscriptionHandler_Check_MissingEmail(t *testing.T) {
	_, h := newSubscriptionHandler(t)

	e := newTestEcho()
	c, rec := newJSONContext(t, e, http.MethodGet, "/api/subscriptions/check", "")

	require.NoError(t, h.Check(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscriptionHandler_Unsubscribe(t *testing.T) {
	subscriptionUC, h := newSubscriptionHandler(t)
	subscriptionUC.EXPECT().
		Unsubscribe(mock.Anything, "opaque-token").
		Return(nil)

	e := newTestEcho()
	c, rec := newJSONContext(t, e, http.MethodPost, "/api/subscriptions/unsubscribe", `{"token":"opaque-token"}`)

	require.NoError(t, h.Unsubscribe(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unsubscribed")
}

func TestSubscriptionHandler_Unsubscribe_MissingToken(t *testing.T) {
	_, h := newSubscriptionHandler(t)

	e := newTestEcho()
	c, rec := newJSONContext(t, e, http.MethodPost, "/api/subscriptions/unsubscribe", `{}`)

	require.NoError(t, h.Unsubscribe(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscriptionHandler_Count(t *testing.T) {
	subscriptionUC, h := newSubscriptionHandler(t)
	subscriptionUC.EXPECT().
		Count(mock.Anything).
		Return(int64(42), nil)

	e := newTestEcho()
	c, rec := newJSONContext(t, e, http.MethodGet, "/admin/subscriptions/count", "")

	require.NoError(t, h.Count(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":42`)
}
