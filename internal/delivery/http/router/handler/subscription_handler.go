package handler

import (
	"log/slog"
	"net/http"

	"coastal/internal/delivery/http/response"
	"coastal/internal/domain/entity"
	"coastal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SubscribeRequest represents the request body for a newsletter signup
type SubscribeRequest struct {
	Email       string                          `json:"email" validate:"required,email"`
	Preferences *entity.SubscriptionPreferences `json:"preferences,omitempty"`
}

// UnsubscribeRequest carries the opaque unsubscribe token
type UnsubscribeRequest struct {
	Token string `json:"token" validate:"required"`
}

// Subscribe handles a public newsletter signup
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscription, err := h.subscriptionUC.Subscribe(c.Request().Context(), req.Email, req.Preferences)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription)
}

// Check reports whether an email already has an active subscription, so the
// signup form can short-circuit before submitting
func (h *SubscriptionHandler) Check(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "email query parameter is required")
	}

	subscribed, err := h.subscriptionUC.IsSubscribed(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"subscribed": subscribed})
}

// Unsubscribe handles deactivating a subscription by token
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unsubscribe input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unsubscribed"})
}

// List handles listing active subscriptions for the admin dashboard
func (h *SubscriptionHandler) List(c echo.Context) error {
	subscriptions, err := h.subscriptionUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriptions)
}

// Count handles the active subscription count
func (h *SubscriptionHandler) Count(c echo.Context) error {
	count, err := h.subscriptionUC.Count(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count})
}
