package handler

import (
	"log/slog"
	"net/http"
	"time"

	"coastal/internal/delivery/http/middleware"
	"coastal/internal/delivery/http/response"
	"coastal/internal/domain/entity"
	"coastal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler holds dependencies for session-related handlers
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// LoginRequest represents the request body for admin login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token; the session entity itself never
// serializes it.
type LoginResponse struct {
	Token     string      `json:"token"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Login handles admin login
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.sessionUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Token:     session.Token,
		Email:     session.Email,
		Role:      session.Role,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles closing the current session
func (h *SessionHandler) Logout(c echo.Context) error {
	token, ok := middleware.GetSessionToken(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_MISSING", "Session information missing")
	}

	if err := h.sessionUC.Logout(c.Request().Context(), token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me returns the authenticated session
func (h *SessionHandler) Me(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_MISSING", "Session information missing")
	}

	return response.Success(c, http.StatusOK, session)
}
