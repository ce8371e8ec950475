package handler

import (
	"log/slog"
	"net/http"
	"time"

	"coastal/internal/delivery/http/response"
	"coastal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatusHandlerParams holds dependencies for StatusHandler, injected by Fx.
type StatusHandlerParams struct {
	fx.In

	StatusUC usecase.StatusUsecase
	Logger   *slog.Logger
}

// StatusHandler holds dependencies for platform-status handlers
type StatusHandler struct {
	statusUC usecase.StatusUsecase
	logger   *slog.Logger
}

// NewStatusHandler is the constructor for StatusHandler
func NewStatusHandler(params StatusHandlerParams) *StatusHandler {
	return &StatusHandler{
		statusUC: params.StatusUC,
		logger:   params.Logger,
	}
}

// WeatherOverrideRequest toggles the platform-wide bad-weather flag, with an
// optional expiry after which the flag reads as off again
type WeatherOverrideRequest struct {
	Enabled   bool       `json:"enabled"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// GetWeather handles reading the bad-weather flag
func (h *StatusHandler) GetWeather(c echo.Context) error {
	enabled, err := h.statusUC.WeatherOverride(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"weatherOverride": enabled})
}

// SetWeather handles toggling the bad-weather flag
func (h *StatusHandler) SetWeather(c echo.Context) error {
	var req WeatherOverrideRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid weather override input")
	}

	if err := h.statusUC.SetWeatherOverride(c.Request().Context(), req.Enabled, req.ExpiresAt); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"weatherOverride": req.Enabled})
}
