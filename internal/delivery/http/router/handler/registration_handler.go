package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"coastal/internal/delivery/http/middleware"
	"coastal/internal/delivery/http/response"
	"coastal/internal/domain/entity"
	"coastal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	Logger         *slog.Logger
}

// RegistrationHandler holds dependencies for registration-related handlers
type RegistrationHandler struct {
	registrationUC usecase.RegistrationUsecase
	logger         *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUC: params.RegistrationUC,
		logger:         params.Logger,
	}
}

// ReviewRequest is the approve/reject body for a pending registration.
type ReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
	Notes  string `json:"notes,omitempty"`
}

// Submit handles a public vendor registration submission
func (h *RegistrationHandler) Submit(c echo.Context) error {
	var registration entity.BarracaRegistration
	if err := c.Bind(&registration); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	created, err := h.registrationUC.Submit(c.Request().Context(), &registration)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

// List handles listing one page of registrations, optionally filtered by status
func (h *RegistrationHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	list, err := h.registrationUC.List(c.Request().Context(), page, pageSize, entity.RegistrationStatus(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// Get handles retrieving a single registration
func (h *RegistrationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid registration ID")
	}

	registration, err := h.registrationUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, registration)
}

// Review handles approving or rejecting a pending registration
func (h *RegistrationHandler) Review(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid registration ID")
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_MISSING", "Session information missing")
	}

	err = h.registrationUC.UpdateStatus(c.Request().Context(), id, entity.RegistrationStatus(req.Status), session.Email, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Registration reviewed"})
}

// Convert handles converting an approved registration into a barraca
func (h *RegistrationHandler) Convert(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid registration ID")
	}

	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_MISSING", "Session information missing")
	}

	barraca, err := h.registrationUC.ConvertToBarraca(c.Request().Context(), id, session.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, barraca)
}

// Delete handles removing a registration
func (h *RegistrationHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid registration ID")
	}

	if err := h.registrationUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Registration deleted"})
}

// Stats handles the per-status registration counts
func (h *RegistrationHandler) Stats(c echo.Context) error {
	stats, err := h.registrationUC.GetStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
