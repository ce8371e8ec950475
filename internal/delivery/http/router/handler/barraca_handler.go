package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"coastal/internal/delivery/http/response"
	"coastal/internal/domain/entity"
	"coastal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BarracaHandlerParams holds dependencies for BarracaHandler, injected by Fx.
type BarracaHandlerParams struct {
	fx.In

	BarracaUC usecase.BarracaUsecase
	Logger    *slog.Logger
}

// BarracaHandler holds dependencies for barraca-related handlers
type BarracaHandler struct {
	barracaUC usecase.BarracaUsecase
	logger    *slog.Logger
}

// NewBarracaHandler is the constructor for BarracaHandler
func NewBarracaHandler(params BarracaHandlerParams) *BarracaHandler {
	return &BarracaHandler{
		barracaUC: params.BarracaUC,
		logger:    params.Logger,
	}
}

// UpdateBarracaRequest is the partial-update body. Only fields present in the
// JSON are applied.
type UpdateBarracaRequest struct {
	Name          *string             `json:"name,omitempty"`
	BarracaNumber *string             `json:"barracaNumber,omitempty"`
	Location      *string             `json:"location,omitempty"`
	Coordinates   *entity.Coordinates `json:"coordinates,omitempty"`
	TypicalHours  *string             `json:"typicalHours,omitempty"`
	Description   *string             `json:"description,omitempty"`
	NearestPosto  *string             `json:"nearestPosto,omitempty"`

	Photos      *entity.BarracaPhotos `json:"photos,omitempty"`
	MenuPreview *[]string             `json:"menuPreview,omitempty"`
	Contact     *entity.Contact       `json:"contact,omitempty"`
	Amenities   *[]string             `json:"amenities,omitempty"`
	Environment *[]string             `json:"environment,omitempty"`

	WeatherDependent *bool `json:"weatherDependent,omitempty"`
	Partnered        *bool `json:"partnered,omitempty"`

	WeekendHoursEnabled *bool                `json:"weekendHoursEnabled,omitempty"`
	WeekendHours        *entity.WeekendHours `json:"weekendHours,omitempty"`

	Rating     *int                      `json:"rating,omitempty" validate:"omitempty,min=0,max=3"`
	CTAButtons *[]entity.CTAButtonConfig `json:"ctaButtons,omitempty"`
}

func (r *UpdateBarracaRequest) toUpdate() *entity.BarracaUpdate {
	return &entity.BarracaUpdate{
		Name:                r.Name,
		BarracaNumber:       r.BarracaNumber,
		Location:            r.Location,
		Coordinates:         r.Coordinates,
		TypicalHours:        r.TypicalHours,
		Description:         r.Description,
		NearestPosto:        r.NearestPosto,
		Photos:              r.Photos,
		MenuPreview:         r.MenuPreview,
		Contact:             r.Contact,
		Amenities:           r.Amenities,
		Environment:         r.Environment,
		WeatherDependent:    r.WeatherDependent,
		Partnered:           r.Partnered,
		WeekendHoursEnabled: r.WeekendHoursEnabled,
		WeekendHours:        r.WeekendHours,
		Rating:              r.Rating,
		CTAButtons:          r.CTAButtons,
	}
}

// SetManualStatusRequest sets the admin-chosen status of a non-partnered barraca.
type SetManualStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open closed undefined"`
}

// OverrideRequest is the force-open body for the quick-toggle panel.
type OverrideRequest struct {
	DurationHours float64 `json:"durationHours" validate:"required,gt=0,lte=24"`
}

// List handles the public directory listing
func (h *BarracaHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	filters := usecase.BarracaFilters{
		Query:  c.QueryParam("q"),
		Status: c.QueryParam("status"),
	}
	if locations := c.QueryParam("locations"); locations != "" {
		filters.Locations = strings.Split(locations, ",")
	}
	if rating := c.QueryParam("rating"); rating != "" {
		value, err := strconv.Atoi(rating)
		if err != nil || value < 1 || value > 3 {
			return response.BadRequest(c, "INVALID_RATING", "Rating filter must be between 1 and 3")
		}
		filters.Rating = value
	}

	list, err := h.barracaUC.List(c.Request().Context(), page, pageSize, filters)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// Get handles retrieving a single barraca
func (h *BarracaHandler) Get(c echo.Context) error {
	view, err := h.barracaUC.GetByID(c.Request().Context(), entity.BarracaID(c.Param("id")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Create handles creating a new barraca
func (h *BarracaHandler) Create(c echo.Context) error {
	var barraca entity.Barraca
	if err := c.Bind(&barraca); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid barraca input")
	}

	view, err := h.barracaUC.Create(c.Request().Context(), &barraca)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// Update handles partially updating a barraca
func (h *BarracaHandler) Update(c echo.Context) error {
	var req UpdateBarracaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid barraca input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.barracaUC.Update(c.Request().Context(), entity.BarracaID(c.Param("id")), req.toUpdate())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Delete handles removing a barraca
func (h *BarracaHandler) Delete(c echo.Context) error {
	if err := h.barracaUC.Delete(c.Request().Context(), entity.BarracaID(c.Param("id"))); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Barraca deleted"})
}

// SetManualStatus handles setting the manual status of a non-partnered barraca
func (h *BarracaHandler) SetManualStatus(c echo.Context) error {
	var req SetManualStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.barracaUC.SetManualStatus(c.Request().Context(), entity.BarracaID(c.Param("id")), entity.ManualStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Status updated"})
}

// Override handles force-opening a barraca for a limited duration
func (h *BarracaHandler) Override(c echo.Context) error {
	var req OverrideRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid override input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.barracaUC.SpecialAdminOpen(c.Request().Context(), entity.BarracaID(c.Param("id")), req.DurationHours)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Barraca forced open"})
}

// ClearOverride handles clearing an active forced-open override
func (h *BarracaHandler) ClearOverride(c echo.Context) error {
	err := h.barracaUC.SpecialAdminClose(c.Request().Context(), entity.BarracaID(c.Param("id")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Override cleared"})
}

// ListOverrides handles listing the active forced-open overrides
func (h *BarracaHandler) ListOverrides(c echo.Context) error {
	overrides, err := h.barracaUC.ListSpecialOverrides(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overrides)
}

// ListManualStatus handles listing every barraca with a hand-pinned status
func (h *BarracaHandler) ListManualStatus(c echo.Context) error {
	entries, err := h.barracaUC.ListManualStatus(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}
