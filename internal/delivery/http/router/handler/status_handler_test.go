package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "coastal/internal/domain/errors"
	mockUC "coastal/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatusHandler(t *testing.T) (*mockUC.MockStatusUsecase, *StatusHandler) {
	t.Helper()

	statusUC := mockUC.NewMockStatusUsecase(t)
	h := NewStatusHandler(StatusHandlerParams{
		StatusUC: statusUC,
		Logger:   newDiscardLogger(),
	})

	return statusUC, h
}

func TestStatusHandler_GetWeather(t *testing.T) {
	statusUC, h := newStatusHandler(t)
	statusUC.EXPECT().
		WeatherOverride(mock.Anything).
		Return(true, nil)

	e := newTestEcho()
	c, rec := newJSONContext(t, e, http.MethodGet, "/api/status/weather", "")

	require.NoError(t, h.GetWeather(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"weatherOverride":true`)
}

func TestStatusHandler_SetWeather(t *testing.T) {
	statusUC, h := newStatusHandler(t)
	statusUC.EXPECT().
		SetWeatherOverride(mock.Anything, true, (*time.Time)(nil)).
		Return(nil)

	e := newTestEcho()
	c, rec := newJSONContext(t, e, http.MethodPut, "/admin/status/weather", `{"enabled":true}`)

	require.NoError(t, h.SetWeather(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"weatherOverride":true`)
}

func TestStatusHandler_SetWeather_WithExpiry(t *testing.T) {
	statusUC, h := newStatusHandler(t)
	expiresAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	statusUC.EXPECT().
		SetWeatherOverride(mock.Anything, true, &expiresAt).
		Return(nil)

	e := newTestEcho()
	body := `{"enabled":true,"expiresAt":"2026-09-01T12:00:00Z"}`
	c, rec := newJSONContext(t, e, http.MethodPut, "/admin/status/weather", body)

	require.NoError(t, h.SetWeather(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusHandler_SetWeather_PersistFailure(t *testing.T) {
	statusUC, h := newStatusHandler(t)
	statusUC.EXPECT().
		SetWeatherOverride(mock.Anything, false, (*time.Time)(nil)).
		Return(domainerrors.ErrInternalError)

	e := newTestEcho()
	c, rec := newJSONContext(t, e, http.MethodPut, "/admin/status/weather", `{"enabled":false}`)

	require.NoError(t, h.SetWeather(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
