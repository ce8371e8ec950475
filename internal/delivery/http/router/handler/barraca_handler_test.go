package handler

import (
	"net/http"
	"testing"

	"coastal/internal/domain/entity"
	domainerrors "coastal/internal/domain/errors"
	mockUC "coastal/internal/mocks/usecase"
	"coastal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBarracaHandler(t *testing.T) (*mockUC.MockBarracaUsecase, *BarracaHandler) {
	t.Helper()

	barracaUC := mockUC.NewMockBarracaUsecase(t)
	h := NewBarracaHandler(BarracaHandlerParams{
		BarracaUC: barracaUC,
		Logger:    newDiscardLogger(),
	})

	return barracaUC, h
}

func TestBarracaHandler_List(t *testing.T) {
	barracaUC, h := newBarracaHandler(t)
	e := newTestEcho()

	barraca := &entity.Barraca{
		ID:        entity.BarracaID(uuid.NewString()),
		Name:      "Barraca do Sol",
		Location:  "Ipanema",
		Partnered: true,
		IsOpen:    true,
	}
	barracaUC.EXPECT().
		List(mock.Anything, 2, 10, usecase.BarracaFilters{
			Query:     "sol",
			Locations: []string{"Ipanema", "Leblon"},
			Status:    "open",
		}).
		Return(&usecase.BarracaList{
			Barracas: []*usecase.BarracaView{{Barraca: barraca, Status: entity.StatusOpen}},
			Total:    1,
			Page:     2,
			PageSize: 10,
		}, nil)

	c, rec := newJSONContext(t, e, http.MethodGet, "/api/barracas?page=2&pageSize=10&q=sol&locations=Ipanema,Leblon&status=open", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Barraca do Sol")
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestBarracaHandler_List_InvalidRating(t *testing.T) {
	_, h := newBarracaHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(t, e, http.MethodGet, "/api/barracas?rating=9", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_RATING")
}

func TestBarracaHandler_Get_NotFound(t *testing.T) {
	barracaUC, h := newBarracaHandler(t)
	e := newTestEcho()

	barracaUC.EXPECT().
		GetByID(mock.Anything, entity.BarracaID("missing")).
		Return(nil, domainerrors.ErrBarracaNotFound)

	c, rec := newJSONContext(t, e, http.MethodGet, "/api/barracas/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "BARRACA_NOT_FOUND")
}

func TestBarracaHandler_SetManualStatus(t *testing.T) {
	barracaUC, h := newBarracaHandler(t)
	e := newTestEcho()

	id := uuid.NewString()
	barracaUC.EXPECT().
		SetManualStatus(mock.Anything, entity.BarracaID(id), entity.ManualStatusClosed).
		Return(nil)

	c, rec := newJSONContext(t, e, http.MethodPut, "/toggle/barracas/"+id+"/status", `{"status":"closed"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, h.SetManualStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBarracaHandler_SetManualStatus_UnknownValue(t *testing.T) {
	_, h := newBarracaHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(t, e, http.MethodPut, "/toggle/barracas/abc/status", `{"status":"snoozing"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.SetManualStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestBarracaHandler_ListManualStatus(t *testing.T) {
	barracaUC, h := newBarracaHandler(t)
	e := newTestEcho()

	barracaUC.EXPECT().
		ListManualStatus(mock.Anything).
		Return([]*entity.ManualStatusEntry{{
			BarracaID:    entity.BarracaID(uuid.NewString()),
			BarracaName:  "Barraca da Lua",
			Location:     "Ipanema",
			ManualStatus: entity.ManualStatusClosed,
		}}, nil)

	c, rec := newJSONContext(t, e, http.MethodGet, "/toggle/manual-status", "")

	require.NoError(t, h.ListManualStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Barraca da Lua")
	assert.Contains(t, rec.Body.String(), `"manualStatus":"closed"`)
}

func TestBarracaHandler_Override_DurationBounds(t *testing.T) {
	_, h := newBarracaHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(t, e, http.MethodPost, "/toggle/barracas/abc/override", `{"durationHours":30}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.Override(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBarracaHandler_Update_PartialBody(t *testing.T) {
	barracaUC, h := newBarracaHandler(t)
	e := newTestEcho()

	id := uuid.NewString()
	updated := &entity.Barraca{ID: entity.BarracaID(id), Name: "Novo Nome"}
	barracaUC.EXPECT().
		Update(mock.Anything, entity.BarracaID(id), mock.MatchedBy(func(update *entity.BarracaUpdate) bool {
			return update.Name != nil && *update.Name == "Novo Nome" && update.Location == nil
		})).
		Return(&usecase.BarracaView{Barraca: updated, Status: entity.StatusUndetermined}, nil)

	c, rec := newJSONContext(t, e, http.MethodPut, "/admin/barracas/"+id, `{"name":"Novo Nome"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Novo Nome")
}
