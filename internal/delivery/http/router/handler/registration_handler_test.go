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

func newRegistrationHandler(t *testing.T) (*mockUC.MockRegistrationUsecase, *RegistrationHandler) {
	t.Helper()

	registrationUC := mockUC.NewMockRegistrationUsecase(t)
	h := NewRegistrationHandler(RegistrationHandlerParams{
		RegistrationUC: registrationUC,
		Logger:         newDiscardLogger(),
	})

	return registrationUC, h
}

func TestRegistrationHandler_Submit(t *testing.T) {
	registrationUC, h := newRegistrationHandler(t)
	e := newTestEcho()

	registrationUC.EXPECT().
		Submit(mock.Anything, mock.MatchedBy(func(registration *entity.BarracaRegistration) bool {
			return registration.Name == "Barraca do Sol" && registration.OwnerName == "Maria"
		})).
		Return(&entity.BarracaRegistration{
			ID:     uuid.New(),
			Name:   "Barraca do Sol",
			Status: entity.RegistrationPending,
		}, nil)

	body := `{"name":"Barraca do Sol","ownerName":"Maria","location":"Posto 9"}`
	c, rec := newJSONContext(t, e, http.MethodPost, "/api/registrations", body)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending")
}

func TestRegistrationHandler_List(t *testing.T) {
	registrationUC, h := newRegistrationHandler(t)
	e := newTestEcho()

	registrationUC.EXPECT().
		List(mock.Anything, 2, 5, entity.RegistrationPending).
		Return(&usecase.RegistrationList{
			Registrations: []*entity.BarracaRegistration{{
				ID:     uuid.New(),
				Name:   "Barraca do Sol",
				Status: entity.RegistrationPending,
			}},
			Total:    11,
			Page:     2,
			PageSize: 5,
		}, nil)

	c, rec := newJSONContext(t, e, http.MethodGet, "/admin/registrations?page=2&pageSize=5&status=pending", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":11`)
	assert.Contains(t, rec.Body.String(), "Barraca do Sol")
}

func TestRegistrationHandler_Review(t *testing.T) {
	registrationUC, h := newRegistrationHandler(t)
	e := newTestEcho()

	id := uuid.New()
	registrationUC.EXPECT().
		UpdateStatus(mock.Anything, id, entity.RegistrationApproved, "admin@example.com", "ok").
		Return(nil)

	c, rec := newJSONContext(t, e, http.MethodPut, "/admin/registrations/"+id.String()+"/status", `{"status":"approved","notes":"ok"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	c.Set("session", &entity.Session{Email: "admin@example.com", Role: entity.RoleAdmin})

	require.NoError(t, h.Review(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegistrationHandler_Review_InvalidStatus(t *testing.T) {
	_, h := newRegistrationHandler(t)
	e := newTestEcho()

	id := uuid.New()
	c, rec := newJSONContext(t, e, http.MethodPut, "/admin/registrations/"+id.String()+"/status", `{"status":"pending"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Review(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegistrationHandler_Convert(t *testing.T) {
	registrationUC, h := newRegistrationHandler(t)
	e := newTestEcho()

	id := uuid.New()
	registrationUC.EXPECT().
		ConvertToBarraca(mock.Anything, id, "admin@example.com").
		Return(&entity.Barraca{ID: entity.BarracaID(uuid.NewString()), Name: "Barraca do Sol"}, nil)

	c, rec := newJSONContext(t, e, http.MethodPost, "/admin/registrations/"+id.String()+"/convert", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	c.Set("session", &entity.Session{Email: "admin@example.com", Role: entity.RoleAdmin})

	require.NoError(t, h.Convert(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegistrationHandler_Convert_NotApproved(t *testing.T) {
	registrationUC, h := newRegistrationHandler(t)
	e := newTestEcho()

	id := uuid.New()
	registrationUC.EXPECT().
		ConvertToBarraca(mock.Anything, id, "admin@example.com").
		Return(nil, domainerrors.ErrRegistrationNotApproved)

	c, rec := newJSONContext(t, e, http.MethodPost, "/admin/registrations/"+id.String()+"/convert", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	c.Set("session", &entity.Session{Email: "admin@example.com", Role: entity.RoleAdmin})

	require.NoError(t, h.Convert(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegistrationHandler_Get_BadID(t *testing.T) {
	_, h := newRegistrationHandler(t)
	e := newTestEcho()

	c, rec := newJSONContext(t, e, http.MethodGet, "/admin/registrations/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}
