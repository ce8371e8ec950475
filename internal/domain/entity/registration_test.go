package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationStatus_IsValid(t *testing.T) {
	assert.True(t, RegistrationPending.IsValid())
	assert.True(t, RegistrationApproved.IsValid())
	assert.True(t, RegistrationRejected.IsValid())
	assert.False(t, RegistrationStatus("converted").IsValid())
}

func TestRegistrationStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, RegistrationPending.CanTransitionTo(RegistrationApproved))
	assert.True(t, RegistrationPending.CanTransitionTo(RegistrationRejected))
	assert.False(t, RegistrationPending.CanTransitionTo(RegistrationPending))
	assert.False(t, RegistrationApproved.CanTransitionTo(RegistrationRejected))
	assert.False(t, RegistrationRejected.CanTransitionTo(RegistrationApproved))
}

func TestToBarracaDraft_FieldMapping(t *testing.T) {
	reg := &BarracaRegistration{
		ID:            uuid.New(),
		Name:          "Barraca da Gávea",
		OwnerName:     "Maria",
		BarracaNumber: "42",
		Location:      "Leblon",
		Coordinates:   Coordinates{Lat: -22.98, Lng: -43.22},
		TypicalHours:  "9h-17h",
		Description:   "Chairs, umbrellas and caipirinhas",
		NearestPosto:  "Posto 11",
		Contact: Contact{
			Phone:     "+55 21 99999-0000",
			Email:     "maria@example.com",
			Instagram: "barracadagavea",
		},
		Amenities:           []string{"chairs", "umbrellas"},
		Environment:         []string{"family_friendly"},
		WeekendHoursEnabled: true,
		WeekendHours: &WeekendHours{
			Friday:   DayHours{Open: "09:00", Close: "18:00"},
			Saturday: DayHours{Open: "08:00", Close: "19:00"},
			Sunday:   DayHours{Open: "08:00", Close: "19:00"},
		},
		Status: RegistrationApproved,
	}

	draft := reg.ToBarracaDraft()
	require.NotNil(t, draft)

	// Descriptive, contact and amenity fields carry over verbatim.
	assert.Equal(t, reg.Name, draft.Name)
	assert.Equal(t, reg.BarracaNumber, draft.BarracaNumber)
	assert.Equal(t, reg.Location, draft.Location)
	assert.Equal(t, reg.Coordinates, draft.Coordinates)
	assert.Equal(t, reg.TypicalHours, draft.TypicalHours)
	assert.Equal(t, reg.Description, draft.Description)
	assert.Equal(t, reg.NearestPosto, draft.NearestPosto)
	assert.Equal(t, reg.Contact, draft.Contact)
	assert.Equal(t, reg.Amenities, draft.Amenities)
	assert.Equal(t, reg.Environment, draft.Environment)
	assert.True(t, draft.WeekendHoursEnabled)
	assert.Equal(t, reg.WeekendHours, draft.WeekendHours)

	// Fixed defaults for a freshly converted listing.
	assert.Empty(t, draft.ID)
	assert.True(t, draft.IsOpen)
	assert.False(t, draft.Partnered)
	assert.False(t, draft.WeatherDependent)
	assert.Equal(t, ManualStatusUndefined, draft.ManualStatus)
	assert.False(t, draft.SpecialAdminOverride)
	assert.Nil(t, draft.SpecialAdminOverrideExpires)
	assert.Zero(t, draft.Rating)
	assert.Empty(t, draft.Photos.Horizontal)
	assert.Empty(t, draft.Photos.Vertical)
	assert.Empty(t, draft.MenuPreview)
	assert.Empty(t, draft.CTAButtons)
}

func TestToBarracaDraft_CopiesSlices(t *testing.T) {
	reg := &BarracaRegistration{Amenities: []string{"chairs"}}

	draft := reg.ToBarracaDraft()
	draft.Amenities[0] = "changed"

	assert.Equal(t, "chairs", reg.Amenities[0])
}
