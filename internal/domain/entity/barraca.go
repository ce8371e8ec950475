// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BarracaID is the identifier of a barraca. Canonical ids are UUIDs, but a
// handful of legacy rows carry free-form ids; those must never be routed into
// the time-schedule procedures, which assert a uuid-typed argument.
type BarracaID string

// IsCanonical reports whether the id is a well-formed UUID.
func (id BarracaID) IsCanonical() bool {
	_, err := uuid.Parse(string(id))

	return err == nil
}

// UUID parses the id into a uuid.UUID. It fails for legacy ids.
func (id BarracaID) UUID() (uuid.UUID, error) {
	return uuid.Parse(string(id))
}

// String returns the raw id value.
func (id BarracaID) String() string {
	return string(id)
}

// Coordinates is a plain lat/lng pair, stored verbatim.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BarracaPhotos holds the two ordered image URL lists. The first horizontal
// image is the canonical cover.
type BarracaPhotos struct {
	Horizontal []string `json:"horizontal"`
	Vertical   []string `json:"vertical"`
}

// Contact groups the optional contact channels of a barraca.
type Contact struct {
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// HasInstagram reports whether a non-blank Instagram handle is set.
func (c Contact) HasInstagram() bool {
	return trimmedNonEmpty(c.Instagram)
}

// DayHours is a single open/close time pair in HH:MM format.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// WeekendHours is the structured weekend schedule override, gated by the
// barraca's WeekendHoursEnabled flag.
type WeekendHours struct {
	Friday   DayHours `json:"friday"`
	Saturday DayHours `json:"saturday"`
	Sunday   DayHours `json:"sunday"`
}

// ManualStatus is the admin-set status for non-partnered barracas, which have
// no real schedule of their own.
type ManualStatus string

const (
	// ManualStatusOpen marks a non-partnered barraca as open.
	ManualStatusOpen ManualStatus = "open"
	// ManualStatusClosed marks a non-partnered barraca as closed.
	ManualStatusClosed ManualStatus = "closed"
	// ManualStatusUndefined means no manual status has been set.
	ManualStatusUndefined ManualStatus = "undefined"
)

// IsValid checks if the ManualStatus is a known value.
func (s ManualStatus) IsValid() bool {
	switch s {
	case ManualStatusOpen, ManualStatusClosed, ManualStatusUndefined:
		return true
	default:
		return false
	}
}

// Barraca is a beach-concession listing. IsOpen carries the live computed
// open flag for partnered barracas; the display status is always derived via
// EffectiveStatus, never read from IsOpen directly.
type Barraca struct {
	ID            BarracaID     `json:"id"`
	Name          string        `json:"name"`
	BarracaNumber string        `json:"barracaNumber,omitempty"`
	Location      string        `json:"location"`
	Coordinates   Coordinates   `json:"coordinates"`
	IsOpen        bool          `json:"isOpen"`
	TypicalHours  string        `json:"typicalHours"`
	Description   string        `json:"description"`
	NearestPosto  string        `json:"nearestPosto,omitempty"`
	Photos        BarracaPhotos `json:"photos"`
	MenuPreview   []string      `json:"menuPreview"`
	Contact       Contact       `json:"contact"`
	Amenities     []string      `json:"amenities"`
	Environment   []string      `json:"environment,omitempty"`

	WeatherDependent bool `json:"weatherDependent"`
	Partnered        bool `json:"partnered"`

	WeekendHoursEnabled bool          `json:"weekendHoursEnabled"`
	WeekendHours        *WeekendHours `json:"weekendHours,omitempty"`

	ManualStatus                ManualStatus `json:"manualStatus"`
	SpecialAdminOverride        bool         `json:"specialAdminOverride"`
	SpecialAdminOverrideExpires *time.Time   `json:"specialAdminOverrideExpires"`

	Rating     int               `json:"rating,omitempty"` // 1-3 stars, 0 = unrated
	CTAButtons []CTAButtonConfig `json:"ctaButtons,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BarracaUpdate carries a partial update: only non-nil fields are persisted.
type BarracaUpdate struct {
	Name          *string
	BarracaNumber *string
	Location      *string
	Coordinates   *Coordinates
	TypicalHours  *string
	Description   *string
	NearestPosto  *string
	Photos        *BarracaPhotos
	MenuPreview   *[]string
	Contact       *Contact
	Amenities     *[]string
	Environment   *[]string

	WeatherDependent *bool
	Partnered        *bool

	WeekendHoursEnabled *bool
	WeekendHours        *WeekendHours

	SpecialAdminOverride        *bool
	SpecialAdminOverrideExpires **time.Time

	Rating     *int
	CTAButtons *[]CTAButtonConfig
}

// ManualStatusEntry describes a barraca whose status an admin has pinned by
// hand, for the manual-status panel listing.
type ManualStatusEntry struct {
	BarracaID    BarracaID    `json:"barracaId"`
	BarracaName  string       `json:"barracaName"`
	Location     string       `json:"location"`
	Partnered    bool         `json:"partnered"`
	ManualStatus ManualStatus `json:"manualStatus"`
	LastUpdated  time.Time    `json:"lastUpdated"`
}

// OverrideInfo describes an active special-admin override, for the
// quick-toggle panel listing.
type OverrideInfo struct {
	BarracaID       BarracaID `json:"barracaId"`
	BarracaName     string    `json:"barracaName"`
	OverrideExpires time.Time `json:"overrideExpires"`
	HoursRemaining  float64   `json:"hoursRemaining"`
}

func trimmedNonEmpty(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return true
		}
	}

	return false
}
