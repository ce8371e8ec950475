// Package model contains the GORM-specific structs mirroring the database
// tables. These never leak past the persistence layer.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// BarracaModel is the GORM-specific struct for the 'barracas' table.
// The id column is text, not uuid: a handful of legacy rows predate the
// uuid convention and keep their original free-form ids.
type BarracaModel struct {
	ID            string         `gorm:"type:text;primary_key"`
	Name          string         `gorm:"type:text;not null"`
	BarracaNumber string         `gorm:"column:barraca_number;type:text"`
	Location      string         `gorm:"type:text;not null"`
	Latitude      float64        `gorm:"type:decimal(10,8);not null"`
	Longitude     float64        `gorm:"type:decimal(11,8);not null"`
	IsOpen        bool           `gorm:"column:is_open;not null;default:false"`
	TypicalHours  string         `gorm:"column:typical_hours;type:text"`
	Description   string         `gorm:"type:text"`
	NearestPosto  string         `gorm:"column:nearest_posto;type:text"`
	Photos        datatypes.JSON `gorm:"type:jsonb"`
	MenuPreview   datatypes.JSON `gorm:"column:menu_preview;type:jsonb"`
	Contact       datatypes.JSON `gorm:"type:jsonb"`
	Amenities     datatypes.JSON `gorm:"type:jsonb"`
	Environment   datatypes.JSON `gorm:"type:jsonb"`

	WeatherDependent bool `gorm:"column:weather_dependent;not null;default:false"`
	Partnered        bool `gorm:"not null;default:false"`

	WeekendHoursEnabled bool           `gorm:"column:weekend_hours_enabled;not null;default:false"`
	WeekendHours        datatypes.JSON `gorm:"column:weekend_hours;type:jsonb"`

	ManualStatus                string     `gorm:"column:manual_status;type:text;not null;default:'undefined'"`
	SpecialAdminOverride        bool       `gorm:"column:special_admin_override;not null;default:false"`
	SpecialAdminOverrideExpires *time.Time `gorm:"column:special_admin_override_expires"`

	Rating     int            `gorm:"not null;default:0"`
	CTAButtons datatypes.JSON `gorm:"column:cta_buttons;type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BarracaModel) TableName() string {
	return "barracas"
}

// BarracaStatusRow is the result shape of the combined listing procedure:
// a barraca row joined with its computed open flag and the total match count.
type BarracaStatusRow struct {
	BarracaModel
	ComputedIsOpen bool  `gorm:"column:computed_is_open"`
	TotalCount     int64 `gorm:"column:total_count"`
}

// ManualStatusRow is the result shape of the manual-status listing procedure.
type ManualStatusRow struct {
	ID           string    `gorm:"column:id"`
	Name         string    `gorm:"column:name"`
	Location     string    `gorm:"column:location"`
	Partnered    bool      `gorm:"column:partnered"`
	ManualStatus string    `gorm:"column:manual_status"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// OverrideRow is the result shape of the active-overrides listing procedure.
type OverrideRow struct {
	ID              string    `gorm:"column:id"`
	Name            string    `gorm:"column:name"`
	OverrideExpires time.Time `gorm:"column:override_expires"`
	HoursRemaining  float64   `gorm:"column:hours_remaining"`
}
