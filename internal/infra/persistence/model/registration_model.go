package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BarracaRegistrationModel is the GORM-specific struct for the
// 'barraca_registrations' table.
type BarracaRegistrationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:text;not null"`
	OwnerName     string    `gorm:"column:owner_name;type:text;not null"`
	BarracaNumber string    `gorm:"column:barraca_number;type:text"`
	Location      string    `gorm:"type:text;not null"`
	Latitude      float64   `gorm:"type:decimal(10,8);not null"`
	Longitude     float64   `gorm:"type:decimal(11,8);not null"`
	TypicalHours  string    `gorm:"column:typical_hours;type:text"`
	Description   string    `gorm:"type:text"`
	NearestPosto  string    `gorm:"column:nearest_posto;type:text"`

	Contact      datatypes.JSON `gorm:"type:jsonb"`
	Amenities    datatypes.JSON `gorm:"type:jsonb"`
	Environment  datatypes.JSON `gorm:"type:jsonb"`
	DefaultPhoto string         `gorm:"column:default_photo;type:text"`

	WeekendHoursEnabled bool           `gorm:"column:weekend_hours_enabled;not null;default:false"`
	WeekendHours        datatypes.JSON `gorm:"column:weekend_hours;type:jsonb"`
	AdditionalInfo      string         `gorm:"column:additional_info;type:text"`

	Partnership datatypes.JSON `gorm:"type:jsonb"`
	ContactPref datatypes.JSON `gorm:"column:contact_pref;type:jsonb"`

	EnglishFluency      string `gorm:"column:english_fluency;type:text"`
	EnglishSpeakerNames string `gorm:"column:english_speaker_names;type:text"`
	TabSystem           string `gorm:"column:tab_system;type:text"`

	Status     string     `gorm:"type:text;not null;default:'pending';index"`
	ReviewedAt *time.Time `gorm:"column:reviewed_at"`
	ReviewedBy string     `gorm:"column:reviewed_by;type:text"`
	AdminNotes string     `gorm:"column:admin_notes;type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BarracaRegistrationModel) TableName() string {
	return "barraca_registrations"
}
