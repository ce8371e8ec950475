package model

import (
	"time"
)

// SiteSettingModel is the GORM-specific struct for the 'site_settings' table,
// a small key/value store for site-wide flags.
type SiteSettingModel struct {
	Key       string `gorm:"type:text;primary_key"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SiteSettingModel) TableName() string {
	return "site_settings"
}
