package model

import (
	"time"
)

// EmailSubscriptionModel is the GORM-specific struct for the
// 'email_subscriptions' table.
type EmailSubscriptionModel struct {
	Email            string `gorm:"type:text;primary_key"`
	NewBarracas      bool   `gorm:"column:new_barracas;not null;default:true"`
	SpecialOffers    bool   `gorm:"column:special_offers;not null;default:false"`
	IsActive         bool   `gorm:"column:is_active;not null;default:true"`
	UnsubscribeToken string `gorm:"column:unsubscribe_token;type:text;not null;uniqueIndex"`
	SubscribedAt     time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmailSubscriptionModel) TableName() string {
	return "email_subscriptions"
}
