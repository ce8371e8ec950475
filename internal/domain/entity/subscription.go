package entity

import "time"

// SubscriptionPreferences are the two opt-in flags of an email subscription.
type SubscriptionPreferences struct {
	NewBarracas   bool `json:"newBarracas"`
	SpecialOffers bool `json:"specialOffers"`
}

// EmailSubscription is a newsletter signup, independent of the barraca and
// registration lifecycles. Unsubscribing deactivates the row instead of
// deleting it.
type EmailSubscription struct {
	Email            string                  `json:"email"`
	SubscribedAt     time.Time               `json:"subscribedAt"`
	Preferences      SubscriptionPreferences `json:"preferences"`
	IsActive         bool                    `json:"isActive"`
	UnsubscribeToken string                  `json:"-"`
}
