package entity

// CTAActionType enumerates what a call-to-action button does when pressed.
type CTAActionType string

const (
	CTAActionURL         CTAActionType = "url"
	CTAActionPhone       CTAActionType = "phone"
	CTAActionEmail       CTAActionType = "email"
	CTAActionWhatsApp    CTAActionType = "whatsapp"
	CTAActionInstagram   CTAActionType = "ig"
	CTAActionReservation CTAActionType = "reservation"
	CTAActionDetails     CTAActionType = "details"
	CTAActionCustom      CTAActionType = "custom"
)

// CTAButtonAction is the behavior half of a CTA button config.
type CTAButtonAction struct {
	Type   CTAActionType `json:"type"`
	Value  string        `json:"value"`
	Target string        `json:"target,omitempty"` // "_blank" or "_self" for URL actions
}

// CTATimeRestrictions limits button visibility to a daily window and/or days
// of the week (0 = Sunday).
type CTATimeRestrictions struct {
	StartTime  string `json:"startTime,omitempty"` // HH:MM
	EndTime    string `json:"endTime,omitempty"`   // HH:MM
	DaysOfWeek []int  `json:"daysOfWeek,omitempty"`
}

// CTAVisibilityConditions gates when a button is shown. Zero value means
// always visible.
type CTAVisibilityConditions struct {
	RequiresOpen     bool                 `json:"requiresOpen,omitempty"`
	RequiresClosed   bool                 `json:"requiresClosed,omitempty"`
	TimeRestrictions *CTATimeRestrictions `json:"timeRestrictions,omitempty"`
	MemberOnly       bool                 `json:"memberOnly,omitempty"`
	WeatherDependent bool                 `json:"weatherDependent,omitempty"`
}

// CTAButtonConfig is one configurable call-to-action button on a listing.
// Buttons render in ascending Position order.
type CTAButtonConfig struct {
	ID                   string                  `json:"id"`
	Text                 string                  `json:"text"`
	Action               CTAButtonAction         `json:"action"`
	Style                string                  `json:"style"` // primary | secondary | outline | ghost
	Position             int                     `json:"position"`
	VisibilityConditions CTAVisibilityConditions `json:"visibilityConditions"`
	Icon                 string                  `json:"icon,omitempty"`
	Enabled              bool                    `json:"enabled"`
}
