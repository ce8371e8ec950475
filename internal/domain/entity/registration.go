package entity

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus is the lifecycle state of a barraca registration.
// pending -> approved | rejected; both review outcomes are terminal for the
// submission itself. Conversion of an approved registration is recorded as an
// admin-note annotation, not a fourth state.
type RegistrationStatus string

const (
	// RegistrationPending means the submission awaits review.
	RegistrationPending RegistrationStatus = "pending"
	// RegistrationApproved means an admin accepted the submission.
	RegistrationApproved RegistrationStatus = "approved"
	// RegistrationRejected means an admin declined the submission.
	RegistrationRejected RegistrationStatus = "rejected"
)

// IsValid checks if the RegistrationStatus is a known value.
func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationPending, RegistrationApproved, RegistrationRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a review may move a registration from this
// status to next. Only pending submissions move; approved and rejected are
// terminal.
func (s RegistrationStatus) CanTransitionTo(next RegistrationStatus) bool {
	if s != RegistrationPending {
		return false
	}

	return next == RegistrationApproved || next == RegistrationRejected
}

// EnglishFluency describes how well the staff speaks English.
type EnglishFluency string

const (
	EnglishNone      EnglishFluency = "no"
	EnglishNotFluent EnglishFluency = "not_fluent"
	EnglishFluent    EnglishFluency = "fluent"
)

// TabSystem is the order-tracking method the barraca uses.
type TabSystem string

const (
	TabNameOnly        TabSystem = "name_only"
	TabIndividualPaper TabSystem = "individual_paper"
	TabNumberOnChair   TabSystem = "number_on_chair"
	TabDigital         TabSystem = "digital"
)

// ContactMethod is the owner's preferred channel for follow-ups.
type ContactMethod string

const (
	ContactWhatsApp  ContactMethod = "whatsapp"
	ContactInstagram ContactMethod = "instagram"
	ContactEmail     ContactMethod = "email"
)

// PartnershipOpportunities records which programs the owner opted into when
// registering.
type PartnershipOpportunities struct {
	QRCodes           bool `json:"qrCodes"`
	RepeatDiscounts   bool `json:"repeatDiscounts"`
	HotelPartnerships bool `json:"hotelPartnerships"`
	ContentCreation   bool `json:"contentCreation"`
	OnlineOrders      bool `json:"onlineOrders"`
}

// ContactPreferences records the owner's consent for follow-up contact about
// photos and status updates.
type ContactPreferences struct {
	ForPhotos bool          `json:"forPhotos"`
	ForStatus bool          `json:"forStatus"`
	Preferred ContactMethod `json:"preferred,omitempty"`
}

// BarracaRegistration is a pending proposal for a new barraca, submitted by
// the owner and reviewed by an admin.
type BarracaRegistration struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	OwnerName     string      `json:"ownerName"`
	BarracaNumber string      `json:"barracaNumber,omitempty"`
	Location      string      `json:"location"`
	Coordinates   Coordinates `json:"coordinates"`
	TypicalHours  string      `json:"typicalHours"`
	Description   string      `json:"description"`
	NearestPosto  string      `json:"nearestPosto,omitempty"`
	Contact       Contact     `json:"contact"`
	Amenities     []string    `json:"amenities"`
	Environment   []string    `json:"environment"`
	DefaultPhoto  string      `json:"defaultPhoto,omitempty"`

	WeekendHoursEnabled bool          `json:"weekendHoursEnabled"`
	WeekendHours        *WeekendHours `json:"weekendHours,omitempty"`
	AdditionalInfo      string        `json:"additionalInfo,omitempty"`

	Partnership PartnershipOpportunities `json:"partnership"`
	ContactPref ContactPreferences       `json:"contactPref"`

	EnglishFluency      EnglishFluency `json:"englishFluency,omitempty"`
	EnglishSpeakerNames string         `json:"englishSpeakerNames,omitempty"`
	TabSystem           TabSystem      `json:"tabSystem,omitempty"`

	Status      RegistrationStatus `json:"status"`
	SubmittedAt time.Time          `json:"submittedAt"`
	ReviewedAt  *time.Time         `json:"reviewedAt,omitempty"`
	ReviewedBy  string             `json:"reviewedBy,omitempty"`
	AdminNotes  string             `json:"adminNotes,omitempty"`
}

// RegistrationStats is the per-status count summary.
type RegistrationStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// ToBarracaDraft maps an approved registration onto a fresh barraca.
// Descriptive, contact and amenity fields carry over; the new listing starts
// open, non-partnered, unrated, with empty photos and CTA buttons and no
// manual status. The caller assigns the id.
func (r *BarracaRegistration) ToBarracaDraft() *Barraca {
	return &Barraca{
		Name:          r.Name,
		BarracaNumber: r.BarracaNumber,
		Location:      r.Location,
		Coordinates:   r.Coordinates,
		IsOpen:        true,
		TypicalHours:  r.TypicalHours,
		Description:   r.Description,
		NearestPosto:  r.NearestPosto,
		Photos:        BarracaPhotos{Horizontal: []string{}, Vertical: []string{}},
		MenuPreview:   []string{},
		Contact:       r.Contact,
		Amenities:     append([]string{}, r.Amenities...),
		Environment:   append([]string{}, r.Environment...),

		WeatherDependent: false,
		Partnered:        false,

		WeekendHoursEnabled: r.WeekendHoursEnabled,
		WeekendHours:        r.WeekendHours,

		ManualStatus:         ManualStatusUndefined,
		SpecialAdminOverride: false,

		CTAButtons: []CTAButtonConfig{},
	}
}
