package entity

import "time"

// OpenStatus is the tri-state effective open status of a barraca. Non-partnered
// barracas without an active override are fundamentally undetermined and must
// render as neutral, never as a false open or closed.
type OpenStatus string

const (
	// StatusOpen means the barraca is effectively open right now.
	StatusOpen OpenStatus = "open"
	// StatusClosed means the barraca is effectively closed right now.
	StatusClosed OpenStatus = "closed"
	// StatusUndetermined means no open/closed claim can be made.
	StatusUndetermined OpenStatus = "undetermined"
)

// String returns the string representation of the OpenStatus.
func (s OpenStatus) String() string {
	return string(s)
}

// Known reports whether the status is a definite open or closed.
func (s OpenStatus) Known() bool {
	return s == StatusOpen || s == StatusClosed
}

// EffectiveStatus resolves the barraca's displayed open status. Precedence:
//
//  1. an unexpired special-admin override forces open, beating everything
//     including the weather override;
//  2. non-partnered barracas are undetermined;
//  3. an active weather override forces closed;
//  4. otherwise the live IsOpen flag decides.
//
// Pure: depends only on the receiver, the flag and the supplied clock, so it
// is safe to call on every read.
func (b *Barraca) EffectiveStatus(weatherOverride bool, now time.Time) OpenStatus {
	if b.SpecialAdminOverride && b.SpecialAdminOverrideExpires != nil && now.Before(*b.SpecialAdminOverrideExpires) {
		return StatusOpen
	}

	if !b.Partnered {
		return StatusUndetermined
	}

	if weatherOverride {
		return StatusClosed
	}

	if b.IsOpen {
		return StatusOpen
	}

	return StatusClosed
}
