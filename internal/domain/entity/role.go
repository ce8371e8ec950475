package entity

// Role represents the type of admin role a session can carry.
type Role string

const (
	// RoleAdmin sees the full dashboard.
	RoleAdmin Role = "admin"
	// RoleSpecialAdmin only sees the open/close quick-toggle panel.
	RoleSpecialAdmin Role = "special_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSpecialAdmin:
		return true
	default:
		return false
	}
}

// DisplayName is the human-readable role label.
func (r Role) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleSpecialAdmin:
		return "Special Administrator"
	default:
		return "Unknown"
	}
}
