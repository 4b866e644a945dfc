// Package entity contains the core business objects of the project.
package entity

// Role represents what a signed-in person is allowed to see and do.
type Role string

const (
	// RoleNone is a signed-in person without a registered profile, treated as a public visitor.
	RoleNone Role = ""
	// RoleEmployee indicates a company member who requests and returns assets.
	RoleEmployee Role = "employee"
	// RoleHR indicates a company administrator who manages assets, employees and requests.
	RoleHR Role = "hr"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a role that can be stored on a profile.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleHR:
		return true
	default:
		return false
	}
}

// ParseRole converts a raw claim or query value into a Role; unknown values map to RoleNone.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleNone
}
