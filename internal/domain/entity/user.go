// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered person: an HR manager or an employee.
// Company affiliation is optional for employees until an HR manager adds them to a team.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PhotoURL       string    `json:"photoURL"`
	CompanyName    *string   `json:"companyName"` // nil for an unaffiliated employee
	CompanyLogo    string    `json:"companyLogo"`
	Role           Role      `json:"role"`
	MemberLimit    int       `json:"memberLimit"`    // only meaningful for HR
	CurrentMembers int       `json:"currentMembers"` // only meaningful for HR
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// HasCompany reports whether the user belongs to a company.
func (u *User) HasCompany() bool {
	return u != nil && u.CompanyName != nil && *u.CompanyName != ""
}

// Company returns the company name or an empty string.
func (u *User) Company() string {
	if !u.HasCompany() {
		return ""
	}

	return *u.CompanyName
}

// RemainingSeats is how many more employees an HR manager may add.
func (u *User) RemainingSeats() int {
	remaining := u.MemberLimit - u.CurrentMembers
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Viewer is the role and company answer used to gate navigation and views.
type Viewer struct {
	Email          string  `json:"email"`
	Role           Role    `json:"role"`
	CompanyName    *string `json:"companyName"`
	CompanyLogo    string  `json:"companyLogo"`
	MemberLimit    int     `json:"memberLimit"`
	CurrentMembers int     `json:"currentMembers"`
}

// IsPublic reports whether the viewer has no role, i.e. is a public visitor.
func (v *Viewer) IsPublic() bool {
	return v == nil || v.Role == RoleNone
}

// HasCompany reports whether the viewer belongs to a company.
func (v *Viewer) HasCompany() bool {
	return v != nil && v.CompanyName != nil && *v.CompanyName != ""
}

// ViewerOf projects a user onto the viewer answer.
func ViewerOf(u *User) *Viewer {
	return &Viewer{
		Email:          u.Email,
		Role:           u.Role,
		CompanyName:    u.CompanyName,
		CompanyLogo:    u.CompanyLogo,
		MemberLimit:    u.MemberLimit,
		CurrentMembers: u.CurrentMembers,
	}
}
