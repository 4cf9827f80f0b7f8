package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleReader can borrow and return books.
	RoleReader Role = "reader"
	// RoleLibrarian can also manage the catalog.
	RoleLibrarian Role = "librarian"
	// RoleAdministrator can also assign roles.
	RoleAdministrator Role = "administrator"
)

// StaffRoles are the roles allowed to manage the catalog.
var StaffRoles = Roles{RoleLibrarian, RoleAdministrator}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleReader, RoleLibrarian, RoleAdministrator:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may manage the catalog.
func (r Role) IsStaff() bool {
	return StaffRoles.Contains(r)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ParseRole converts a string to a Role, reporting whether it is known.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
