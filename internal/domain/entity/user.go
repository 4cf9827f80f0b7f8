// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the identity of a library member.
type User struct {
	ID        uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Username  string       // Unique login name.
	Email     string       // Contact email.
	FirstName string       // Given name.
	LastName  string       // Family name.
	Profile   *UserProfile // Library profile. Nil when the profile was never created, which grants no role.
	CreatedAt time.Time    // Timestamp of when this user account was created.
	UpdatedAt time.Time    // Timestamp of the last modification to this user's data.
}

// UserProfile holds the library-specific data of a member, including the role that gates management actions.
type UserProfile struct {
	UserID     uuid.UUID // Links this profile to a core User entity (one-to-one).
	NationalID string    // Unique national identity number.
	Address    string    // Postal address.
	Phone      string    // Contact phone number.
	Role       Role      // Required; a profile always carries exactly one role.
	UpdatedAt  time.Time // Timestamp of the last modification to this profile.
}

// FullName joins first and last name, falling back to the username.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}

	return name
}

// Role returns the member's role and whether one is assigned.
func (u *User) Role() (Role, bool) {
	if u.Profile == nil || !u.Profile.Role.IsValid() {
		return "", false
	}

	return u.Profile.Role, true
}
