package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsStaff(t *testing.T) {
	assert.False(t, RoleReader.IsStaff())
	assert.True(t, RoleLibrarian.IsStaff())
	assert.True(t, RoleAdministrator.IsStaff())
	assert.False(t, Role("").IsStaff())
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("librarian")
	assert.True(t, ok)
	assert.Equal(t, RoleLibrarian, role)

	_, ok = ParseRole("superuser")
	assert.False(t, ok)
}

func TestUser_Role_WithoutProfileHasNoRole(t *testing.T) {
	user := &User{Username: "ana"}

	_, ok := user.Role()
	assert.False(t, ok)

	user.Profile = &UserProfile{Role: RoleReader}
	role, ok := user.Role()
	assert.True(t, ok)
	assert.Equal(t, RoleReader, role)
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ana Rojas", (&User{FirstName: "Ana", LastName: "Rojas"}).FullName())
	assert.Equal(t, "ana", (&User{Username: "ana"}).FullName())
}
