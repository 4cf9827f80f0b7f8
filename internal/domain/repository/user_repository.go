// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"library/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileNotFound is returned when a user exists but has no library profile.
	ErrProfileNotFound = errors.New("user profile not found")

	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrNationalIDTaken is returned when the national id is already registered.
	ErrNationalIDTaken = errors.New("national id already exists")
)

// UserRepository defines the standard operations for user persistence.
// It also acts as the identity/role collaborator of the loan rules.
type UserRepository interface {
	// FindByID retrieves a single user with its profile, if any.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindRole returns the role stored on the user's profile.
	// It returns ErrProfileNotFound when the user has no profile.
	FindRole(ctx context.Context, userID uuid.UUID) (entity.Role, error)

	// ExistsByUsername reports whether the username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByNationalID reports whether the national id is taken.
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)

	// Create persists a new user and, when present, its profile.
	Create(ctx context.Context, user *entity.User) error

	// UpdateRole changes the role on an existing profile.
	// It returns ErrProfileNotFound when the user has no profile.
	UpdateRole(ctx context.Context, userID uuid.UUID, role entity.Role) error
}
