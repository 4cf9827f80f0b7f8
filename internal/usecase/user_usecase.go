package usecase

import (
	"context"

	"library/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase registers members and administers roles.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	GetProfile(ctx context.Context, actorID uuid.UUID) (*entity.User, error)
	SetRole(ctx context.Context, actorID, targetUserID uuid.UUID, role string) error
	// ResolveRole returns the stored role, or a permission error when the user has no profile.
	ResolveRole(ctx context.Context, userID uuid.UUID) (entity.Role, error)
	// IssueToken mints an access token carrying the user's stored role.
	IssueToken(ctx context.Context, userID uuid.UUID) (string, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a reader.
type RegisterInput struct {
	Username   string `json:"username" validate:"required,max=150"`
	Email      string `json:"email" validate:"omitempty,email,max=255"`
	FirstName  string `json:"first_name" validate:"max=150"`
	LastName   string `json:"last_name" validate:"max=150"`
	NationalID string `json:"national_id" validate:"required,max=12"`
	Address    string `json:"address" validate:"max=200"`
	Phone      string `json:"phone" validate:"max=15"`
}

// SetRoleInput names the role to assign.
type SetRoleInput struct {
	Role string `json:"role" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput is the registered user and its first access token.
type RegisterOutput struct {
	User        *entity.User
	AccessToken string
}
