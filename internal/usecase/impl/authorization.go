package impl

import (
	"context"

	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// resolveRole reads the stored role of a user. A missing profile grants nothing.
func resolveRole(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (entity.Role, error) {
	role, err := userRepo.FindRole(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) || errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.Wrap(domainerrors.ErrPermissionDenied, "user has no library profile")
		}

		return "", errors.Wrap(err, "failed to resolve role")
	}

	return role, nil
}

// requireRole fails with a permission error unless the user's stored role is one of allowed.
func requireRole(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID, allowed entity.Roles) (entity.Role, error) {
	role, err := resolveRole(ctx, userRepo, userID)
	if err != nil {
		return "", err
	}
	if !allowed.Contains(role) {
		return "", errors.Wrapf(domainerrors.ErrPermissionDenied, "role %s is not allowed", role)
	}

	return role, nil
}

// validationError turns an entity validation failure into an AppError carrying the reason.
func validationError(err error) error {
	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}
