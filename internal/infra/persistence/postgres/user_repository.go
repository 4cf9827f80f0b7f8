// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/infra/persistence/model"
	"library/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single user with its library profile, if any.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).Where(u.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	user := toUserDomain(userM)

	profileM, err := repo.findProfile(ctx, id)
	switch {
	case err == nil:
		user.Profile = toUserProfileDomain(profileM)
	case errors.Is(err, repository.ErrProfileNotFound):
	default:
		return nil, err
	}

	return user, nil
}

// FindRole returns the role stored on the user's profile.
func (repo *userRepository) FindRole(ctx context.Context, userID uuid.UUID) (entity.Role, error) {
	profileM, err := repo.findProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	role, ok := entity.ParseRole(profileM.Role)
	if !ok {
		return "", errors.Errorf("user %s has unknown role %q", userID, profileM.Role)
	}

	return role, nil
}

func (repo *userRepository) findProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfileModel, error) {
	p := repo.q.UserProfileModel
	profileM, err := p.WithContext(ctx).Where(p.UserID.Eq(userID)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile")
	}

	return profileM, nil
}

// ExistsByUsername reports whether the username is taken.
func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u := repo.q.UserModel
	total, err := u.WithContext(ctx).Where(u.Username.Eq(username)).Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to check username")
	}

	return total > 0, nil
}

// ExistsByNationalID reports whether the national id is taken.
func (repo *userRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	p := repo.q.UserProfileModel
	total, err := p.WithContext(ctx).Where(p.NationalID.Eq(nationalID)).Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to check national id")
	}

	return total > 0, nil
}

// Create persists a new user and, when present, its profile.
// Both rows go through the same connection, so callers wrap it in a transaction.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		if constraint, ok := uniqueViolation(err); ok && (constraint == "" || constraint == constraintUsername) {
			return repository.ErrUsernameTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.Profile == nil {
		return nil
	}

	user.Profile.UserID = user.ID
	profileM := fromUserProfileDomain(user.Profile)
	if err := repo.q.UserProfileModel.WithContext(ctx).Create(profileM); err != nil {
		if constraint, ok := uniqueViolation(err); ok && (constraint == "" || constraint == constraintNationalID) {
			return repository.ErrNationalIDTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user profile")
	}
	user.Profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateRole changes the role on an existing profile.
func (repo *userRepository) UpdateRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	p := repo.q.UserProfileModel

	info, err := p.WithContext(ctx).
		Where(p.UserID.Eq(userID)).
		UpdateSimple(p.Role.Value(string(role)), p.UpdatedAt.Value(time.Now()))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update role")
	}
	if info.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func toUserDomain(userM *model.UserModel) *entity.User {
	if userM == nil {
		return nil
	}

	return &entity.User{
		ID:        userM.ID,
		Username:  userM.Username,
		Email:     userM.Email,
		FirstName: userM.FirstName,
		LastName:  userM.LastName,
		CreatedAt: userM.CreatedAt,
		UpdatedAt: userM.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	if user == nil {
		return nil
	}

	return &model.UserModel{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserProfileDomain(profileM *model.UserProfileModel) *entity.UserProfile {
	if profileM == nil {
		return nil
	}

	return &entity.UserProfile{
		UserID:     profileM.UserID,
		NationalID: profileM.NationalID,
		Address:    profileM.Address,
		Phone:      profileM.Phone,
		Role:       entity.Role(profileM.Role),
		UpdatedAt:  profileM.UpdatedAt,
	}
}

func fromUserProfileDomain(profile *entity.UserProfile) *model.UserProfileModel {
	if profile == nil {
		return nil
	}

	return &model.UserProfileModel{
		UserID:     profile.UserID,
		NationalID: profile.NationalID,
		Address:    profile.Address,
		Phone:      profile.Phone,
		Role:       string(profile.Role),
		UpdatedAt:  profile.UpdatedAt,
	}
}
