package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/domain/service"
	"library/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *userService) loggerFromContext(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a reader with its profile and issues the first access token.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	logger := srv.loggerFromContext(ctx)

	user, err := newReader(input)
	if err != nil {
		return nil, err
	}
	logger.Debug("Registering user", "username", user.Username)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Check uniqueness up front for a clear error; the unique indexes still decide
		taken, err := userRepo.ExistsByUsername(ctx, user.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		if taken {
			return errors.WithStack(domainerrors.ErrUsernameTaken)
		}

		taken, err = userRepo.ExistsByNationalID(ctx, user.Profile.NationalID)
		if err != nil {
			return errors.Wrap(err, "failed to check national id")
		}
		if taken {
			return errors.WithStack(domainerrors.ErrNationalIDTaken)
		}

		// 2. Persist user and profile together
		if err := userRepo.Create(ctx, user); err != nil {
			switch {
			case errors.Is(err, repository.ErrUsernameTaken):
				return errors.WithStack(domainerrors.ErrUsernameTaken)
			case errors.Is(err, repository.ErrNationalIDTaken):
				return errors.WithStack(domainerrors.ErrNationalIDTaken)
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, entity.RoleReader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	logger.Info("User registered", "userID", user.ID)

	return &usecase.RegisterOutput{
		User:        user,
		AccessToken: token,
	}, nil
}

func newReader(input *usecase.RegisterInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("registration data is required")
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username is required")
	}
	nationalID := strings.TrimSpace(input.NationalID)
	if nationalID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("national id is required")
	}

	return &entity.User{
		Username:  username,
		Email:     strings.TrimSpace(input.Email),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Profile: &entity.UserProfile{
			NationalID: nationalID,
			Address:    strings.TrimSpace(input.Address),
			Phone:      strings.TrimSpace(input.Phone),
			Role:       entity.RoleReader,
		},
	}, nil
}

// GetProfile retrieves the actor with its library profile.
func (srv *userService) GetProfile(ctx context.Context, actorID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, actorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// SetRole assigns a role to another member. Administrators only.
func (srv *userService) SetRole(ctx context.Context, actorID, targetUserID uuid.UUID, role string) error {
	logger := srv.loggerFromContext(ctx)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := requireRole(ctx, userRepo, actorID, entity.Roles{entity.RoleAdministrator}); err != nil {
			return err
		}

		newRole, ok := entity.ParseRole(strings.ToLower(strings.TrimSpace(role)))
		if !ok {
			return domainerrors.ErrValidationFailed.WithDetails("unknown role " + role)
		}

		if err := userRepo.UpdateRole(ctx, targetUserID, newRole); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "target user has no library profile")
			}

			return errors.Wrap(err, "failed to update role")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to set role")
	}

	logger.Info("Role assigned", "userID", targetUserID, "role", role, "by", actorID)

	return nil
}

// ResolveRole returns the stored role of a user.
func (srv *userService) ResolveRole(ctx context.Context, userID uuid.UUID) (entity.Role, error) {
	var role entity.Role

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := resolveRole(ctx, repoFactory.UserRepo(), userID)
		if err != nil {
			return err
		}
		role = found

		return nil
	})

	if err != nil {
		return "", errors.Wrap(err, "failed to resolve role")
	}

	return role, nil
}

// IssueToken mints an access token for an existing user. A user without a profile gets an empty role.
func (srv *userService) IssueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	role, _ := user.Role()
	token, err := srv.tokenService.GenerateAccessToken(user.ID, role)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token")
	}

	return token, nil
}
