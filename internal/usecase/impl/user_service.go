package impl

import (
	"context"
	"log/slog"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile retrieves the public profile for the given username.
// A disabled account is reported exactly like a missing one: once an account
// is disabled, its still-unexpired tokens stop resolving to anything.
func (srv *userService) GetProfile(ctx context.Context, username string) (*entity.PublicProfile, error) {
	srv.logger.Debug("Getting user profile", "username", username)

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if user.Disabled {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
	}

	return user.Profile(), nil
}
