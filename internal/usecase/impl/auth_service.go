// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/pkg/errors"
)

// TokenType is the kind of token this service issues. Clients send it back
// in the Authorization header scheme.
const TokenType = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	codec    service.TokenCodec
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	codec service.TokenCodec,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		codec:    codec,
		logger:   logger,
	}
}

// Login orchestrates the login decision: record lookup, password check,
// disabled-flag check, token issuance. The three failure modes deliberately
// collapse into ErrInvalidCredentials so a response never confirms whether an
// account exists.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", "username", input.Username)

	// 1. Find the credential record.
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	// 2. Check the password.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// 3. Check the account status.
	if user.Disabled {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// 4. Mint the token. This is the only place in the system that issues one.
	token, err := srv.codec.Issue(map[string]any{service.ClaimSubject: user.Username})
	if err != nil {
		srv.logger.Error("Failed to issue token", "username", input.Username, "error", err)

		return nil, errors.Wrap(err, "failed to issue token")
	}
	srv.logger.Debug("User logged in successfully", "username", user.Username)

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   TokenType,
		ExpiresIn:   int64(srv.codec.AccessTokenDuration().Seconds()),
	}, nil
}

// Register creates a new credential record with a freshly hashed password.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting user registration", "username", input.Username)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("registration failed")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}
	srv.logger.Debug("User registered successfully", "username", newUser.Username)

	return &usecase.RegisterOutput{User: newUser.Profile()}, nil
}

// ResolveIdentity decodes the token and extracts the subject claim.
// Expiry and signature failures pass through from the codec untouched; a
// structurally valid token without a usable subject is treated as an
// invalid-credentials case of its own.
func (srv *authService) ResolveIdentity(_ context.Context, tokenString string) (string, error) {
	claims, err := srv.codec.Decode(tokenString)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode token")
	}

	subject, ok := claims[service.ClaimSubject].(string)
	if !ok || subject == "" {
		return "", domainerrors.ErrInvalidCredentials.WrapMessage("token has no subject")
	}

	return subject, nil
}
