// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passport/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the issued token after a successful login.
// ExpiresIn is the token lifetime in seconds.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// RegisterOutput returns the newly created user's public profile.
type RegisterOutput struct {
	User *entity.PublicProfile `json:"user"`
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies the credentials and mints a bearer token. Every failure
	// mode (unknown user, wrong password, disabled account) surfaces as the
	// same invalid-credentials outcome.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Register creates a new credential record.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// ResolveIdentity decodes a bearer token and returns the username it was
	// issued for. It performs no store lookup; callers that need a live
	// record do their own.
	ResolveIdentity(ctx context.Context, tokenString string) (string, error)
}
