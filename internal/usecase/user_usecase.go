// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"passport/internal/domain/entity"
)

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// GetProfile returns the public projection of the named user.
	// Records that are missing or disabled both report not-found: a token may
	// outlive the account it was issued for.
	GetProfile(ctx context.Context, username string) (*entity.PublicProfile, error)
}
