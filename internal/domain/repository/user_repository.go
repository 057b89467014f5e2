// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserAlreadyExists is returned by Create when the username is already taken.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserRepository defines the standard operations for credential persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUsername retrieves a single user by their unique username.
	// Returns ErrUserNotFound when no record matches.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	// Returns ErrUserAlreadyExists when the username is already present.
	Create(ctx context.Context, user *entity.User) error
}
