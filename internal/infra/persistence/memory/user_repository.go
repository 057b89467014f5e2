// Package memory contains an in-memory implementation of the persistence layer.
// It stands in for a real database in tests and in deployments that have no
// Postgres configured, keeping the rest of the system unaware of the difference.
package memory

import (
	"context"
	"sync"
	"time"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userRepository implements repository.UserRepository with a mutex-guarded map
// keyed by username.
type userRepository struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

// NewUserRepository is the constructor for the in-memory userRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[string]entity.User),
	}
}

// FindByUsername retrieves a single user by their unique username.
func (repo *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	// Return a copy so callers can't reach into the store's state.
	return &user, nil
}

// Create persists a new user entity, enforcing username uniqueness.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[user.Username]; ok {
		return errors.Wrapf(repository.ErrUserAlreadyExists, "username %q", user.Username)
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	repo.users[user.Username] = *user

	return nil
}
