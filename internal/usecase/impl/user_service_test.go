package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile_Success(t *testing.T) {
	repo := memory.NewUserRepository()
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		Username:     "admin",
		Email:        "admin@example.com",
		FullName:     "Maxim_Admin",
		PasswordHash: "$2a$10$fakehash",
	}))

	service := NewUserService(repo, newDiscardLogger())

	profile, err := service.GetProfile(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", profile.Username)
	assert.Equal(t, "admin@example.com", profile.Email)
	assert.Equal(t, "Maxim_Admin", profile.FullName)
	assert.False(t, profile.Disabled)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	service := NewUserService(memory.NewUserRepository(), newDiscardLogger())

	profile, err := service.GetProfile(context.Background(), "nosuchuser")
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetProfile_DisabledReportsNotFound(t *testing.T) {
	repo := memory.NewUserRepository()
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		Username: "blocked",
		Email:    "blocked@example.com",
		Disabled: true,
	}))

	service := NewUserService(repo, newDiscardLogger())

	profile, err := service.GetProfile(context.Background(), "blocked")
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
