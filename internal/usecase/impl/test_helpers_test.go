package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"passport/config"
	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/infra/auth"
	"passport/internal/infra/persistence/memory"
	"passport/internal/usecase"

	"github.com/stretchr/testify/require"
)

// The usecases are exercised against the real in-memory store, hasher and
// codec rather than mocks: the components are cheap, deterministic, and the
// interesting behavior lives in how they compose.

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCodec(t *testing.T, expireMinutes int) service.TokenCodec {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret_key_very_long_for_testing"
	cfg.JWT.Algorithm = "HS256"
	cfg.JWT.ExpireMinutes = expireMinutes

	codec, err := auth.NewJWTCodec(cfg)
	require.NoError(t, err)

	return codec
}

// authFixtures holds the service under test alongside the real collaborators
// it was built from, so tests can seed the store or inspect tokens directly.
type authFixtures struct {
	service usecase.AuthUsecase
	repo    repository.UserRepository
	hasher  service.PasswordHasher
	codec   service.TokenCodec
}

func createTestAuthService(t *testing.T) authFixtures {
	t.Helper()

	repo := memory.NewUserRepository()
	hasher := auth.NewBcryptHasherWithCost(4)
	codec := newTestCodec(t, 30)

	return authFixtures{
		service: NewAuthService(repo, hasher, codec, newDiscardLogger()),
		repo:    repo,
		hasher:  hasher,
		codec:   codec,
	}
}

// seedUser hashes the password and inserts the record directly, bypassing Register.
func seedUser(t *testing.T, repo repository.UserRepository, hasher service.PasswordHasher, username, password string, disabled bool) {
	t.Helper()

	digest, err := hasher.Hash(password)
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: digest,
		Disabled:     disabled,
	}))
}
