package memory

import (
	"context"
	"log/slog"

	"passport/config"
	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"

	"github.com/pkg/errors"
)

// Seed provisions the configured accounts into the store, hashing each
// plaintext password on the way in. Duplicate usernames in the seed list are
// rejected by the store itself.
func Seed(ctx context.Context, repo repository.UserRepository, seeds []config.SeedUser, hasher service.PasswordHasher, logger *slog.Logger) error {
	for _, seed := range seeds {
		digest, err := hasher.Hash(seed.Password)
		if err != nil {
			return errors.Wrapf(err, "failed to hash seed password for %q", seed.Username)
		}

		user := &entity.User{
			Username:     seed.Username,
			Email:        seed.Email,
			FullName:     seed.FullName,
			PasswordHash: digest,
			Disabled:     seed.Disabled,
		}
		if err := repo.Create(ctx, user); err != nil {
			return errors.Wrapf(err, "failed to seed user %q", seed.Username)
		}
		logger.Debug("Seeded user", "username", seed.Username)
	}

	return nil
}
