package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	"passport/internal/infra/persistence/memory"
	"passport/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	seedUser(t, fx.repo, fx.hasher, "admin", "admin123", false)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	assert.Equal(t, TokenType, output.TokenType)
	assert.Equal(t, int64(30*60), output.ExpiresIn)

	// The issued token decodes back to the authenticated identity.
	claims, err := fx.codec.Decode(output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims[service.ClaimSubject])
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)
	seedUser(t, fx.repo, fx.hasher, "admin", "admin123", false)

	// Wrong password and unknown user must fail with the same outcome kind,
	// so responses never confirm whether an account exists.
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "wrong"},
		{name: "unknown user", username: "nosuchuser", password: "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
				Username: tt.username,
				Password: tt.password,
			})
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	fx := createTestAuthService(t)
	seedUser(t, fx.repo, fx.hasher, "admin", "admin123", true)

	// Even the correct password cannot log into a disabled account, and the
	// failure looks exactly like any other credential failure.
	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Username: "admin",
		Password: "admin123",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "newuser",
		Email:    "newuser@example.com",
		FullName: "New User",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "newuser", output.User.Username)
	assert.Equal(t, "newuser@example.com", output.User.Email)

	// The stored record carries a digest, never the plaintext.
	stored, err := fx.repo.FindByUsername(context.Background(), "newuser")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, fx.hasher.Check("secret123", stored.PasswordHash))

	// The fresh account can log in.
	_, err = fx.service.Login(context.Background(), &usecase.LoginInput{
		Username: "newuser",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)
	seedUser(t, fx.repo, fx.hasher, "admin", "admin123", false)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "admin",
		Email:    "other@example.com",
		Password: "other123",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	fx := createTestAuthService(t)
	seedUser(t, fx.repo, fx.hasher, "admin", "admin123", false)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	username, err := fx.service.ResolveIdentity(context.Background(), output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestAuthService_ResolveIdentity_MissingSubject(t *testing.T) {
	fx := createTestAuthService(t)

	// A validly signed token without a subject claim is useless as an identity.
	token, err := fx.codec.Issue(map[string]any{"role": "tester"})
	require.NoError(t, err)

	username, err := fx.service.ResolveIdentity(context.Background(), token)
	assert.Empty(t, username)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_ResolveIdentity_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t)

	token, err := fx.codec.Issue(map[string]any{service.ClaimSubject: "admin"}, -time.Minute)
	require.NoError(t, err)

	username, err := fx.service.ResolveIdentity(context.Background(), token)
	assert.Empty(t, username)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAuthService_ResolveIdentity_GarbageToken(t *testing.T) {
	fx := createTestAuthService(t)

	username, err := fx.service.ResolveIdentity(context.Background(), "clearly-not-a-token")
	assert.Empty(t, username)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_ResolveIdentity_UserRemovedAfterIssuance(t *testing.T) {
	fx := createTestAuthService(t)
	seedUser(t, fx.repo, fx.hasher, "ghost", "ghost123", false)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Username: "ghost",
		Password: "ghost123",
	})
	require.NoError(t, err)

	// Identity resolution never consults the store, so the token keeps
	// resolving even when the record is gone...
	username, err := fx.service.ResolveIdentity(context.Background(), output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ghost", username)

	// ...and it is the downstream profile lookup that reports not-found.
	emptyRepo := memory.NewUserRepository()
	profiles := NewUserService(emptyRepo, newDiscardLogger())
	profile, err := profiles.GetProfile(context.Background(), username)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
