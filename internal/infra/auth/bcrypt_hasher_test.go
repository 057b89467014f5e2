package auth

import (
	"testing"

	"passport/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// testCost keeps hashing fast; bcrypt's minimum cost is enough for correctness tests.
const testCost = bcrypt.MinCost

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	password := "admin123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password verifies, wrong one does not.
	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltFreshness(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	password := "same-password-twice"
	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// A fresh random salt per call means identical plaintexts never collide,
	// yet both digests verify against the original password.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	// A digest that is not a bcrypt string fails the check instead of panicking.
	assert.False(t, hasher.Check("any-password", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check("any-password", ""))
}

func TestBcryptHasher_ArbitraryBytes(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	// Any byte sequence is a valid plaintext.
	password := "p\x00a\xffss\twörd"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("admin123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	hash, err := hasher.Hash("admin123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
