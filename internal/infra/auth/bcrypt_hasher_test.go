package auth

import (
	"testing"

	"shop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret123", hash)
	assert.True(t, hasher.Check("Secret123", hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)

	assert.False(t, hasher.Check("secret123", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("Secret123", "invalid_hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_ClampsCost(t *testing.T) {
	hasher := NewBcryptHasherWithCost(1)

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
