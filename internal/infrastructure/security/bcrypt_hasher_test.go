package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/plazadecomidas/auth-service/internal/infrastructure/security"
)

func TestBcryptHasher_HashVerificable(t *testing.T) {
	hasher := security.NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "Secret123", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Secret123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("otra-clave")))
}

// bcrypt sala cada hash: la misma clave produce hashes distintos.
func TestBcryptHasher_SalAleatoriaPorLlamada(t *testing.T) {
	hasher := security.NewBcryptHasher(bcrypt.MinCost)

	h1, err := hasher.Hash("Secret123")
	require.NoError(t, err)
	h2, err := hasher.Hash("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
