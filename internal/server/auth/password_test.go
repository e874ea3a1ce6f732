package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4) // minimal cost keeps the test fast

	digest, err := h.Hash("abc123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "abc123", digest, "digest must never equal the plaintext")

	assert.True(t, h.Verify("abc123", digest))
	assert.False(t, h.Verify("abc124", digest))
}

func TestPasswordHasher_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)

	d1, err := h.Hash("same-password")
	require.NoError(t, err)
	d2, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2, "equal inputs must produce different digests")
	assert.True(t, h.Verify("same-password", d1))
	assert.True(t, h.Verify("same-password", d2))
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(99)
	assert.Equal(t, DefaultBcryptCost, h.cost)

	h = NewPasswordHasher(-1)
	assert.Equal(t, DefaultBcryptCost, h.cost)
}

func TestPasswordHasher_VerifyGarbageHash(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)
	assert.False(t, h.Verify("whatever", "not-a-bcrypt-hash"))
}
