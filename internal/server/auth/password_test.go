package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smaller parameters keep the test fast; the encoded format is the same.
var testArgon = ArgonParams{Memory: 8 * 1024, Time: 1, Parallelism: 1, SaltLen: 16, KeyLen: 32}

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword(testArgon, "pw1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "argon2id$"))
	assert.NotContains(t, hash, "pw1")

	ok, err := VerifyPassword("pw1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword(testArgon, "same-password")
	require.NoError(t, err)
	h2, err := HashPassword(testArgon, "same-password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "salts must differ between hashes")
}

func TestVerifyPassword_InvalidEncodings(t *testing.T) {
	t.Parallel()

	for _, encoded := range []string{
		"",
		"bcrypt$whatever",
		"argon2id$m=1,t=1,p=1$onlythree",
		"argon2id$bad-params$c2FsdA$a2V5",
		"argon2id$m=1,t=1,p=1$!!!$a2V5",
	} {
		_, err := VerifyPassword("pw", encoded)
		assert.ErrorIs(t, err, ErrInvalidHash, "encoded=%q", encoded)
	}
}
