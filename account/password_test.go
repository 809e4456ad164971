package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unodesk/engine/account"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := account.HashPassword("hunter2")
	require.NoError(t, err)
	require.True(t, account.IsHashed(hash))

	match, err := account.VerifyPassword("hunter2", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = account.VerifyPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestHashesAreSalted(t *testing.T) {
	first, err := account.HashPassword("hunter2")
	require.NoError(t, err)
	second, err := account.HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	_, err := account.VerifyPassword("hunter2", "not-a-hash")
	assert.ErrorIs(t, err, account.ErrInvalidHash)
}

func TestIsHashed(t *testing.T) {
	assert.False(t, account.IsHashed("plaintext"))
	hash, err := account.HashPassword("pw")
	require.NoError(t, err)
	assert.True(t, account.IsHashed(hash))
}
