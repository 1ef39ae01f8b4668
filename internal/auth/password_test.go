package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("admin")
	require.NoError(t, err)
	assert.NotEqual(t, "admin", hash)

	assert.True(t, VerifyPassword(hash, "admin"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := HashPassword("admin")
	require.NoError(t, err)
	second, err := HashPassword("admin")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
