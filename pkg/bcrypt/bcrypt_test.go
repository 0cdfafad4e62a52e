package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	b := New()

	hash, err := b.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, b.ComparePassword(hash, "password123"))
	assert.Error(t, b.ComparePassword(hash, "password124"))
}

func TestHashesDiffer(t *testing.T) {
	b := New()

	first, err := b.HashPassword("password123")
	require.NoError(t, err)
	second, err := b.HashPassword("password123")
	require.NoError(t, err)

	// Salted, so two hashes of the same input never match.
	assert.NotEqual(t, first, second)
}
