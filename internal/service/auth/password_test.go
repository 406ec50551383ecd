package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	hash, err := HashPassword("p1", bcrypt.MinCost)
	require.NoError(t, err)

	v := NewBcryptVerifier()
	assert.NoError(t, v.Compare(hash, "p1"))
	assert.Error(t, v.Compare(hash, "p2"))
	assert.Error(t, v.Compare("not-a-hash", "p1"))
}

func TestHashPasswordRejectsBadCost(t *testing.T) {
	_, err := HashPassword("p1", 2)
	assert.Error(t, err)
	_, err = HashPassword("p1", 40)
	assert.Error(t, err)
}
