package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hash of "testpass", the same one the e2e suite seeds its test user with
const knownPasswordHash = "$2a$14$6Gmhg85si2etd3K9oB8nYu1cxfbrdmhkg6wI6OXsa88IF4L2r/L9i"

func TestCheckPasswordHash_KnownHash(t *testing.T) {
	assert.True(t, CheckPasswordHash("testpass", knownPasswordHash))
	assert.False(t, CheckPasswordHash("testpass2", knownPasswordHash))
	assert.False(t, CheckPasswordHash("", knownPasswordHash))
}

func TestHashPassword_RoundTrip(t *testing.T) {
	passwordHash, err := HashPassword("testpass")
	require.NoError(t, err)
	require.NotEmpty(t, passwordHash)

	assert.True(t, CheckPasswordHash("testpass", passwordHash))
	assert.False(t, CheckPasswordHash("wrong", passwordHash))

	// bcrypt salts, so two hashes of the same password differ
	otherHash, err := HashPassword("testpass")
	require.NoError(t, err)
	assert.NotEqual(t, passwordHash, otherHash)
}
