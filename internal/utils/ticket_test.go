package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{8}$`)
	for i := 0; i < 50; i++ {
		code, err := NewTicketCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}

func TestNewTicketCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := NewTicketCode()
		require.NoError(t, err)
		seen[code] = true
	}
	// 20 draws from a 36^8 space colliding down to one value would
	// mean the generator is broken.
	assert.Greater(t, len(seen), 1)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", 4) // min cost keeps the test fast
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
