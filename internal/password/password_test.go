package password

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandom(t *testing.T) {
	alnum := regexp.MustCompile(`^[a-zA-Z0-9]{10}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		pw, err := GenerateRandom()
		require.NoError(t, err)
		assert.Regexp(t, alnum, pw)
		seen[pw] = true
	}
	assert.Len(t, seen, 50, "temporary passwords should not repeat")
}

func TestHashAndVerify(t *testing.T) {
	pw, err := GenerateRandom()
	require.NoError(t, err)

	hash, err := Hash(pw)
	require.NoError(t, err)
	assert.NotEqual(t, pw, hash)

	assert.True(t, Verify(pw, hash))
	assert.False(t, Verify("otraClave99", hash))
	assert.False(t, Verify(pw, "no-es-un-hash"))
}
