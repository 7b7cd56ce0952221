package ident

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixForTipo(t *testing.T) {
	assert.Equal(t, "IMP", PrefixForTipo("impresora"))
	assert.Equal(t, "IMP", PrefixForTipo("Impresora"))
	assert.Equal(t, "LAP", PrefixForTipo("LAPTOP"))
	assert.Equal(t, "EQU", PrefixForTipo("tablet"))
	assert.Equal(t, "EQU", PrefixForTipo(""))
}

func TestGenerateShape(t *testing.T) {
	idPattern := regexp.MustCompile(`^(IMP|LAP|EQU)[0-9A-F]{6}$`)

	for _, tipo := range []string{"impresora", "laptop", "monitor"} {
		id, err := Generate(PrefixForTipo(tipo))
		require.NoError(t, err)
		assert.Regexp(t, idPattern, id)
	}
}

func TestGenerateVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id, err := Generate("EQU")
		require.NoError(t, err)
		seen[id] = true
	}
	// 24 bits of entropy: 200 draws colliding this often would point at a
	// broken source.
	assert.Greater(t, len(seen), 190)
}
