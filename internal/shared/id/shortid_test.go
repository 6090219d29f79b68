package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	s, err := Generate(20)
	require.NoError(t, err)
	assert.Len(t, s, 20)

	s, err = Generate(0)
	require.NoError(t, err)
	assert.Len(t, s, DefaultLength)
}

func TestGenerate_Alphabet(t *testing.T) {
	s, err := Generate(64)
	require.NoError(t, err)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q", r)
	}
}

func TestGenerateWithPrefix_Roundtrip(t *testing.T) {
	s, err := GenerateWithPrefix(PrefixOrder, DefaultLength)
	require.NoError(t, err)

	prefix, body, err := ParsePrefixedID(s)
	require.NoError(t, err)
	assert.Equal(t, PrefixOrder, prefix)
	assert.Len(t, body, DefaultLength)
}

func TestParsePrefixedID_Invalid(t *testing.T) {
	for _, in := range []string{"", "noprefix", "_leading", "trailing_"} {
		_, _, err := ParsePrefixedID(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		s, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.False(t, seen[s], "duplicate id %s", s)
		seen[s] = true
	}
}
