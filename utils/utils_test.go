package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsString(t *testing.T) {
	require.True(t, ContainsString([]string{"alpha", "beta"}, "beta"))
	require.False(t, ContainsString([]string{"alpha", "beta"}, "gamma"))
	require.False(t, ContainsString(nil, "alpha"))
}

func TestRandomAlphabetString(t *testing.T) {
	s := RandomAlphabetString(8)
	require.Len(t, s, 8)
	for _, r := range s {
		require.True(t, r >= 'a' && r <= 'z')
	}
}
