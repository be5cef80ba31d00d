package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Length(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		length int
	}{
		{"short", 8},
		{"webhook secret length", WebhookSecretLength},
		{"long", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tok, err := New(tt.length)
			require.NoError(t, err)
			assert.Len(t, tok, tt.length)
		})
	}
}

func TestNew_Alphabet(t *testing.T) {
	t.Parallel()
	tok, err := New(256)
	require.NoError(t, err)

	for _, r := range tok {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
	}
}

func TestNew_InvalidLength(t *testing.T) {
	t.Parallel()
	for _, length := range []int{0, -1} {
		_, err := New(length)
		require.Error(t, err)
	}
}

func TestNewWebhookSecret_Distinct(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		tok, err := NewWebhookSecret()
		require.NoError(t, err)
		require.Len(t, tok, WebhookSecretLength)
		assert.False(t, seen[tok], "token %q generated twice", tok)
		seen[tok] = true
	}
}
