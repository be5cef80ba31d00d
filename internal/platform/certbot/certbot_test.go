package certbot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObtain(t *testing.T) {
	var gotName string
	var gotArgs []string
	orig := runCommand
	runCommand = func(name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return nil, nil
	}
	t.Cleanup(func() { runCommand = orig })

	require.NoError(t, Obtain("bot.example.com"))

	assert.Equal(t, "certbot", gotName)
	assert.Contains(t, gotArgs, "--nginx")
	assert.Contains(t, gotArgs, "bot.example.com")
	assert.Contains(t, gotArgs, "--non-interactive")
	assert.Contains(t, gotArgs, "--agree-tos")
	assert.Contains(t, gotArgs, "--redirect")
}

func TestObtain_FailureIncludesOutput(t *testing.T) {
	orig := runCommand
	runCommand = func(string, ...string) ([]byte, error) {
		return []byte("Challenge failed for domain"), errors.New("exit status 1")
	}
	t.Cleanup(func() { runCommand = orig })

	err := Obtain("bot.example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Challenge failed")
	assert.Contains(t, err.Error(), "bot.example.com")
}
