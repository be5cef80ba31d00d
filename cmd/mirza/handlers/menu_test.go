package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubStdin(t *testing.T, input string) {
	t.Helper()
	orig := stdin
	stdin = strings.NewReader(input)
	t.Cleanup(func() { stdin = orig })
}

func TestMenu_Exit(t *testing.T) {
	stubStdin(t, "0\n")

	require.NoError(t, Menu(context.Background()))
}

func TestMenu_InvalidSelection(t *testing.T) {
	stubStdin(t, "9\n")

	err := Menu(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"9"`)
}

func TestMenu_EmptyInput(t *testing.T) {
	stubStdin(t, "")

	require.Error(t, Menu(context.Background()))
}

func TestMenu_DispatchesUpdate(t *testing.T) {
	s := stubInstall(t)
	stubReload(t, s)
	stubStdin(t, "2\n")

	require.NoError(t, Menu(context.Background()))

	assert.Contains(t, s.calls, "sync")
	assert.Contains(t, s.calls, "reload")
}
