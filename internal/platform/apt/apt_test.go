package apt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

func stubRunCommand(t *testing.T, output []byte, err error) *[]call {
	t.Helper()
	var calls []call
	orig := runCommand
	runCommand = func(name string, args ...string) ([]byte, error) {
		calls = append(calls, call{name: name, args: args})
		return output, err
	}
	t.Cleanup(func() { runCommand = orig })
	return &calls
}

func TestInstall(t *testing.T) {
	calls := stubRunCommand(t, nil, nil)

	require.NoError(t, Install("nginx", "php-fpm"))

	require.Len(t, *calls, 1)
	assert.Equal(t, "apt-get", (*calls)[0].name)
	assert.Equal(t, []string{"install", "-y", "nginx", "php-fpm"}, (*calls)[0].args)
}

func TestInstall_FailureIncludesOutput(t *testing.T) {
	stubRunCommand(t, []byte("E: Unable to locate package"), errors.New("exit status 100"))

	err := Install("nginx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unable to locate package")
}

func TestUpdate(t *testing.T) {
	calls := stubRunCommand(t, nil, nil)

	require.NoError(t, Update())

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"update"}, (*calls)[0].args)
}

func TestPackages_IncludesServerStack(t *testing.T) {
	t.Parallel()
	packages := Packages()
	for _, expected := range []string{"nginx", "php-fpm", "composer", "certbot", "cron"} {
		assert.Contains(t, packages, expected)
	}
}
