package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotEmpty(t *testing.T) {
	t.Parallel()
	validate := notEmpty("domain")

	require.NoError(t, validate("bot.example.com"))

	for _, input := range []string{"", "   ", "\t"} {
		err := validate(input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "domain")
	}
}
