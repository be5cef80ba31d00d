package nginx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() SiteParams {
	return SiteParams{
		Domain:        "bot.example.com",
		Root:          "/var/www/mirza",
		WebhookSecret: "AbCdEf123456AbCdEf123456",
		EntryScript:   "index.php",
		Socket:        "/run/php/php8.2-fpm.sock",
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()
	first, err := Render(testParams())
	require.NoError(t, err)
	second, err := Render(testParams())
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must render byte-identical output")
}

func TestRender_Content(t *testing.T) {
	t.Parallel()
	out, err := Render(testParams())
	require.NoError(t, err)
	site := string(out)

	assert.Contains(t, site, "server_name bot.example.com;")
	assert.Contains(t, site, "root /var/www/mirza;")
	assert.Contains(t, site, "client_max_body_size 20M;")
	assert.Contains(t, site, "fastcgi_pass unix:/run/php/php8.2-fpm.sock;")
	assert.Contains(t, site, `location ~ \.php$`)

	// Exactly one location routes the secret path, and only to the entry
	// script.
	assert.Equal(t, 1, strings.Count(site, "location = /AbCdEf123456AbCdEf123456"))
	assert.Contains(t, site, "fastcgi_param SCRIPT_FILENAME /var/www/mirza/index.php;")
}

func TestRender_MaxBodySizeOverride(t *testing.T) {
	t.Parallel()
	params := testParams()
	params.MaxBodySize = "50M"

	out, err := Render(params)
	require.NoError(t, err)
	assert.Contains(t, string(out), "client_max_body_size 50M;")
}

func TestRender_DifferentSecretsDiffer(t *testing.T) {
	t.Parallel()
	first, err := Render(testParams())
	require.NoError(t, err)

	params := testParams()
	params.WebhookSecret = "zzzzzzzzzzzzzzzzzzzzzzzz"
	second, err := Render(params)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
