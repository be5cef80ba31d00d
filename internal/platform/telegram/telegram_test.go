package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("ABC123")
	c.baseURL = srv.URL
	return c
}

func TestSetWebhook(t *testing.T) {
	t.Parallel()
	var gotPath, gotURL, gotDrop string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotURL = r.PostFormValue("url")
		gotDrop = r.PostFormValue("drop_pending_updates")
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
	})

	err := c.SetWebhook(context.Background(), "https://bot.example.com/secret", true)
	require.NoError(t, err)

	assert.Equal(t, "/botABC123/setWebhook", gotPath)
	assert.Equal(t, "https://bot.example.com/secret", gotURL)
	assert.Equal(t, "true", gotDrop)
}

func TestSetWebhook_Rejected(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":false,"description":"Unauthorized"}`))
	})

	err := c.SetWebhook(context.Background(), "https://bot.example.com/secret", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized")
}

func TestSetWebhook_MalformedResponse(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	})

	err := c.SetWebhook(context.Background(), "https://bot.example.com/secret", true)
	require.Error(t, err)
}

func TestSetWebhook_ConnectionFailure(t *testing.T) {
	t.Parallel()
	c := NewClient("ABC123")
	c.baseURL = "http://127.0.0.1:1"

	err := c.SetWebhook(context.Background(), "https://bot.example.com/secret", true)
	require.Error(t, err)
}
