// Package telegram is a minimal Telegram Bot API client for webhook
// management.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	neturl "net/url"
	"strconv"
	"strings"
)

// apiBase is the Bot API endpoint.
const apiBase = "https://api.telegram.org"

// Client calls the Bot API on behalf of one bot.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given bot token.
func NewClient(token string) *Client {
	return &Client{
		token:      token,
		baseURL:    apiBase,
		httpClient: http.DefaultClient,
	}
}

// apiResponse is the Bot API envelope.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SetWebhook binds url as the bot's inbound channel. With dropPending set,
// updates queued before registration are discarded. Re-registration of the
// same URL is idempotent on the API side and always safe to repeat.
func (c *Client) SetWebhook(ctx context.Context, url string, dropPending bool) error {
	form := neturl.Values{}
	form.Set("url", url)
	form.Set("drop_pending_updates", strconv.FormatBool(dropPending))

	endpoint := fmt.Sprintf("%s/bot%s/setWebhook", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build setWebhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("setWebhook request failed: %w", err)
	}
	defer resp.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode setWebhook response: %w", err)
	}
	if !body.OK {
		if body.Description != "" {
			return fmt.Errorf("setWebhook rejected: %s", body.Description)
		}
		return fmt.Errorf("setWebhook rejected with status %d", resp.StatusCode)
	}
	return nil
}
