// Package token generates random alphanumeric tokens.
//
// Tokens are drawn from a cryptographically strong random source and are
// used as the unguessable path segment of the webhook URL.
package token

import (
	"crypto/rand"
	"fmt"
)

// alphabet is the set of characters tokens are drawn from. URL-safe by
// construction.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// WebhookSecretLength is the fixed length of generated webhook secrets.
const WebhookSecretLength = 24

// New returns a random alphanumeric token of the given length.
func New(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", length)
	}

	// Rejection sampling keeps the distribution uniform over the alphabet.
	limit := byte(256 - (256 % len(alphabet)))

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}

// NewWebhookSecret returns a webhook secret of the standard length.
func NewWebhookSecret() (string, error) {
	return New(WebhookSecretLength)
}
