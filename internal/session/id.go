package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// idBytes is the raw entropy per session ID. 32 bytes keeps the
// encoded cookie value short while leaving IDs unguessable.
const idBytes = 32

// GenerateID returns a random, URL-safe session identifier.
func GenerateID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: failed to generate id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
