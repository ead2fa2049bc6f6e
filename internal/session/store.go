package session

import (
	"context"
	"time"
)

// Session ties an opaque session ID to a portal user. It carries
// identity pointers only; role and profile live on the user record
// and are re-read on every request.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store persists sessions. Implementations stay stateless and
// treat session IDs as opaque.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
