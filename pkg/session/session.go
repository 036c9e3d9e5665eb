// Package session tracks the last-known drawing inputs between a
// calculate trigger and later resize triggers.
//
// The HTTP surface mirrors the interactive flow of the drawing tool: a
// client calculates once (POST), then re-renders repeatedly as its
// viewport changes (GET with new available sizes). The session is the
// only state shared across those triggers — exactly the normalized input
// values, nothing derived. Sessions live in process memory and expire;
// nothing is persisted.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/drafthaus/orthodraw/pkg/drawing"
)

// Sentinel errors for session operations.
var (
	// ErrNotFound is returned when a session does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExpired is returned when a session has exceeded its TTL.
	ErrExpired = errors.New("expired")
)

// DefaultTTL is the default session duration.
const DefaultTTL = time.Hour

// Session stores the normalized inputs of one calculate trigger.
type Session struct {
	ID        string                  `json:"id"`
	Solid     drawing.SolidDimensions `json:"solid"`
	Area      drawing.AreaSize        `json:"area"`
	CreatedAt time.Time               `json:"created_at"`
	ExpiresAt time.Time               `json:"expires_at"`
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// New creates a session for the given inputs with a fresh ID.
func New(solid drawing.SolidDimensions, area drawing.AreaSize, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Solid:     solid,
		Area:      area,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session doesn't exist and ErrExpired if
	// it exists but has expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, s *Session) error

	// Delete removes a session. Deleting a missing session is a no-op.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions.
	Cleanup(ctx context.Context) error
}
