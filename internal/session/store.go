package session

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound means the key is absent: never issued, or already
	// expired — the store cannot tell the two apart.
	ErrNotFound = errors.New("session: not found")

	// ErrUnavailable wraps store transport failures so callers can map
	// them to a 5xx without seeing connection details.
	ErrUnavailable = errors.New("session: store unavailable")
)

// Store persists session records with a per-key TTL. There is no delete:
// sessions end only by expiry. Implementations must be safe for concurrent
// use by many in-flight requests.
type Store interface {
	Put(ctx context.Context, key string, r *Record, ttl time.Duration) error
	Get(ctx context.Context, key string) (*Record, error)
}
