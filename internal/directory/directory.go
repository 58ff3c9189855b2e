// Package directory provides read-only access to user records. The service
// never creates or mutates users; in production the directory would be a
// separate identity service.
package directory

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("directory: user not found")

// UserRecord is a user as stored in the directory. Password is the stored
// secret in plain text, matching the data this service inherited.
type UserRecord struct {
	Username string
	Password string
	Email    string
	FullName string
}

// Directory looks up users by username. Implementations must be safe for
// concurrent use.
type Directory interface {
	Lookup(ctx context.Context, username string) (*UserRecord, error)
}
