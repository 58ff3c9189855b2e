package session

import (
	"fmt"

	"github.com/google/uuid"
)

// NewToken generates an unguessable bearer token. Random UUIDs are backed
// by crypto/rand, so two concurrent logins cannot collide.
func NewToken() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("session: failed to generate token: %w", err)
	}
	return u.String(), nil
}
