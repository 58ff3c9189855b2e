package session

import (
	"context"
	"time"

	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/directory"
)

// TTL is how long an issued session lives. The store's key expiry and the
// record's Expires field both derive from it.
const TTL = 24 * time.Hour

// Issuer creates sessions for verified users.
type Issuer struct {
	store Store
	now   func() time.Time
}

func NewIssuer(store Store) *Issuer {
	return &Issuer{
		store: store,
		now:   time.Now,
	}
}

// Issue generates a fresh token and writes the session record under it.
// The write either lands with the full record or fails with no key left
// behind; there is no retry here.
func (i *Issuer) Issue(ctx context.Context, user *directory.UserRecord) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}

	rec := &Record{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Expires:  i.now().Add(TTL),
	}

	if err := i.store.Put(ctx, token, rec, TTL); err != nil {
		return "", err
	}

	return token, nil
}
