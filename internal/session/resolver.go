package session

import (
	"context"
)

// Resolver maps bearer tokens back to session records.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the record stored under the token. An absent key,
// whether expired or never issued, surfaces as ErrNotFound. The record's
// own Expires field is not re-checked; the store's TTL is authoritative.
func (r *Resolver) Resolve(ctx context.Context, token string) (*Record, error) {
	return r.store.Get(ctx, token)
}
