package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoundTrip(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store)
	resolver := NewResolver(store)

	token, err := issuer.Issue(context.Background(), testUser)
	require.NoError(t, err)

	rec, err := resolver.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, testUser.Username, rec.Username)
	assert.Equal(t, testUser.Email, rec.Email)
	assert.Equal(t, testUser.FullName, rec.FullName)
}

func TestResolveUnknownToken(t *testing.T) {
	resolver := NewResolver(newFakeStore())

	_, err := resolver.Resolve(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveExpiredToken(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store)
	resolver := NewResolver(store)

	token, err := issuer.Issue(context.Background(), testUser)
	require.NoError(t, err)

	store.expire(token)

	// expired is indistinguishable from never issued
	_, err = resolver.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.getErr = ErrUnavailable
	resolver := NewResolver(store)

	_, err := resolver.Resolve(context.Background(), "any")
	assert.ErrorIs(t, err, ErrUnavailable)
}
