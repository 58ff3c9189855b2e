package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticLookup(t *testing.T) {
	dir := NewStatic()

	u, err := dir.Lookup(context.Background(), "user1")
	require.NoError(t, err)
	assert.Equal(t, "user1@example.com", u.Email)
	assert.Equal(t, "Sample User One", u.FullName)
}

func TestStaticLookupUnknown(t *testing.T) {
	dir := NewStatic()

	_, err := dir.Lookup(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStaticLookupReturnsCopy(t *testing.T) {
	dir := NewStaticFrom([]UserRecord{{Username: "u", Password: "p", Email: "e", FullName: "f"}})

	u1, err := dir.Lookup(context.Background(), "u")
	require.NoError(t, err)
	u1.Email = "mutated"

	u2, err := dir.Lookup(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, "e", u2.Email)
}
