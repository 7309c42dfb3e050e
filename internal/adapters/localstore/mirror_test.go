package localstore_test

import (
	"context"
	"testing"

	"github.com/spendio/spendio_backend/internal/adapters/localstore"
	"github.com/spendio/spendio_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestMirror(t *testing.T) *localstore.Mirror {
	t.Helper()
	m, err := localstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestMirror_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := openTestMirror(t)

	require.NoError(t, m.Put(ctx, "user_preferred_currency:u1", "EUR"))

	got, err := m.Get(ctx, "user_preferred_currency:u1")
	require.NoError(t, err)
	assert.Equal(t, "EUR", got)
}

func TestMirror_GetMissingKey(t *testing.T) {
	ctx := context.Background()
	m := openTestMirror(t)

	_, err := m.Get(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMirror_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	m := openTestMirror(t)

	require.NoError(t, m.Put(ctx, "k", "USD"))
	require.NoError(t, m.Put(ctx, "k", "GBP"))

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "GBP", got)
}

func TestMirror_Delete(t *testing.T) {
	ctx := context.Background()
	m := openTestMirror(t)

	require.NoError(t, m.Put(ctx, "k", "USD"))
	require.NoError(t, m.Delete(ctx, "k"))

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting a missing key is fine.
	assert.NoError(t, m.Delete(ctx, "k"))
}
