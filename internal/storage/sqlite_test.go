package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"reptrack/reptrack/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	_, found, err := store.GetItem(ctx, "reptrack.plans")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SetItem(ctx, "reptrack.plans", `[{"id":"p-1"}]`))

	payload, found, err := store.GetItem(ctx, "reptrack.plans")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[{"id":"p-1"}]`, payload)
}

func TestSQLiteStore_SetItemOverwrites(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "slot", "first"))
	require.NoError(t, store.SetItem(ctx, "slot", "second"))

	payload, found, err := store.GetItem(ctx, "slot")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "second", payload)
}

func TestSQLiteStore_RemoveItem(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "slot", "payload"))
	require.NoError(t, store.RemoveItem(ctx, "slot"))

	_, found, err := store.GetItem(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, found)

	// Removing an absent slot is not an error.
	require.NoError(t, store.RemoveItem(ctx, "slot"))
}

func TestSQLiteStore_SlotsAreIndependent(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "reptrack.plans", "plans"))
	require.NoError(t, store.SetItem(ctx, "reptrack.workouts", "workouts"))
	require.NoError(t, store.RemoveItem(ctx, "reptrack.plans"))

	payload, found, err := store.GetItem(ctx, "reptrack.workouts")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "workouts", payload)
}

func TestSQLiteStore_Available(t *testing.T) {
	store := newSQLiteStore(t)
	assert.True(t, store.Available(context.Background()))

	require.NoError(t, store.Close())
	assert.False(t, store.Available(context.Background()))
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	first, err := storage.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.SetItem(ctx, "slot", "survives"))
	require.NoError(t, first.Close())

	second, err := storage.NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()

	payload, found, err := second.GetItem(ctx, "slot")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "survives", payload)
}
