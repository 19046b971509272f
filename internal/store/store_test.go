package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/zona-batam/zona/internal/store"
)

func openTestDB(t *testing.T) *store.Queries {
	t.Helper()

	database, err := store.Open(t.Context(), filepath.Join(t.TempDir(), "zona.db"), true)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, database.Close())
	})

	return store.New(database)
}

func TestRatingSummaryEmpty(t *testing.T) {
	queries := openTestDB(t)

	summary, err := queries.RatingSummary(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(0), summary.Count)
	require.InDelta(t, 0, summary.Average, 0.001)
	require.True(t, summary.LastRatedOn.IsZero())
	require.Equal(t, "Be the first to rate ZoNa", summary.String())
}

func TestAddRating(t *testing.T) {
	queries := openTestDB(t)
	session := uuid.New()

	require.NoError(t, queries.AddRating(t.Context(), store.NewRating(session, 5)))
	require.NoError(t, queries.AddRating(t.Context(), store.NewRating(session, 4)))

	summary, err := queries.RatingSummary(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(2), summary.Count)
	require.InDelta(t, 4.5, summary.Average, 0.001)
	require.WithinDuration(t, time.Now(), summary.LastRatedOn, time.Minute)
	require.Contains(t, summary.String(), "4.5 ★ from 2 ratings")
}

func TestAddRatingRejectsOutOfRange(t *testing.T) {
	queries := openTestDB(t)

	require.ErrorIs(t, queries.AddRating(t.Context(), store.NewRating(uuid.New(), 0)), store.ErrInvalidRating)
	require.ErrorIs(t, queries.AddRating(t.Context(), store.NewRating(uuid.New(), 6)), store.ErrInvalidRating)

	summary, err := queries.RatingSummary(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(0), summary.Count)
}

func TestOpenInMemory(t *testing.T) {
	database, err := store.Open(t.Context(), "", true)
	require.NoError(t, err)
	defer database.Close()

	queries := store.New(database)
	require.NoError(t, queries.AddRating(t.Context(), store.NewRating(uuid.New(), 3)))

	summary, err := queries.RatingSummary(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(1), summary.Count)
	require.Contains(t, summary.String(), "3.0 ★ from 1 rating,")
}

func TestMigrateDown(t *testing.T) {
	database, err := store.Open(t.Context(), filepath.Join(t.TempDir(), "zona.db"), true)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, store.Migrate(database, store.MigrateDn))
	require.NoError(t, store.Migrate(database, store.MigrateUp))
}
