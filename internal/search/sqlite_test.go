package search

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careatlas/directory-cli/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLite(filepath.Join(t.TempDir(), "search.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testEntries() []model.SearchEntry {
	r1, r2 := 4.8, 4.2
	return []model.SearchEntry{
		{Slug: "shanti-nursing-home-mumbai", Name: "Shanti Nursing Home", Category: "Nursing Homes", CategorySlug: "nursing-homes", City: "Mumbai", CitySlug: "mumbai", Rating: &r2, Reviews: 120, Specialities: []string{"Dementia Care"}},
		{Slug: "green-meadows-pune", Name: "Green Meadows", Category: "Elder Care", CategorySlug: "elder-care", City: "Pune", CitySlug: "pune", Rating: &r1, Reviews: 40},
		{Slug: "anand-care-delhi", Name: "Anand Care", Category: "Nursing Homes", CategorySlug: "nursing-homes", City: "Delhi", CitySlug: "delhi", Reviews: 5, IsPremium: true},
	}
}

func TestSQLite_IndexAndSearch(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.Index(ctx, testEntries()))

	t.Run("match by name", func(t *testing.T) {
		results, err := st.Search(ctx, "shanti", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "shanti-nursing-home-mumbai", results[0].Slug)
		require.NotNil(t, results[0].Rating)
		assert.Equal(t, 4.2, *results[0].Rating)
	})

	t.Run("match by city", func(t *testing.T) {
		results, err := st.Search(ctx, "pune", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "green-meadows-pune", results[0].Slug)
	})

	t.Run("match by speciality", func(t *testing.T) {
		results, err := st.Search(ctx, "dementia", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "shanti-nursing-home-mumbai", results[0].Slug)
	})

	t.Run("case insensitive", func(t *testing.T) {
		results, err := st.Search(ctx, "SHANTI", 10)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("no match", func(t *testing.T) {
		results, err := st.Search(ctx, "hospice", 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestSQLite_SearchRanking(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.Index(ctx, testEntries()))

	// "care" also hits every Elder/Nursing category string; premium first,
	// then rating desc with NULL ratings last.
	results, err := st.Search(ctx, "care", 10)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "anand-care-delhi", results[0].Slug)
	assert.Equal(t, "green-meadows-pune", results[1].Slug)
	assert.Equal(t, "shanti-nursing-home-mumbai", results[2].Slug)
	assert.Nil(t, results[0].Rating)
}

func TestSQLite_SearchLimit(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.Index(ctx, testEntries()))

	results, err := st.Search(ctx, "care", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSQLite_IndexReplaces(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.Index(ctx, testEntries()))
	require.NoError(t, st.Index(ctx, testEntries()[:1]))

	results, err := st.Search(ctx, "care", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSQLite_EmptyIndex(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.Index(ctx, nil))

	results, err := st.Search(ctx, "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestOpenUnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "mysql", "dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown driver")
}
