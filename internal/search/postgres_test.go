package search

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careatlas/directory-cli/internal/model"
)

func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS search_entries`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Index(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	rating := 4.2
	entries := []model.SearchEntry{
		{
			Slug: "shanti-nursing-home-mumbai", Name: "Shanti Nursing Home",
			Category: "Nursing Homes", CategorySlug: "nursing-homes",
			City: "Mumbai", CitySlug: "mumbai",
			Rating: &rating, Reviews: 120,
			Specialities: []string{"Dementia Care", "Palliative Care"},
		},
	}

	mock.ExpectExec(`DELETE FROM search_entries`).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`INSERT INTO search_entries`).
		WithArgs(
			"shanti-nursing-home-mumbai", "Shanti Nursing Home",
			"Nursing Homes", "nursing-homes", "Mumbai", "mumbai",
			&rating, 120, "", "Dementia Care; Palliative Care", false,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.Index(context.Background(), entries))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_IndexInsertError(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`DELETE FROM search_entries`).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`INSERT INTO search_entries`).
		WillReturnError(assert.AnError)

	err := s.Index(context.Background(), []model.SearchEntry{{Slug: "x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert entry x")
}

func TestPostgresStore_Search(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	rating := 4.8
	rows := pgxmock.NewRows([]string{"slug", "name", "category", "city", "rating", "reviews", "is_premium"}).
		AddRow("green-meadows-pune", "Green Meadows", "Elder Care", "Pune", &rating, 40, false).
		AddRow("anand-care-delhi", "Anand Care", "Nursing Homes", "Delhi", (*float64)(nil), 5, true)

	mock.ExpectQuery(`SELECT slug, name, category, city, rating, reviews, is_premium`).
		WithArgs("%care%", 10).
		WillReturnRows(rows)

	results, err := s.Search(context.Background(), "  Care ", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "green-meadows-pune", results[0].Slug)
	require.NotNil(t, results[0].Rating)
	assert.Equal(t, 4.8, *results[0].Rating)
	assert.Nil(t, results[1].Rating)
	assert.True(t, results[1].IsPremium)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SearchDefaultLimit(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT slug, name, category, city, rating, reviews, is_premium`).
		WithArgs("%x%", 20).
		WillReturnRows(pgxmock.NewRows([]string{"slug", "name", "category", "city", "rating", "reviews", "is_premium"}))

	results, err := s.Search(context.Background(), "x", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NoError(t, mock.ExpectationsWereMet())
}
