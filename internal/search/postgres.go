package search

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/careatlas/directory-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool used by the Postgres search store.
// pgxmock implements it for tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS search_entries (
	slug          TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	category      TEXT NOT NULL,
	category_slug TEXT NOT NULL,
	city          TEXT NOT NULL,
	city_slug     TEXT NOT NULL,
	rating        DOUBLE PRECISION,
	reviews       INTEGER NOT NULL DEFAULT 0,
	phone         TEXT NOT NULL DEFAULT '',
	specialities  TEXT NOT NULL DEFAULT '',
	is_premium    BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_search_entries_city_slug ON search_entries(city_slug);
CREATE INDEX IF NOT EXISTS idx_search_entries_category_slug ON search_entries(category_slug);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) Index(ctx context.Context, entries []model.SearchEntry) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM search_entries`); err != nil {
		return eris.Wrap(err, "postgres: clear index")
	}

	for _, e := range entries {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO search_entries
				(slug, name, category, category_slug, city, city_slug, rating, reviews, phone, specialities, is_premium)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			e.Slug, e.Name, e.Category, e.CategorySlug, e.City, e.CitySlug,
			e.Rating, e.Reviews, e.Phone, strings.Join(e.Specialities, "; "), e.IsPremium,
		)
		if err != nil {
			return eris.Wrapf(err, "postgres: insert entry %s", e.Slug)
		}
	}
	return nil
}

func (s *PostgresStore) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	rows, err := s.pool.Query(ctx, `
		SELECT slug, name, category, city, rating, reviews, is_premium
		FROM search_entries
		WHERE lower(name) LIKE $1
		   OR lower(city) LIKE $1
		   OR lower(category) LIKE $1
		   OR lower(specialities) LIKE $1
		ORDER BY is_premium DESC, rating DESC NULLS LAST, reviews DESC
		LIMIT $2`,
		pattern, limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: search")
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Slug, &r.Name, &r.Category, &r.City, &r.Rating, &r.Reviews, &r.IsPremium); err != nil {
			return nil, eris.Wrap(err, "postgres: scan result")
		}
		results = append(results, r)
	}
	return results, eris.Wrap(rows.Err(), "postgres: iterate results")
}
