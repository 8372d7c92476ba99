package search

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/careatlas/directory-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS search_entries (
	slug          TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	category      TEXT NOT NULL,
	category_slug TEXT NOT NULL,
	city          TEXT NOT NULL,
	city_slug     TEXT NOT NULL,
	rating        REAL,
	reviews       INTEGER NOT NULL DEFAULT 0,
	phone         TEXT NOT NULL DEFAULT '',
	specialities  TEXT NOT NULL DEFAULT '',
	is_premium    INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_search_entries_city_slug ON search_entries(city_slug);
CREATE INDEX IF NOT EXISTS idx_search_entries_category_slug ON search_entries(category_slug);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Index(ctx context.Context, entries []model.SearchEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin index tx")
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM search_entries`); err != nil {
		return eris.Wrap(err, "sqlite: clear index")
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO search_entries
			(slug, name, category, category_slug, city, city_slug, rating, reviews, phone, specialities, is_premium)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return eris.Wrap(err, "sqlite: prepare insert")
	}
	defer stmt.Close() //nolint:errcheck

	for _, e := range entries {
		var rating any
		if e.Rating != nil {
			rating = *e.Rating
		}
		_, err := stmt.ExecContext(ctx,
			e.Slug, e.Name, e.Category, e.CategorySlug, e.City, e.CitySlug,
			rating, e.Reviews, e.Phone, strings.Join(e.Specialities, "; "), e.IsPremium,
		)
		if err != nil {
			return eris.Wrapf(err, "sqlite: insert entry %s", e.Slug)
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit index tx")
}

func (s *SQLiteStore) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	rows, err := s.db.QueryContext(ctx, `
		SELECT slug, name, category, city, rating, reviews, is_premium
		FROM search_entries
		WHERE lower(name) LIKE ?
		   OR lower(city) LIKE ?
		   OR lower(category) LIKE ?
		   OR lower(specialities) LIKE ?
		ORDER BY is_premium DESC, rating DESC NULLS LAST, reviews DESC
		LIMIT ?`,
		pattern, pattern, pattern, pattern, limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: search")
	}
	defer rows.Close() //nolint:errcheck

	var results []Result
	for rows.Next() {
		var r Result
		var rating sql.NullFloat64
		if err := rows.Scan(&r.Slug, &r.Name, &r.Category, &r.City, &rating, &r.Reviews, &r.IsPremium); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan result")
		}
		if rating.Valid {
			r.Rating = &rating.Float64
		}
		results = append(results, r)
	}
	return results, eris.Wrap(rows.Err(), "sqlite: iterate results")
}
