// Package search persists the search index in a queryable store so the CLI
// and the serve API can answer free-text listing searches.
package search

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/careatlas/directory-cli/internal/model"
)

// Result is one search hit.
type Result struct {
	Slug      string   `json:"slug"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	City      string   `json:"city"`
	Rating    *float64 `json:"rating"`
	Reviews   int      `json:"reviews"`
	IsPremium bool     `json:"is_premium"`
}

// Store defines the search-index persistence interface.
type Store interface {
	// Migrate creates the schema if needed.
	Migrate(ctx context.Context) error

	// Index replaces the stored index with the given entries.
	Index(ctx context.Context, entries []model.SearchEntry) error

	// Search returns up to limit entries matching the query, premium and
	// highly rated listings first.
	Search(ctx context.Context, query string, limit int) ([]Result, error)

	Close() error
}

// Open creates a Store for the configured driver.
func Open(ctx context.Context, driver, databaseURL string) (Store, error) {
	switch driver {
	case "sqlite":
		return NewSQLite(databaseURL)
	case "postgres":
		return NewPostgres(ctx, databaseURL)
	default:
		return nil, eris.Errorf("search: unknown driver %q", driver)
	}
}
