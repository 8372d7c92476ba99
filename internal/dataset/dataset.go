// Package dataset loads the generated site data files and exposes them as an
// immutable in-memory record store.
package dataset

import (
	"github.com/careatlas/directory-cli/internal/model"
)

// Store holds the four canonical collections plus the search index, loaded
// once at process start. It is read-only for the process lifetime: accessors
// hand out the loaded values and callers must not mutate them.
type Store struct {
	businesses     []model.Business
	cities         map[string]model.City
	categories     map[string]model.Category
	cityCategories map[string]model.CityCategory
	searchIndex    []model.SearchEntry
}

// Businesses returns the full collection in file order. The generator sorts
// by rating then review count before writing, so file order is the display
// order everywhere downstream.
func (s *Store) Businesses() []model.Business {
	return s.businesses
}

// BusinessBySlug returns the business with the given slug. A linear scan is
// fine at the current scale of a few thousand records.
func (s *Store) BusinessBySlug(slug string) (model.Business, bool) {
	for _, b := range s.businesses {
		if b.Slug == slug {
			return b, true
		}
	}
	return model.Business{}, false
}

// Cities returns the city collection keyed by city slug.
func (s *Store) Cities() map[string]model.City {
	return s.cities
}

// CityBySlug returns the city entry for the given slug.
func (s *Store) CityBySlug(slug string) (model.City, bool) {
	c, ok := s.cities[slug]
	return c, ok
}

// Categories returns the category collection keyed by category slug.
func (s *Store) Categories() map[string]model.Category {
	return s.categories
}

// CategoryBySlug returns the category entry for the given slug.
func (s *Store) CategoryBySlug(slug string) (model.Category, bool) {
	c, ok := s.categories[slug]
	return c, ok
}

// CityCategories returns the materialized city+category combos keyed by
// "city_slug/category_slug".
func (s *Store) CityCategories() map[string]model.CityCategory {
	return s.cityCategories
}

// CityCategoryBySlug returns the combo entry for the given combined slug.
func (s *Store) CityCategoryBySlug(slug string) (model.CityCategory, bool) {
	c, ok := s.cityCategories[slug]
	return c, ok
}

// SearchIndex returns the client-search projection of the businesses.
func (s *Store) SearchIndex() []model.SearchEntry {
	return s.searchIndex
}

// New assembles a Store from already-decoded collections. Load is the usual
// entry point; New exists for tests and for the site-data generator, which
// produces the collections in memory.
func New(
	businesses []model.Business,
	cities map[string]model.City,
	categories map[string]model.Category,
	cityCategories map[string]model.CityCategory,
	searchIndex []model.SearchEntry,
) *Store {
	return &Store{
		businesses:     businesses,
		cities:         cities,
		categories:     categories,
		cityCategories: cityCategories,
		searchIndex:    searchIndex,
	}
}
