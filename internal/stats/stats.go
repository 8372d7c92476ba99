// Package stats summarizes a loaded dataset for operator reporting.
package stats

import (
	"sort"

	"github.com/careatlas/directory-cli/internal/dataset"
	"github.com/careatlas/directory-cli/internal/directory"
)

// Summary is the dataset report emitted by the stats command.
type Summary struct {
	Businesses     int            `json:"businesses" yaml:"businesses"`
	Cities         int            `json:"cities" yaml:"cities"`
	Categories     int            `json:"categories" yaml:"categories"`
	CityCategories int            `json:"city_categories" yaml:"city_categories"`
	CitySpecs      int            `json:"city_speciality_combos" yaml:"city_speciality_combos"`
	Specialities   int            `json:"specialities" yaml:"specialities"`
	ByCategory     map[string]int `json:"by_category" yaml:"by_category"`
	ByCity         map[string]int `json:"by_city" yaml:"by_city"`
	FacilityTypes  map[string]int `json:"facility_types" yaml:"facility_types"`
	TopSpeciality  []NameCount    `json:"top_specialities" yaml:"top_specialities"`
	Quality        Quality        `json:"quality" yaml:"quality"`
	EstimatedPages int            `json:"estimated_pages" yaml:"estimated_pages"`
}

// NameCount pairs a label with its number of occurrences.
type NameCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Quality counts listings carrying each content attribute.
type Quality struct {
	Premium          int `json:"premium" yaml:"premium"`
	WithDescription  int `json:"with_description" yaml:"with_description"`
	WithSpecialities int `json:"with_specialities" yaml:"with_specialities"`
	WithFeatures     int `json:"with_features" yaml:"with_features"`
	WithPhone        int `json:"with_phone" yaml:"with_phone"`
	WithWebsite      int `json:"with_website" yaml:"with_website"`
}

// Descriptions shorter than this are counted as missing: the extraction
// pipeline emits stub sentences below it.
const minDescriptionLen = 100

// Compute builds the dataset summary.
func Compute(store *dataset.Store) Summary {
	dir := directory.New(store)

	s := Summary{
		Businesses:     len(store.Businesses()),
		Cities:         len(store.Cities()),
		Categories:     len(store.Categories()),
		CityCategories: len(store.CityCategories()),
		ByCategory:     map[string]int{},
		ByCity:         map[string]int{},
		FacilityTypes:  map[string]int{},
	}

	specCounts := map[string]int{}
	for _, b := range store.Businesses() {
		s.ByCategory[b.Category]++
		s.ByCity[b.City]++
		s.FacilityTypes[b.FacilityType]++
		for _, sp := range b.Specialities {
			specCounts[sp]++
		}

		if b.IsPremium {
			s.Quality.Premium++
		}
		if len(b.Description) > minDescriptionLen {
			s.Quality.WithDescription++
		}
		if len(b.Specialities) > 0 {
			s.Quality.WithSpecialities++
		}
		if len(b.FacilityFeatures) > 0 {
			s.Quality.WithFeatures++
		}
		if b.Phone != "" {
			s.Quality.WithPhone++
		}
		if b.Website != "" {
			s.Quality.WithWebsite++
		}
	}

	s.TopSpeciality = topN(specCounts, 10)
	s.Specialities = len(dir.Specialities())
	s.CitySpecs = len(dir.CitySpecialityCombos())

	// Homepage, directory, map, about/contact/feedback/etc, plus one page
	// per city, category, combo, and business.
	s.EstimatedPages = 3 + 4 +
		len(store.Cities()) +
		len(store.Categories()) +
		len(store.CityCategories()) +
		len(store.Businesses())

	return s
}

func topN(counts map[string]int, n int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
