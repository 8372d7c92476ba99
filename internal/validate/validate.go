// Package validate checks the loaded dataset against its structural
// invariants before it is published.
package validate

import (
	"fmt"
	"sort"

	"github.com/careatlas/directory-cli/internal/dataset"
	"github.com/careatlas/directory-cli/internal/directory"
)

// Issue is one detected invariant violation.
type Issue struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

func (i Issue) String() string {
	return i.Kind + ": " + i.Detail
}

// Run checks every dataset invariant and returns the violations found. An
// empty result means the dataset is internally consistent.
func Run(store *dataset.Store) []Issue {
	dir := directory.New(store)
	var issues []Issue

	issues = append(issues, checkUniqueSlugs(store)...)
	issues = append(issues, checkCityCounts(store, dir)...)
	issues = append(issues, checkCategoryCounts(store, dir)...)
	issues = append(issues, checkCombos(store, dir)...)
	issues = append(issues, checkSearchIndex(store)...)

	return issues
}

// checkUniqueSlugs verifies the business slug is a usable primary key.
func checkUniqueSlugs(store *dataset.Store) []Issue {
	seen := map[string]bool{}
	var issues []Issue
	for _, b := range store.Businesses() {
		if seen[b.Slug] {
			issues = append(issues, Issue{
				Kind:   "duplicate_slug",
				Detail: fmt.Sprintf("business slug %q appears more than once", b.Slug),
			})
		}
		seen[b.Slug] = true
	}
	return issues
}

// checkCityCounts verifies each city's stored count matches its membership.
func checkCityCounts(store *dataset.Store, dir *directory.Directory) []Issue {
	var issues []Issue
	for citySlug, city := range store.Cities() {
		got := len(dir.BusinessesByCity(citySlug))
		if got != city.Count {
			issues = append(issues, Issue{
				Kind:   "city_count_mismatch",
				Detail: fmt.Sprintf("city %q stores count %d but has %d businesses", citySlug, city.Count, got),
			})
		}
	}
	return issues
}

func checkCategoryCounts(store *dataset.Store, dir *directory.Directory) []Issue {
	var issues []Issue
	for catSlug, cat := range store.Categories() {
		got := len(dir.BusinessesByCategory(catSlug))
		if got != cat.Count {
			issues = append(issues, Issue{
				Kind:   "category_count_mismatch",
				Detail: fmt.Sprintf("category %q stores count %d but has %d businesses", catSlug, cat.Count, got),
			})
		}
	}
	return issues
}

// checkCombos verifies each city+category combo lists exactly the businesses
// the corresponding filter query returns.
func checkCombos(store *dataset.Store, dir *directory.Directory) []Issue {
	var issues []Issue
	for key, combo := range store.CityCategories() {
		matched := dir.BusinessesByCityAndCategory(combo.CitySlug, combo.CategorySlug)

		want := append([]string(nil), combo.BusinessSlugs...)
		got := make([]string, len(matched))
		for i, b := range matched {
			got[i] = b.Slug
		}
		sort.Strings(want)
		sort.Strings(got)

		if !equalStrings(want, got) {
			issues = append(issues, Issue{
				Kind:   "combo_membership_mismatch",
				Detail: fmt.Sprintf("combo %q lists %d slugs but query matches %d", key, len(want), len(got)),
			})
		}
		if combo.Count != len(combo.BusinessSlugs) {
			issues = append(issues, Issue{
				Kind:   "combo_count_mismatch",
				Detail: fmt.Sprintf("combo %q stores count %d but lists %d slugs", key, combo.Count, len(combo.BusinessSlugs)),
			})
		}
	}
	return issues
}

// checkSearchIndex verifies every search entry refers to a real business.
func checkSearchIndex(store *dataset.Store) []Issue {
	known := map[string]bool{}
	for _, b := range store.Businesses() {
		known[b.Slug] = true
	}

	var issues []Issue
	for _, e := range store.SearchIndex() {
		if !known[e.Slug] {
			issues = append(issues, Issue{
				Kind:   "orphan_search_entry",
				Detail: fmt.Sprintf("search entry %q has no matching business", e.Slug),
			})
		}
	}
	if len(store.SearchIndex()) != len(store.Businesses()) {
		issues = append(issues, Issue{
			Kind:   "search_index_size_mismatch",
			Detail: fmt.Sprintf("search index has %d entries for %d businesses", len(store.SearchIndex()), len(store.Businesses())),
		})
	}
	return issues
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
