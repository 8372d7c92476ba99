package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careatlas/directory-cli/internal/dataset"
	"github.com/careatlas/directory-cli/internal/model"
	"github.com/careatlas/directory-cli/internal/sitegen"
)

func ptr(v float64) *float64 { return &v }

func generatedStore(t *testing.T) *dataset.Store {
	t.Helper()

	src := map[string]sitegen.SourceRecord{
		"p1": {Name: "Shanti Nursing Home", Category: "Nursing Homes", City: "Mumbai", Rating: ptr(4.5), Reviews: 100},
		"p2": {Name: "Green Meadows", Category: "Elder Care", City: "Mumbai", Rating: ptr(4.8), Reviews: 50},
		"p3": {Name: "Anand Care", Category: "Nursing Homes", City: "Delhi", Reviews: 5},
	}
	a, err := sitegen.Generate(src, nil, sitegen.DefaultMetadata())
	require.NoError(t, err)
	return dataset.New(a.Businesses, a.Cities, a.Categories, a.CityCategories, a.SearchIndex)
}

func kinds(issues []Issue) []string {
	out := make([]string, len(issues))
	for i, iss := range issues {
		out[i] = iss.Kind
	}
	return out
}

func TestRunCleanDataset(t *testing.T) {
	t.Parallel()

	issues := Run(generatedStore(t))
	assert.Empty(t, issues)
}

func TestRunDuplicateSlug(t *testing.T) {
	t.Parallel()

	businesses := []model.Business{
		{Slug: "same-slug", CitySlug: "delhi", CategorySlug: "nursing-homes"},
		{Slug: "same-slug", CitySlug: "delhi", CategorySlug: "nursing-homes"},
	}
	store := dataset.New(businesses, nil, nil, nil, []model.SearchEntry{
		{Slug: "same-slug"}, {Slug: "same-slug"},
	})

	issues := Run(store)
	assert.Contains(t, kinds(issues), "duplicate_slug")
}

func TestRunCityCountMismatch(t *testing.T) {
	t.Parallel()

	businesses := []model.Business{
		{Slug: "a", CitySlug: "delhi"},
	}
	cities := map[string]model.City{
		"delhi": {Slug: "delhi", Count: 5},
	}
	store := dataset.New(businesses, cities, nil, nil, []model.SearchEntry{{Slug: "a"}})

	issues := Run(store)
	assert.Contains(t, kinds(issues), "city_count_mismatch")
}

func TestRunCategoryCountMismatch(t *testing.T) {
	t.Parallel()

	businesses := []model.Business{
		{Slug: "a", CategorySlug: "nursing-homes"},
	}
	categories := map[string]model.Category{
		"nursing-homes": {Slug: "nursing-homes", Count: 2},
	}
	store := dataset.New(businesses, nil, categories, nil, []model.SearchEntry{{Slug: "a"}})

	issues := Run(store)
	assert.Contains(t, kinds(issues), "category_count_mismatch")
}

func TestRunComboMismatches(t *testing.T) {
	t.Parallel()

	businesses := []model.Business{
		{Slug: "a", CitySlug: "delhi", CategorySlug: "nursing-homes"},
		{Slug: "b", CitySlug: "delhi", CategorySlug: "nursing-homes"},
	}
	combos := map[string]model.CityCategory{
		"delhi/nursing-homes": {
			CitySlug:     "delhi",
			CategorySlug: "nursing-homes",
			Slug:         "delhi/nursing-homes",
			// Lists only one of the two matching businesses, and the stored
			// count disagrees with the listed slugs.
			BusinessSlugs: []string{"a"},
			Count:         3,
		},
	}
	store := dataset.New(businesses, nil, nil, combos, []model.SearchEntry{{Slug: "a"}, {Slug: "b"}})

	got := kinds(Run(store))
	assert.Contains(t, got, "combo_membership_mismatch")
	assert.Contains(t, got, "combo_count_mismatch")
}

func TestRunSearchIndexIssues(t *testing.T) {
	t.Parallel()

	businesses := []model.Business{
		{Slug: "a", CitySlug: "delhi"},
	}
	searchIndex := []model.SearchEntry{
		{Slug: "a"},
		{Slug: "ghost"},
	}
	store := dataset.New(businesses, nil, nil, nil, searchIndex)

	got := kinds(Run(store))
	assert.Contains(t, got, "orphan_search_entry")
	assert.Contains(t, got, "search_index_size_mismatch")
}

func TestIssueString(t *testing.T) {
	t.Parallel()

	i := Issue{Kind: "duplicate_slug", Detail: "slug x appears twice"}
	assert.Equal(t, "duplicate_slug: slug x appears twice", i.String())
}
