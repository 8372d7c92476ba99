package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		BusinessesFile: `[
			{"slug": "alpha-care-delhi", "name": "Alpha Care", "city": "Delhi", "city_slug": "delhi", "category": "Nursing Homes", "category_slug": "nursing-homes", "rating": 4.5, "reviews": 10},
			{"slug": "beta-care-delhi", "name": "Beta Care", "city": "Delhi", "city_slug": "delhi", "category": "Elder Care", "category_slug": "elder-care", "rating": null, "reviews": 0}
		]`,
		CitiesFile: `{
			"delhi": {"display_name": "Delhi", "slug": "delhi", "count": 2, "category_counts": {"Nursing Homes": 1, "Elder Care": 1}}
		}`,
		CategoriesFile: `{
			"nursing-homes": {"display_name": "Nursing Homes", "slug": "nursing-homes", "count": 1},
			"elder-care": {"display_name": "Elder Care", "slug": "elder-care", "count": 1}
		}`,
		CityCategoryFile: `{
			"delhi/nursing-homes": {"city_slug": "delhi", "category_slug": "nursing-homes", "slug": "delhi/nursing-homes", "business_slugs": ["alpha-care-delhi"], "count": 1}
		}`,
		SearchIndexFile: `[
			{"slug": "alpha-care-delhi", "name": "Alpha Care"},
			{"slug": "beta-care-delhi", "name": "Beta Care"}
		]`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	t.Parallel()

	store, err := Load(writeDataDir(t))
	require.NoError(t, err)

	assert.Len(t, store.Businesses(), 2)
	assert.Len(t, store.Cities(), 1)
	assert.Len(t, store.Categories(), 2)
	assert.Len(t, store.CityCategories(), 1)
	assert.Len(t, store.SearchIndex(), 2)

	b, ok := store.BusinessBySlug("alpha-care-delhi")
	require.True(t, ok)
	require.NotNil(t, b.Rating)
	assert.Equal(t, 4.5, *b.Rating)

	b, ok = store.BusinessBySlug("beta-care-delhi")
	require.True(t, ok)
	assert.Nil(t, b.Rating)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	dir := writeDataDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, CitiesFile)))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), CitiesFile)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	dir := writeDataDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, BusinessesFile), []byte(`{not json`), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), BusinessesFile)
}

func TestLoadEmptyDir(t *testing.T) {
	t.Parallel()

	_, err := Load(t.TempDir())
	require.Error(t, err)
}
