package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/careatlas/directory-cli/internal/model"
)

// File names written by the site-data generator and expected in the data dir.
const (
	BusinessesFile   = "businesses.json"
	CitiesFile       = "cities.json"
	CategoriesFile   = "categories.json"
	CityCategoryFile = "city_category.json"
	SearchIndexFile  = "search_index.json"
)

// Load reads the five site data files from dir. A missing or malformed file
// is a fatal startup error: there is no partial-dataset mode, the caller is
// expected to abort rather than serve corrupt data.
func Load(dir string) (*Store, error) {
	var businesses []model.Business
	if err := readJSON(filepath.Join(dir, BusinessesFile), &businesses); err != nil {
		return nil, err
	}

	cities := map[string]model.City{}
	if err := readJSON(filepath.Join(dir, CitiesFile), &cities); err != nil {
		return nil, err
	}

	categories := map[string]model.Category{}
	if err := readJSON(filepath.Join(dir, CategoriesFile), &categories); err != nil {
		return nil, err
	}

	cityCategories := map[string]model.CityCategory{}
	if err := readJSON(filepath.Join(dir, CityCategoryFile), &cityCategories); err != nil {
		return nil, err
	}

	var searchIndex []model.SearchEntry
	if err := readJSON(filepath.Join(dir, SearchIndexFile), &searchIndex); err != nil {
		return nil, err
	}

	zap.L().Info("dataset loaded",
		zap.String("dir", dir),
		zap.Int("businesses", len(businesses)),
		zap.Int("cities", len(cities)),
		zap.Int("categories", len(categories)),
		zap.Int("city_category_combos", len(cityCategories)),
	)

	return New(businesses, cities, categories, cityCategories, searchIndex), nil
}

func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return eris.Wrapf(err, "dataset: open %s", filepath.Base(path))
	}
	defer f.Close() //nolint:errcheck

	dec := json.NewDecoder(f)
	if err := dec.Decode(v); err != nil {
		return eris.Wrapf(err, "dataset: decode %s", filepath.Base(path))
	}
	return nil
}
