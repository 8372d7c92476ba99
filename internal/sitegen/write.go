package sitegen

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/careatlas/directory-cli/internal/dataset"
)

// WriteArtifacts writes the five generated JSON files into dir, creating it
// if needed. File names match what the dataset loader expects.
func WriteArtifacts(a *Artifacts, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrap(err, "sitegen: create output dir")
	}

	files := map[string]any{
		dataset.BusinessesFile:   a.Businesses,
		dataset.CitiesFile:       a.Cities,
		dataset.CategoriesFile:   a.Categories,
		dataset.CityCategoryFile: a.CityCategories,
		dataset.SearchIndexFile:  a.SearchIndex,
	}

	for name, data := range files {
		if err := writeJSON(filepath.Join(dir, name), data); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "sitegen: create %s", filepath.Base(path))
	}
	defer f.Close() //nolint:errcheck

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return eris.Wrapf(err, "sitegen: encode %s", filepath.Base(path))
	}
	return nil
}
