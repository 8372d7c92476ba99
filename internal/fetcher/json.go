package fetcher

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// ReadJSONFile decodes a whole JSON file into T.
func ReadJSONFile[T any](path string) (T, error) {
	var v T

	f, err := os.Open(path)
	if err != nil {
		return v, eris.Wrapf(err, "json: open %s", filepath.Base(path))
	}
	defer f.Close() //nolint:errcheck

	if err := json.NewDecoder(f).Decode(&v); err != nil {
		return v, eris.Wrapf(err, "json: decode %s", filepath.Base(path))
	}
	return v, nil
}
