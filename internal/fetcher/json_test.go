package fetcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSONFile(t *testing.T) {
	t.Parallel()

	type record struct {
		Name string `json:"name"`
		City string `json:"city"`
	}

	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"r1": {"name": "Shanti", "city": "Mumbai"}}`), 0o644))

	got, err := ReadJSONFile[map[string]record](path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Shanti", got["r1"].Name)
}

func TestReadJSONFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ReadJSONFile[map[string]string](filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.json")
}

func TestReadJSONFileMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o644))

	_, err := ReadJSONFile[map[string]string](path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
