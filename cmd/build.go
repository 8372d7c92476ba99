package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/careatlas/directory-cli/internal/fetcher"
	"github.com/careatlas/directory-cli/internal/sitegen"
)

var (
	buildSourcePath string
	buildPhotosPath string
	buildMetaPath   string
	buildOutDir     string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the site data files from extracted source records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		src, err := fetcher.ReadJSONFile[map[string]sitegen.SourceRecord](buildSourcePath)
		if err != nil {
			return err
		}

		photos := map[string]sitegen.PlacePhotos{}
		if buildPhotosPath != "" {
			if photos, err = fetcher.ReadJSONFile[map[string]sitegen.PlacePhotos](buildPhotosPath); err != nil {
				return err
			}
		}

		meta := sitegen.DefaultMetadata()
		if buildMetaPath != "" {
			overrides, err := readMetaOverrides(buildMetaPath)
			if err != nil {
				return err
			}
			meta = meta.Merge(overrides)
		}

		artifacts, err := sitegen.Generate(src, photos, meta)
		if err != nil {
			return err
		}

		outDir := buildOutDir
		if outDir == "" {
			outDir = cfg.Data.Dir
		}
		if err := sitegen.WriteArtifacts(artifacts, outDir); err != nil {
			return err
		}

		zap.L().Info("build complete",
			zap.String("out", outDir),
			zap.Int("businesses", len(artifacts.Businesses)),
		)
		return nil
	},
}

// readMetaOverrides loads the overrides file written by "meta sync".
func readMetaOverrides(path string) (sitegen.Metadata, error) {
	if _, err := os.Stat(path); err != nil {
		return sitegen.Metadata{}, eris.Wrapf(err, "build: metadata overrides %s", path)
	}
	type overridesFile struct {
		Cities     map[string]sitegen.CityMeta     `json:"cities"`
		Categories map[string]sitegen.CategoryMeta `json:"categories"`
	}
	f, err := fetcher.ReadJSONFile[overridesFile](path)
	if err != nil {
		return sitegen.Metadata{}, err
	}
	return sitegen.Metadata{Cities: f.Cities, Categories: f.Categories}, nil
}

func init() {
	buildCmd.Flags().StringVar(&buildSourcePath, "source", "", "path to extracted source records JSON (required)")
	buildCmd.Flags().StringVar(&buildPhotosPath, "photos", "", "path to place photos JSON")
	buildCmd.Flags().StringVar(&buildMetaPath, "meta", "", "path to metadata overrides JSON")
	buildCmd.Flags().StringVar(&buildOutDir, "out", "", "output directory (defaults to data dir)")
	_ = buildCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(buildCmd)
}
