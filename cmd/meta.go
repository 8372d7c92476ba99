package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/careatlas/directory-cli/internal/metasync"
	"github.com/careatlas/directory-cli/internal/sitegen"
	"github.com/careatlas/directory-cli/pkg/notion"
)

var metaOutPath string

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Editorial metadata commands",
}

var metaSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull city and category metadata from Notion",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if cfg.Notion.Token == "" {
			return eris.New("notion token is required (DIRECTORY_NOTION_TOKEN)")
		}

		client := notion.NewClient(cfg.Notion.Token)

		cities := map[string]sitegen.CityMeta{}
		if cfg.Notion.CityDB != "" {
			var err error
			if cities, err = metasync.SyncCities(ctx, client, cfg.Notion.CityDB); err != nil {
				return err
			}
		}

		categories := map[string]sitegen.CategoryMeta{}
		if cfg.Notion.CategoryDB != "" {
			var err error
			if categories, err = metasync.SyncCategories(ctx, client, cfg.Notion.CategoryDB); err != nil {
				return err
			}
		}

		if len(cities) == 0 && len(categories) == 0 {
			return eris.New("no metadata databases configured (DIRECTORY_NOTION_CITY_DB, DIRECTORY_NOTION_CATEGORY_DB)")
		}

		f, err := os.Create(metaOutPath)
		if err != nil {
			return eris.Wrapf(err, "meta: create %s", metaOutPath)
		}
		defer f.Close() //nolint:errcheck

		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{
			"cities":     cities,
			"categories": categories,
		}); err != nil {
			return eris.Wrap(err, "meta: encode overrides")
		}

		zap.L().Info("metadata sync complete",
			zap.Int("cities", len(cities)),
			zap.Int("categories", len(categories)),
			zap.String("out", metaOutPath),
		)
		return nil
	},
}

func init() {
	metaSyncCmd.Flags().StringVar(&metaOutPath, "out", "meta_overrides.json", "output path for metadata overrides")
	metaCmd.AddCommand(metaSyncCmd)
	rootCmd.AddCommand(metaCmd)
}
