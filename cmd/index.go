package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/careatlas/directory-cli/internal/dataset"
	"github.com/careatlas/directory-cli/internal/search"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the search index from the loaded dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		store, err := dataset.Load(cfg.Data.Dir)
		if err != nil {
			return err
		}

		searchStore, err := search.Open(ctx, cfg.Search.Driver, cfg.Search.DatabaseURL)
		if err != nil {
			return err
		}
		defer searchStore.Close() //nolint:errcheck

		if err := searchStore.Migrate(ctx); err != nil {
			return err
		}
		if err := searchStore.Index(ctx, store.SearchIndex()); err != nil {
			return err
		}

		zap.L().Info("search index built",
			zap.String("driver", cfg.Search.Driver),
			zap.Int("entries", len(store.SearchIndex())),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
