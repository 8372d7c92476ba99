package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/careatlas/directory-cli/internal/dataset"
	"github.com/careatlas/directory-cli/internal/stats"
)

var statsFormat string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the loaded dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := dataset.Load(cfg.Data.Dir)
		if err != nil {
			return err
		}

		summary := stats.Compute(store)

		switch statsFormat {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return eris.Wrap(enc.Encode(summary), "stats: encode json")
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close() //nolint:errcheck
			return eris.Wrap(enc.Encode(summary), "stats: encode yaml")
		default:
			return eris.Errorf("unknown format %q (use json or yaml)", statsFormat)
		}
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsFormat, "format", "yaml", "output format: json or yaml")
	rootCmd.AddCommand(statsCmd)
}
