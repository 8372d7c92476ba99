package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/careatlas/directory-cli/internal/importer"
)

var importOutPath string

var importCmd = &cobra.Command{
	Use:   "import [xlsx files...]",
	Short: "Import facility listings from source spreadsheets",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := importer.ImportFiles(cmd.Context(), args)
		if err != nil {
			return err
		}

		f, err := os.Create(importOutPath)
		if err != nil {
			return eris.Wrapf(err, "import: create %s", importOutPath)
		}
		defer f.Close() //nolint:errcheck

		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return eris.Wrap(err, "import: encode records")
		}

		zap.L().Info("import complete",
			zap.Int("records", len(records)),
			zap.String("out", importOutPath),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importOutPath, "out", "extracted.json", "output path for source records JSON")
	rootCmd.AddCommand(importCmd)
}
