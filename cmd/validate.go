package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/careatlas/directory-cli/internal/dataset"
	"github.com/careatlas/directory-cli/internal/geo"
	"github.com/careatlas/directory-cli/internal/validate"
)

var validateGeo bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dataset against its structural invariants",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := dataset.Load(cfg.Data.Dir)
		if err != nil {
			return err
		}

		issues := validate.Run(store)
		for _, issue := range issues {
			fmt.Println(issue)
		}

		var geoViolations int
		if validateGeo {
			if cfg.Geo.BoundariesPath == "" {
				return eris.New("boundaries shapefile is required for --geo (DIRECTORY_GEO_BOUNDARIES_PATH)")
			}
			bounds, err := geo.LoadBounds(cfg.Geo.BoundariesPath)
			if err != nil {
				return err
			}
			violations := geo.Check(bounds, store.Businesses())
			geoViolations = len(violations)
			for _, v := range violations {
				fmt.Printf("geo_out_of_bounds: %s at %.5f,%.5f outside %s\n", v.Slug, v.Lat, v.Lng, v.City)
			}
		}

		if len(issues) > 0 || geoViolations > 0 {
			return eris.Errorf("validation failed: %d issues, %d geo violations", len(issues), geoViolations)
		}

		zap.L().Info("dataset valid",
			zap.Int("businesses", len(store.Businesses())),
		)
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateGeo, "geo", false, "also check coordinates against city boundaries")
	rootCmd.AddCommand(validateCmd)
}
