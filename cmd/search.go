package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careatlas/directory-cli/internal/search"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search indexed listings",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := search.Open(ctx, cfg.Search.Driver, cfg.Search.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close() //nolint:errcheck

		results, err := store.Search(ctx, strings.Join(args, " "), searchLimit)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("no results")
			return nil
		}
		for _, r := range results {
			rating := "unrated"
			if r.Rating != nil {
				rating = fmt.Sprintf("%.1f (%d reviews)", *r.Rating, r.Reviews)
			}
			premium := ""
			if r.IsPremium {
				premium = " [premium]"
			}
			fmt.Printf("%s | %s, %s | %s%s\n", r.Name, r.Category, r.City, rating, premium)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum results")
	rootCmd.AddCommand(searchCmd)
}
