package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/careatlas/directory-cli/internal/fetcher"
)

var fetchURL string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a dataset snapshot into the data directory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		url := fetchURL
		if url == "" {
			url = cfg.Fetch.URL
		}
		if url == "" {
			return eris.New("snapshot url is required (--url or DIRECTORY_FETCH_URL)")
		}

		files, err := fetcher.FetchSnapshot(cmd.Context(), url, cfg.Data.Dir, fetcher.Options{
			HTTP: fetcher.HTTPOptions{
				Timeout:    time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
				MaxRetries: cfg.Fetch.MaxRetries,
				RatePerSec: cfg.Fetch.RatePerSec,
			},
			FTP: fetcher.FTPOptions{
				Timeout: time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
			},
		})
		if err != nil {
			return err
		}

		zap.L().Info("fetch complete",
			zap.String("url", url),
			zap.Strings("files", files),
		)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "snapshot URL (http, https, or ftp)")
	rootCmd.AddCommand(fetchCmd)
}
