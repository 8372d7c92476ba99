// Package fetcher downloads dataset snapshots over HTTP or FTP and unpacks
// them into the local data directory.
package fetcher

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Options configures snapshot retrieval.
type Options struct {
	HTTP HTTPOptions
	FTP  FTPOptions
}

// FetchSnapshot downloads the dataset snapshot at rawURL into destDir. ZIP
// archives are extracted; any other file is placed in destDir as-is. Returns
// the list of resulting file paths.
func FetchSnapshot(ctx context.Context, rawURL, destDir string, opts Options) ([]string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: parse snapshot url")
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, eris.Wrap(err, "fetcher: create dest dir")
	}

	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		name = "snapshot"
	}
	downloadPath := filepath.Join(destDir, name)

	switch u.Scheme {
	case "http", "https":
		if err := NewHTTP(opts.HTTP).DownloadToFile(ctx, rawURL, downloadPath); err != nil {
			return nil, err
		}
	case "ftp":
		if err := NewFTP(opts.FTP).DownloadToFile(ctx, rawURL, downloadPath); err != nil {
			return nil, err
		}
	default:
		return nil, eris.Errorf("fetcher: unsupported scheme %q", u.Scheme)
	}

	if !strings.EqualFold(filepath.Ext(name), ".zip") {
		return []string{downloadPath}, nil
	}

	extracted, err := ExtractZIP(downloadPath, destDir)
	if err != nil {
		return nil, err
	}
	_ = os.Remove(downloadPath)

	zap.L().Info("snapshot fetched",
		zap.String("url", rawURL),
		zap.Int("files", len(extracted)),
	)
	return extracted, nil
}
