package fetcher

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HTTPOptions configures the HTTP downloader.
type HTTPOptions struct {
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	RatePerSec float64
}

// HTTPFetcher downloads files over HTTP with retry and rate limiting.
type HTTPFetcher struct {
	client  *http.Client
	opts    HTTPOptions
	limiter *rate.Limiter
}

// NewHTTP creates an HTTPFetcher with the given options.
func NewHTTP(opts HTTPOptions) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "directory-cli/1.0"
	}
	if opts.RatePerSec == 0 {
		opts.RatePerSec = 2
	}
	return &HTTPFetcher{
		client:  &http.Client{Timeout: opts.Timeout},
		opts:    opts,
		limiter: rate.NewLimiter(rate.Limit(opts.RatePerSec), 1),
	}
}

// DownloadToFile fetches the URL and writes the body to dest.
func (f *HTTPFetcher) DownloadToFile(ctx context.Context, url, dest string) error {
	body, err := f.download(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close() //nolint:errcheck

	out, err := os.Create(dest)
	if err != nil {
		return eris.Wrapf(err, "http: create %s", dest)
	}
	defer out.Close() //nolint:errcheck

	if _, err := io.Copy(out, body); err != nil {
		return eris.Wrap(err, "http: write download")
	}
	return nil
}

func (f *HTTPFetcher) download(ctx context.Context, url string) (io.ReadCloser, error) {
	var lastErr error
	for attempt := 0; attempt < f.opts.MaxRetries; attempt++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "http: rate limiter wait")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, eris.Wrap(err, "http: build request")
		}
		req.Header.Set("User-Agent", f.opts.UserAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			lastErr = err
			zap.L().Warn("http download failed, retrying",
				zap.String("url", url),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			f.backoff(ctx, attempt)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			lastErr = eris.Errorf("http: status %d", resp.StatusCode)
			// Retry server-side failures; give up on client errors.
			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				f.backoff(ctx, attempt)
				continue
			}
			return nil, lastErr
		}

		return resp.Body, nil
	}
	return nil, eris.Wrapf(lastErr, "http: download %s after %d attempts", url, f.opts.MaxRetries)
}

func (f *HTTPFetcher) backoff(ctx context.Context, attempt int) {
	delay := time.Duration(1<<attempt) * time.Second
	select {
	case <-time.After(delay):
	case <-ctx.Done():
	}
}
