// Package fetcher downloads the self-described API metadata a client is generated from.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	generror "github.com/Alia5/resjs/internal/codegen/error"
	"github.com/Alia5/resjs/internal/codegen/meta"
	"github.com/Alia5/resjs/internal/log"
)

// Fetcher issues a single GET per metadata document. It never retries.
type Fetcher struct {
	client *http.Client
	raw    log.RawLogger
	logger *slog.Logger
}

type Option func(*Fetcher)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithRawLogger dumps every response body to raw.
func WithRawLogger(raw log.RawLogger) Option {
	return func(f *Fetcher) { f.raw = raw }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) { f.logger = logger }
}

func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: http.DefaultClient,
		raw:    log.NewRaw(nil),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads and decodes the metadata document at url.
// Every failure is returned as *generror.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (meta.Raw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &generror.FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	f.logger.Debug("Fetching metadata", "url", url)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &generror.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &generror.FetchError{URL: url, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	f.raw.Log(url, resp.StatusCode, body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &generror.FetchError{URL: url, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var raw meta.Raw
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &generror.FetchError{URL: url, Status: resp.StatusCode, Err: fmt.Errorf("decode metadata: %w", err)}
	}
	if raw == nil {
		raw = meta.Raw{}
	}
	f.logger.Debug("Fetched metadata", "url", url, "status", resp.StatusCode, "bytes", len(body))
	return raw, nil
}
