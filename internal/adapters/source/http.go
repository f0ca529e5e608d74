package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxDocumentBytes bounds the body read from a remote source.
const maxDocumentBytes = 8 << 20

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithTimeout bounds each fetch. Zero leaves the caller's context in charge.
func WithTimeout(d time.Duration) HTTPOption {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// HTTPFetcher GETs a JSON document from a URL.
type HTTPFetcher struct {
	url     string
	doer    HTTPDoer
	timeout time.Duration
}

// NewHTTP returns a fetcher for url. A nil doer uses http.DefaultClient.
func NewHTTP(url string, doer HTTPDoer, opts ...HTTPOption) *HTTPFetcher {
	if doer == nil {
		doer = http.DefaultClient
	}
	f := &HTTPFetcher{url: url, doer: doer}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (*HTTPFetcher) Name() string { return NameHTTP }

// URL returns the fetched location.
func (f *HTTPFetcher) URL() string { return f.url }

func (f *HTTPFetcher) Fetch(ctx context.Context) (Payload, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return Payload{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.doer.Do(req)
	if err != nil {
		return Payload{}, fmt.Errorf("get %s: %w", f.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDocumentBytes))
		return Payload{}, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return Payload{}, fmt.Errorf("read body: %w", err)
	}
	return Decode(body)
}
