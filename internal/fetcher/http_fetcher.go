package fetcher

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"docassist/internal/config"
	"docassist/internal/domain"
	"docassist/internal/port"
)

// HTTPFetcher retrieves images with a plain GET. Only 2xx responses are accepted.
type HTTPFetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewHTTPFetcher creates an HTTPFetcher from the fetch settings.
func NewHTTPFetcher(cfg *config.FetchConfig) *HTTPFetcher {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &HTTPFetcher{
		client:   &http.Client{Timeout: timeout},
		maxBytes: cfg.MaxImageBytes(),
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, ref string) (*port.FetchedImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, http.NoBody)
	if err != nil {
		return nil, &domain.FetchError{Ref: ref, Err: fmt.Errorf("creating request: %w", err)}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Ref: ref, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{Ref: ref, Status: resp.StatusCode}
	}

	data, err := readLimited(resp.Body, f.maxBytes)
	if err != nil {
		return nil, &domain.FetchError{Ref: ref, Err: err}
	}
	return encode(data), nil
}

// readLimited reads r fully. A limit of zero or less means unlimited.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("image exceeds %d bytes", limit)
	}
	return data, nil
}

func encode(data []byte) *port.FetchedImage {
	return &port.FetchedImage{
		Data:        data,
		Encoded:     base64.StdEncoding.EncodeToString(data),
		ContentType: domain.ImageContentType,
	}
}
