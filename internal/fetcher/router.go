package fetcher

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"docassist/internal/domain"
	"docassist/internal/port"
)

// Router dispatches a reference to the fetcher registered for its URL scheme.
type Router struct {
	byScheme map[string]port.ImageFetcher
}

// NewRouter creates a Router serving http and https with httpFetcher.
func NewRouter(httpFetcher port.ImageFetcher) *Router {
	return &Router{byScheme: map[string]port.ImageFetcher{
		"http":  httpFetcher,
		"https": httpFetcher,
	}}
}

// Handle registers f for scheme, replacing any previous registration.
func (r *Router) Handle(scheme string, f port.ImageFetcher) {
	r.byScheme[strings.ToLower(scheme)] = f
}

func (r *Router) Fetch(ctx context.Context, ref string) (*port.FetchedImage, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, &domain.FetchError{Ref: ref, Err: err}
	}
	f, ok := r.byScheme[strings.ToLower(u.Scheme)]
	if !ok {
		return nil, &domain.FetchError{Ref: ref, Err: fmt.Errorf("unsupported image reference scheme %q", u.Scheme)}
	}
	return f.Fetch(ctx, ref)
}
