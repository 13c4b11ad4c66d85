package port

import "context"

// FetchedImage is a retrieved image ready to be attached inline to a model request.
type FetchedImage struct {
	Data        []byte
	Encoded     string // standard base64 of Data
	ContentType string
}

// ImageFetcher retrieves the bytes behind an image reference.
// Implementations return *domain.FetchError on failure.
type ImageFetcher interface {
	Fetch(ctx context.Context, ref string) (*FetchedImage, error)
}
