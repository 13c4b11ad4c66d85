package fetcher

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"docassist/internal/domain"
	"docassist/internal/port"
)

// S3Fetcher resolves s3://bucket/key references through object storage.
type S3Fetcher struct {
	storage  port.ObjectStorage
	maxBytes int64
}

// NewS3Fetcher creates an S3Fetcher. maxBytes of zero disables the size check.
func NewS3Fetcher(storage port.ObjectStorage, maxBytes int64) *S3Fetcher {
	return &S3Fetcher{storage: storage, maxBytes: maxBytes}
}

func (f *S3Fetcher) Fetch(ctx context.Context, ref string) (*port.FetchedImage, error) {
	bucket, key, err := parseS3Ref(ref)
	if err != nil {
		return nil, &domain.FetchError{Ref: ref, Err: err}
	}

	data, err := f.storage.Download(ctx, bucket, key)
	if err != nil {
		return nil, &domain.FetchError{Ref: ref, Err: err}
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return nil, &domain.FetchError{Ref: ref, Err: errors.New("image exceeds size limit")}
	}
	return encode(data), nil
}

func parseS3Ref(ref string) (bucket, key string, err error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", "", err
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "s3" || u.Host == "" || key == "" {
		return "", "", errors.New("malformed s3 reference, want s3://bucket/key")
	}
	return u.Host, key, nil
}
