package fetcher_test

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docassist/internal/config"
	"docassist/internal/domain"
	"docassist/internal/fetcher"
	"docassist/internal/port"
	"docassist/mocks"
)

var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

func newHTTPFetcher() *fetcher.HTTPFetcher {
	return fetcher.NewHTTPFetcher(&config.FetchConfig{TimeoutSecs: 5, MaxImageMB: 1})
}

// --- HTTPFetcher ---

func TestHTTPFetcher_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(jpegBytes)
	}))
	defer server.Close()

	img, err := newHTTPFetcher().Fetch(context.Background(), server.URL+"/scan.jpg")

	require.NoError(t, err)
	assert.Equal(t, jpegBytes, img.Data)
	assert.Equal(t, base64.StdEncoding.EncodeToString(jpegBytes), img.Encoded)
	// declared type is fixed regardless of the server's header
	assert.Equal(t, "image/jpeg", img.ContentType)
}

func TestHTTPFetcher_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusBadGateway} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := newHTTPFetcher().Fetch(context.Background(), server.URL)
		server.Close()

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFetchFailed)
		var fetchErr *domain.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, status, fetchErr.Status)
	}
}

func TestHTTPFetcher_404Message(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := newHTTPFetcher().Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.Equal(t, "Image fetch failed with status 404", err.Error())
}

func TestHTTPFetcher_TooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", (1<<20)+1)))
	}))
	defer server.Close()

	_, err := newHTTPFetcher().Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestHTTPFetcher_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newHTTPFetcher().Fetch(context.Background(), url)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestHTTPFetcher_MalformedURL(t *testing.T) {
	_, err := newHTTPFetcher().Fetch(context.Background(), "http://[::1")

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

// --- S3Fetcher ---

func TestS3Fetcher_Success(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Download", mock.Anything, "scans", "tenant/form.jpg").Return(jpegBytes, nil)

	img, err := fetcher.NewS3Fetcher(storage, 1<<20).Fetch(context.Background(), "s3://scans/tenant/form.jpg")

	require.NoError(t, err)
	assert.Equal(t, jpegBytes, img.Data)
	assert.Equal(t, "image/jpeg", img.ContentType)
	storage.AssertExpectations(t)
}

func TestS3Fetcher_MalformedRef(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	f := fetcher.NewS3Fetcher(storage, 0)

	for _, ref := range []string{"s3://bucket-only", "s3:///key", "https://bucket/key"} {
		_, err := f.Fetch(context.Background(), ref)
		assert.ErrorIs(t, err, domain.ErrFetchFailed, ref)
	}
	storage.AssertNotCalled(t, "Download", mock.Anything, mock.Anything, mock.Anything)
}

func TestS3Fetcher_DownloadError(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	cause := errors.New("NoSuchKey")
	storage.On("Download", mock.Anything, "scans", "a.jpg").Return(nil, cause)

	_, err := fetcher.NewS3Fetcher(storage, 0).Fetch(context.Background(), "s3://scans/a.jpg")

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorIs(t, err, cause)
}

func TestS3Fetcher_TooLarge(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Download", mock.Anything, "scans", "a.jpg").Return(jpegBytes, nil)

	_, err := fetcher.NewS3Fetcher(storage, 4).Fetch(context.Background(), "s3://scans/a.jpg")

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

// --- Router ---

func TestRouter_DispatchesByScheme(t *testing.T) {
	httpF := new(mocks.MockImageFetcher)
	s3F := new(mocks.MockImageFetcher)
	want := &port.FetchedImage{Data: jpegBytes}

	httpF.On("Fetch", mock.Anything, "HTTPS://example.com/a.jpg").Return(want, nil)
	s3F.On("Fetch", mock.Anything, "s3://scans/a.jpg").Return(want, nil)

	r := fetcher.NewRouter(httpF)
	r.Handle("S3", s3F)

	got, err := r.Fetch(context.Background(), "HTTPS://example.com/a.jpg")
	require.NoError(t, err)
	assert.Same(t, want, got)

	_, err = r.Fetch(context.Background(), "s3://scans/a.jpg")
	require.NoError(t, err)

	httpF.AssertExpectations(t)
	s3F.AssertExpectations(t)
}

func TestRouter_UnsupportedScheme(t *testing.T) {
	httpF := new(mocks.MockImageFetcher)
	r := fetcher.NewRouter(httpF)

	for _, ref := range []string{"ftp://example.com/a.jpg", "s3://scans/a.jpg", "not a url"} {
		_, err := r.Fetch(context.Background(), ref)
		assert.ErrorIs(t, err, domain.ErrFetchFailed, ref)
	}
	httpF.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}
