package model

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const defaultRetryAfter = 60 * time.Second

// RateLimitError is wrapped inside a domain.ModelError when the provider
// answers HTTP 429. RetryAfter is reported to the caller; nothing here retries.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError builds a RateLimitError from a Retry-After header value.
func NewRateLimitError(provider string, err error, retryAfterHeader string) *RateLimitError {
	return &RateLimitError{
		Provider:   provider,
		RetryAfter: parseRetryAfter(retryAfterHeader, time.Now()),
		Err:        err,
	}
}

// AsRateLimit reports whether err carries a RateLimitError.
func AsRateLimit(err error) (*RateLimitError, bool) {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return rl, true
	}
	return nil, false
}

// parseRetryAfter accepts delay-seconds or an HTTP date. Anything else,
// including a date in the past, yields the default.
func parseRetryAfter(val string, now time.Time) time.Duration {
	if val == "" {
		return defaultRetryAfter
	}
	if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(val); err == nil && t.After(now) {
		return t.Sub(now).Round(time.Second)
	}
	return defaultRetryAfter
}
