package model_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"docassist/internal/model"
)

func TestRateLimitError_ErrorString(t *testing.T) {
	rlErr := model.NewRateLimitError("gemini", fmt.Errorf("quota exceeded"), "30")

	assert.Contains(t, rlErr.Error(), "gemini")
	assert.Contains(t, rlErr.Error(), "quota exceeded")
	assert.Contains(t, rlErr.Error(), "30s")
}

func TestRateLimitError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	rlErr := model.NewRateLimitError("gemini", underlying, "")

	assert.Equal(t, underlying, errors.Unwrap(rlErr))
}

func TestRateLimitError_RetryAfter(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{"empty defaults", "", 60 * time.Second},
		{"seconds", "12", 12 * time.Second},
		{"zero defaults", "0", 60 * time.Second},
		{"garbage defaults", "soon", 60 * time.Second},
		{"past date defaults", "Mon, 02 Jan 2006 15:04:05 GMT", 60 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := model.NewRateLimitError("gemini", errors.New("x"), tt.header)
			assert.Equal(t, tt.want, rl.RetryAfter)
		})
	}
}

func TestRateLimitError_RetryAfterHTTPDate(t *testing.T) {
	header := time.Now().Add(2 * time.Minute).UTC().Format(http.TimeFormat)
	rl := model.NewRateLimitError("gemini", errors.New("x"), header)

	assert.InDelta(t, float64(2*time.Minute), float64(rl.RetryAfter), float64(2*time.Second))
}

func TestAsRateLimit_Wrapped(t *testing.T) {
	rlErr := model.NewRateLimitError("gemini", errors.New("x"), "5")
	wrapped := fmt.Errorf("generate failed: %w", rlErr)

	got, ok := model.AsRateLimit(wrapped)
	assert.True(t, ok)
	assert.Equal(t, 5*time.Second, got.RetryAfter)

	_, ok = model.AsRateLimit(errors.New("plain"))
	assert.False(t, ok)
}
