package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"docassist/internal/config"
	"docassist/internal/domain"
	"docassist/internal/model"
	"docassist/internal/port"
)

const (
	apiURL       = "https://api.anthropic.com/v1/messages"
	apiVersion   = "2023-06-01"
	providerName = "claude"
	maxTokens    = 4096
)

// Model implements port.GenerativeModel using the Anthropic Messages API.
type Model struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewModel creates a Claude-backed generative model.
func NewModel(cfg *config.ModelConfig) *Model {
	name := cfg.DefaultModel
	if name == "" || strings.HasPrefix(name, "gemini") {
		name = "claude-sonnet-4-20250514"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	return &Model{
		apiKey:   cfg.APIKey,
		model:    name,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Factory adapts NewModel to model.ProviderFactory.
func Factory(cfg *config.ModelConfig) (port.GenerativeModel, error) {
	return NewModel(cfg), nil
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// Generate sends the image followed by the instruction and returns the reply text.
func (m *Model) Generate(ctx context.Context, input port.GenerateInput) (*port.GenerateOutput, error) {
	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = domain.ImageContentType
	}

	reqBody := messagesRequest{
		Model:     m.model,
		MaxTokens: maxTokens,
		Messages: []message{
			{
				Role: "user",
				Content: []contentBlock{
					{Type: "image", Source: &imageSource{Type: "base64", MediaType: mimeType, Data: input.ImageBase64}},
					{Type: "text", Text: input.Prompt},
				},
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, m.fail(0, fmt.Errorf("marshaling request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, m.fail(0, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", m.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, m.fail(0, fmt.Errorf("calling anthropic API: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, m.fail(0, fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		cause := errors.New(truncate(string(respBody), 500))
		if resp.StatusCode == http.StatusTooManyRequests {
			cause = model.NewRateLimitError(providerName, cause, resp.Header.Get("Retry-After"))
		}
		return nil, m.fail(resp.StatusCode, cause)
	}

	text, err := parseResponse(respBody)
	if err != nil {
		return nil, m.fail(0, err)
	}
	return &port.GenerateOutput{Text: text, ModelUsed: m.model}, nil
}

func (m *Model) fail(status int, err error) error {
	return &domain.ModelError{Provider: providerName, Status: status, Err: err}
}

// parseResponse joins the text blocks. A reply cut off at max_tokens is kept.
func parseResponse(body []byte) (string, error) {
	var resp messagesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty response from API (stop_reason %q)", resp.StopReason)
	}
	return sb.String(), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
