package openai

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
	apiURL       = "https://api.openai.com/v1/chat/completions"
	providerName = "openai"
)

// Model implements port.GenerativeModel using the OpenAI Chat Completions API.
type Model struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewModel creates an OpenAI-backed generative model.
func NewModel(cfg *config.ModelConfig) *Model {
	name := cfg.DefaultModel
	if name == "" || strings.HasPrefix(name, "gemini") {
		name = "gpt-4o"
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

type imageURL struct {
	URL string `json:"url"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Generate sends the image as a data URI followed by the instruction.
func (m *Model) Generate(ctx context.Context, input port.GenerateInput) (*port.GenerateOutput, error) {
	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = domain.ImageContentType
	}

	reqBody := chatRequest{
		Model: m.model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "image_url", ImageURL: &imageURL{URL: fmt.Sprintf("data:%s;base64,%s", mimeType, input.ImageBase64)}},
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
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, m.fail(0, fmt.Errorf("calling openai API: %w", err))
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

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, m.fail(0, fmt.Errorf("unmarshaling response: %w", err))
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return nil, m.fail(0, errors.New("empty response from API: no choices"))
	}
	return &port.GenerateOutput{Text: parsed.Choices[0].Message.Content, ModelUsed: m.model}, nil
}

func (m *Model) fail(status int, err error) error {
	return &domain.ModelError{Provider: providerName, Status: status, Err: err}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
