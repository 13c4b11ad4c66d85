package gemini

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
	apiBaseURL   = "https://generativelanguage.googleapis.com/v1beta/models"
	providerName = "gemini"
	defaultModel = "gemini-2.0-flash-exp"
)

// Model implements port.GenerativeModel using Google's Gemini API.
type Model struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewModel creates a Gemini-backed generative model. cfg.Endpoint, when set,
// replaces the public generateContent URL.
func NewModel(cfg *config.ModelConfig) *Model {
	name := cfg.DefaultModel
	if name == "" {
		name = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, name)
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

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// Generate sends the prompt followed by the inline image and returns the reply text.
func (m *Model) Generate(ctx context.Context, input port.GenerateInput) (*port.GenerateOutput, error) {
	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = domain.ImageContentType
	}

	reqBody := generateRequest{
		Contents: []content{
			{
				Role: "user",
				Parts: []part{
					{Text: input.Prompt},
					{InlineData: &inlineData{MimeType: mimeType, Data: input.ImageBase64}},
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
	req.Header.Set("x-goog-api-key", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, m.fail(0, fmt.Errorf("calling gemini API: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, m.fail(0, fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		rl := model.NewRateLimitError(providerName, errors.New(truncate(string(respBody), 500)), resp.Header.Get("Retry-After"))
		return nil, m.fail(resp.StatusCode, rl)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, m.fail(resp.StatusCode, errors.New(truncate(string(respBody), 500)))
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

func parseResponse(body []byte) (string, error) {
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", errors.New("empty response from API: no candidates")
	}

	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", fmt.Errorf("empty response from API: no parts (finish reason %q)", resp.Candidates[0].FinishReason)
	}

	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
