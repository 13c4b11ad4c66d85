package domain

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// FieldMap maps a form field label, as named by the model, to its value.
type FieldMap map[string]string

// Merge returns a new map holding m overlaid with update. Values in update
// replace values for the same label; neither input is modified.
func (m FieldMap) Merge(update FieldMap) FieldMap {
	out := make(FieldMap, len(m)+len(update))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range update {
		out[k] = v
	}
	return out
}

// Clone returns a copy of m. A nil map clones to an empty map.
func (m FieldMap) Clone() FieldMap {
	return m.Merge(nil)
}

// Labels returns the field labels in sorted order.
func (m FieldMap) Labels() []string {
	labels := make([]string, 0, len(m))
	for k := range m {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

// Lines renders the map as "label: value" lines joined by newlines, sorted by label.
func (m FieldMap) Lines() string {
	lines := make([]string, 0, len(m))
	for _, k := range m.Labels() {
		lines = append(lines, k+": "+m[k])
	}
	return strings.Join(lines, "\n")
}

// UnmarshalJSON accepts any JSON object. String values are kept as is,
// null becomes the empty string and other values keep their compact JSON text.
func (m *FieldMap) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	out := make(FieldMap, len(obj))
	for k, v := range obj {
		out[k] = scalarText(v)
	}
	*m = out
	return nil
}

func scalarText(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	v = bytes.TrimSpace(v)
	if bytes.Equal(v, []byte("null")) {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return string(v)
	}
	return buf.String()
}

// TaskRequest is the input bundle shared by all assistant operations.
// FilledFields is nil when the caller did not send it.
type TaskRequest struct {
	ImageURL      string
	ExtractedText string
	UserMessage   string
	Language      LocaleCode
	FilledFields  FieldMap
}

// Validate checks the fields required by kind. It performs no I/O.
func (r *TaskRequest) Validate(kind TaskKind) error {
	switch kind {
	case TaskExtractDocument, TaskAnalyzeForFilling, TaskPictogramHelp:
		if strings.TrimSpace(r.ImageURL) == "" {
			return &ValidationError{Field: "imageUrl", Message: "Image URL is required."}
		}
	case TaskAnswerAboutDocument, TaskFillField:
		if strings.TrimSpace(r.ImageURL) == "" || strings.TrimSpace(r.UserMessage) == "" {
			return &ValidationError{Field: "imageUrl,userMessage", Message: "Image URL and user message are required."}
		}
	case TaskSummarizeFilled:
		if strings.TrimSpace(r.ImageURL) == "" || r.FilledFields == nil {
			return &ValidationError{Field: "imageUrl,filledFields", Message: "Image URL and filled fields are required."}
		}
	default:
		return ErrUnknownTask
	}
	return nil
}

// ExtractionResult is the structured data pulled out of one model reply.
// Which fields are populated depends on the task kind.
type ExtractionResult struct {
	Text          string
	UpdatedFields FieldMap
	Explanation   string
	Icon          string
}

// ExtractResult is returned by ExtractDocument and AnalyzeForFilling.
type ExtractResult struct {
	Success       bool   `json:"success" example:"true"`
	ExtractedText string `json:"extractedText" example:"=== DOCUMENT TEXT ===\nApplication Form..."`
}

// ChatResult is returned by AnswerAboutDocument.
type ChatResult struct {
	Success  bool   `json:"success" example:"true"`
	Response string `json:"response" example:"This document is an electricity bill due on 12 March."`
}

// FillResult is returned by FillField.
type FillResult struct {
	Success       bool     `json:"success" example:"true"`
	Response      string   `json:"response" example:"Got it, next please."`
	UpdatedFields FieldMap `json:"updatedFields"`
}

// SummaryResult is returned by SummarizeFilled.
type SummaryResult struct {
	Success      bool     `json:"success" example:"true"`
	Summary      string   `json:"summary" example:"Congratulations! You have completed the form."`
	FilledFields FieldMap `json:"filledFields"`
}

// PictogramResult is returned by PictogramHelp.
type PictogramResult struct {
	Success        bool   `json:"success" example:"true"`
	Explanation    string `json:"explanation" example:"Write your full name as on your Aadhaar card, e.g. Asha Kumari."`
	IconSuggestion string `json:"iconSuggestion" example:"person"`
}
