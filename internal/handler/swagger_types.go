package handler

import "docassist/internal/domain"

// Request and response types shared by handlers and used by swag to generate
// OpenAPI documentation.

// --- Request Types ---

// AssistantRequest is the body accepted by every assistant operation. Which
// fields are required depends on the operation.
type AssistantRequest struct {
	ImageURL      string            `json:"imageUrl" example:"https://storage.example.com/scans/form.jpg"`
	ExtractedText string            `json:"extractedText" example:"=== DOCUMENT TEXT ===\nApplication Form..."`
	UserMessage   string            `json:"userMessage" example:"My name is Asha"`
	Language      domain.LocaleCode `json:"language" example:"hi-IN"`
	FilledFields  domain.FieldMap   `json:"filledFields" swaggertype:"object,string" example:"Name:Asha"`
}

func (r *AssistantRequest) toTaskRequest() *domain.TaskRequest {
	return &domain.TaskRequest{
		ImageURL:      r.ImageURL,
		ExtractedText: r.ExtractedText,
		UserMessage:   r.UserMessage,
		Language:      r.Language,
		FilledFields:  r.FilledFields,
	}
}

// ExportRequest is the body accepted by the export endpoint.
type ExportRequest struct {
	Name         string          `json:"name" example:"Ration Card Application"`
	FilledFields domain.FieldMap `json:"filledFields" swaggertype:"object,string" example:"Name:Asha"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"model api key not configured"`
}

// Response wraps a successful auxiliary response.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
