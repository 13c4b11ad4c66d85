package port

import "context"

// GenerateInput carries one instruction and one inline image.
type GenerateInput struct {
	Prompt      string
	ImageBase64 string
	MimeType    string
}

// GenerateOutput is the model's textual reply.
type GenerateOutput struct {
	Text      string
	ModelUsed string
}

// GenerativeModel abstracts a multimodal LLM endpoint.
// Implementations return *domain.ModelError on failure.
type GenerativeModel interface {
	Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error)
}
