package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"docassist/internal/domain"
	"docassist/internal/extract"
	"docassist/internal/port"
	"docassist/internal/prompt"
)

// AssistantService defines the document assistant operations. Every
// operation performs one image fetch followed by one model call.
type AssistantService interface {
	ExtractDocument(ctx context.Context, req *domain.TaskRequest) (*domain.ExtractResult, error)
	AnswerAboutDocument(ctx context.Context, req *domain.TaskRequest) (*domain.ChatResult, error)
	AnalyzeForFilling(ctx context.Context, req *domain.TaskRequest) (*domain.ExtractResult, error)
	FillField(ctx context.Context, req *domain.TaskRequest) (*domain.FillResult, error)
	SummarizeFilled(ctx context.Context, req *domain.TaskRequest) (*domain.SummaryResult, error)
	PictogramHelp(ctx context.Context, req *domain.TaskRequest) (*domain.PictogramResult, error)
}

type assistantService struct {
	fetcher port.ImageFetcher
	model   port.GenerativeModel
	log     *zap.Logger
}

// NewAssistantService creates a new AssistantService.
func NewAssistantService(fetcher port.ImageFetcher, model port.GenerativeModel, log *zap.Logger) AssistantService {
	if log == nil {
		log = zap.NewNop()
	}
	return &assistantService{fetcher: fetcher, model: model, log: log}
}

func (s *assistantService) ExtractDocument(ctx context.Context, req *domain.TaskRequest) (*domain.ExtractResult, error) {
	res, err := s.run(ctx, domain.TaskExtractDocument, req)
	if err != nil {
		return nil, err
	}
	return &domain.ExtractResult{Success: true, ExtractedText: res.Text}, nil
}

func (s *assistantService) AnswerAboutDocument(ctx context.Context, req *domain.TaskRequest) (*domain.ChatResult, error) {
	res, err := s.run(ctx, domain.TaskAnswerAboutDocument, req)
	if err != nil {
		return nil, err
	}
	return &domain.ChatResult{Success: true, Response: res.Text}, nil
}

func (s *assistantService) AnalyzeForFilling(ctx context.Context, req *domain.TaskRequest) (*domain.ExtractResult, error) {
	res, err := s.run(ctx, domain.TaskAnalyzeForFilling, req)
	if err != nil {
		return nil, err
	}
	return &domain.ExtractResult{Success: true, ExtractedText: res.Text}, nil
}

func (s *assistantService) FillField(ctx context.Context, req *domain.TaskRequest) (*domain.FillResult, error) {
	res, err := s.run(ctx, domain.TaskFillField, req)
	if err != nil {
		return nil, err
	}
	return &domain.FillResult{Success: true, Response: res.Text, UpdatedFields: res.UpdatedFields}, nil
}

func (s *assistantService) SummarizeFilled(ctx context.Context, req *domain.TaskRequest) (*domain.SummaryResult, error) {
	res, err := s.run(ctx, domain.TaskSummarizeFilled, req)
	if err != nil {
		return nil, err
	}
	return &domain.SummaryResult{Success: true, Summary: res.Text, FilledFields: req.FilledFields}, nil
}

func (s *assistantService) PictogramHelp(ctx context.Context, req *domain.TaskRequest) (*domain.PictogramResult, error) {
	res, err := s.run(ctx, domain.TaskPictogramHelp, req)
	if err != nil {
		return nil, err
	}
	return &domain.PictogramResult{Success: true, Explanation: res.Explanation, IconSuggestion: res.Icon}, nil
}

// run is the shared pipeline. Validation happens before any network call and
// the model is only called once the image is in hand.
func (s *assistantService) run(ctx context.Context, kind domain.TaskKind, req *domain.TaskRequest) (domain.ExtractionResult, error) {
	if req == nil {
		req = &domain.TaskRequest{}
	}
	if err := req.Validate(kind); err != nil {
		return domain.ExtractionResult{}, err
	}

	log := s.log.With(zap.String("task", string(kind)))

	start := time.Now()
	img, err := s.fetcher.Fetch(ctx, req.ImageURL)
	if err != nil {
		return domain.ExtractionResult{}, err
	}
	fetched := time.Since(start)

	instruction, err := prompt.Build(kind, prompt.Context{
		ExtractedText: req.ExtractedText,
		UserMessage:   req.UserMessage,
		Language:      req.Language,
		FilledFields:  req.FilledFields,
	})
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	out, err := s.model.Generate(ctx, port.GenerateInput{
		Prompt:      instruction,
		ImageBase64: img.Encoded,
		MimeType:    img.ContentType,
	})
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	log.Debug("assistant: model replied",
		zap.String("model", out.ModelUsed),
		zap.Int("image_bytes", len(img.Data)),
		zap.Duration("fetch_latency", fetched),
		zap.Duration("total_latency", time.Since(start)),
		zap.Int("reply_len", len(out.Text)),
	)

	return extract.Extract(kind, out.Text, req.FilledFields, log), nil
}
