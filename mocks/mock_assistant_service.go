package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docassist/internal/domain"
)

// MockAssistantService is a mock implementation of service.AssistantService.
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) ExtractDocument(ctx context.Context, req *domain.TaskRequest) (*domain.ExtractResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractResult), args.Error(1)
}

func (m *MockAssistantService) AnswerAboutDocument(ctx context.Context, req *domain.TaskRequest) (*domain.ChatResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatResult), args.Error(1)
}

func (m *MockAssistantService) AnalyzeForFilling(ctx context.Context, req *domain.TaskRequest) (*domain.ExtractResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractResult), args.Error(1)
}

func (m *MockAssistantService) FillField(ctx context.Context, req *domain.TaskRequest) (*domain.FillResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FillResult), args.Error(1)
}

func (m *MockAssistantService) SummarizeFilled(ctx context.Context, req *domain.TaskRequest) (*domain.SummaryResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SummaryResult), args.Error(1)
}

func (m *MockAssistantService) PictogramHelp(ctx context.Context, req *domain.TaskRequest) (*domain.PictogramResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PictogramResult), args.Error(1)
}
