package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docassist/internal/domain"
	"docassist/internal/export"
	"docassist/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Render(fields domain.FieldMap, format export.Format, name string) (*service.ExportFile, error) {
	args := m.Called(fields, format, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}

func (m *MockExportService) Store(ctx context.Context, fields domain.FieldMap, format export.Format, name string) (*service.StoredExport, error) {
	args := m.Called(ctx, fields, format, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StoredExport), args.Error(1)
}
