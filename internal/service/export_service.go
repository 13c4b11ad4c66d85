package service

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"docassist/internal/config"
	"docassist/internal/domain"
	"docassist/internal/export"
	"docassist/internal/port"
)

// ExportFile is a rendered field sheet ready to be downloaded.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// StoredExport points at an uploaded field sheet.
type StoredExport struct {
	Success  bool   `json:"success" example:"true"`
	Filename string `json:"filename" example:"Ration_Card_2026-10-18.xlsx"`
	URL      string `json:"url" example:"https://bucket.s3.amazonaws.com/exports/...?X-Amz-Signature=..."`
}

// ExportService renders filled fields as CSV or XLSX and optionally stores them.
type ExportService interface {
	Render(fields domain.FieldMap, format export.Format, name string) (*ExportFile, error)
	Store(ctx context.Context, fields domain.FieldMap, format export.Format, name string) (*StoredExport, error)
}

type exportService struct {
	storage       port.ObjectStorage
	exportCfg     config.ExportConfig
	presignExpiry int64
	now           func() time.Time
}

// NewExportService creates a new ExportService. storage may be nil, in which
// case Store returns domain.ErrExportStorageDisabled.
func NewExportService(storage port.ObjectStorage, exportCfg config.ExportConfig, s3Cfg *config.S3Config) ExportService {
	return &exportService{
		storage:       storage,
		exportCfg:     exportCfg,
		presignExpiry: s3Cfg.PresignExpiry,
		now:           time.Now,
	}
}

func (s *exportService) Render(fields domain.FieldMap, format export.Format, name string) (*ExportFile, error) {
	if len(fields) == 0 {
		return nil, &domain.ValidationError{Field: "filledFields", Message: "Filled fields are required."}
	}
	data, err := export.Render(fields, format)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename:    export.BuildFilename(name, format, s.now()),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

func (s *exportService) Store(ctx context.Context, fields domain.FieldMap, format export.Format, name string) (*StoredExport, error) {
	if s.storage == nil || s.exportCfg.Bucket == "" {
		return nil, domain.ErrExportStorageDisabled
	}

	file, err := s.Render(fields, format, name)
	if err != nil {
		return nil, err
	}

	key := path.Join(s.exportCfg.Prefix, uuid.New().String(), file.Filename)
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.exportCfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(file.Data),
		ContentType: file.ContentType,
		Size:        int64(len(file.Data)),
	}); err != nil {
		return nil, fmt.Errorf("storing export: %w", err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.exportCfg.Bucket, key, s.presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presigning export: %w", err)
	}
	return &StoredExport{Success: true, Filename: file.Filename, URL: url}, nil
}
