package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"docassist/internal/domain"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a query value to a Format. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedExportFormat, s)
	}
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var header = []string{"Field", "Value"}

const sheetName = "Filled Fields"

// Render writes fields as a two-column sheet sorted by label.
func Render(fields domain.FieldMap, f Format) ([]byte, error) {
	switch f {
	case FormatCSV:
		return renderCSV(fields)
	case FormatXLSX:
		return renderXLSX(fields)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedExportFormat, f)
	}
}

func renderCSV(fields domain.FieldMap) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, label := range fields.Labels() {
		if err := w.Write([]string{label, fields[label]}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderXLSX(fields domain.FieldMap) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &[]interface{}{header[0], header[1]}); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "B1", bold); err != nil {
		return nil, err
	}

	for i, label := range fields.Labels() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &[]interface{}{label, fields[label]}); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheetName, "A", "A", 30); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "B", "B", 50); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a document name for use in Content-Disposition.
// Falls back to "filled_form" when nothing usable remains.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		return "filled_form"
	}
	return s
}

// BuildFilename returns {sanitized_name}_{YYYY-MM-DD}.{ext}.
func BuildFilename(name string, f Format, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), now.Format("2006-01-02"), f)
}
