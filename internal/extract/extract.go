package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"docassist/internal/domain"
)

// Extract pulls the structured payload for kind out of a raw model reply.
// prior is the caller's FieldMap and is never modified.
//
// For fill_field the first UPDATED_FIELDS block is parsed and every block is
// stripped from the visible text. A block that is not a JSON object is logged
// and leaves the fields unchanged.
func Extract(kind domain.TaskKind, raw string, prior domain.FieldMap, log *zap.Logger) domain.ExtractionResult {
	if log == nil {
		log = zap.NewNop()
	}
	switch kind {
	case domain.TaskFillField:
		return extractFill(raw, prior, log)
	case domain.TaskPictogramHelp:
		return extractPictogram(raw)
	default:
		return domain.ExtractionResult{Text: raw}
	}
}

func extractFill(raw string, prior domain.FieldMap, log *zap.Logger) domain.ExtractionResult {
	fields := prior.Clone()

	if inner, ok := UpdatedFields.Find(raw); ok {
		update, err := ParseFieldMap(inner)
		if err != nil {
			log.Warn("extract: ignoring malformed updated fields block",
				zap.Error(err),
				zap.Int("block_len", len(inner)),
			)
		} else {
			fields = fields.Merge(update)
		}
	}

	return domain.ExtractionResult{
		Text:          UpdatedFields.Strip(raw),
		UpdatedFields: fields,
	}
}

func extractPictogram(raw string) domain.ExtractionResult {
	res := domain.ExtractionResult{
		Explanation: domain.DefaultExplanation,
		Icon:        domain.DefaultIcon,
	}
	if inner, ok := Explanation.Find(raw); ok {
		res.Explanation = strings.TrimSpace(inner)
	}
	if inner, ok := Icon.Find(raw); ok {
		res.Icon = strings.TrimSpace(inner)
	}
	return res
}

var errNotObject = errors.New("updated fields block is not a JSON object")

// ParseFieldMap decodes a JSON object into a FieldMap. Markdown code fences
// around the object are tolerated.
func ParseFieldMap(s string) (domain.FieldMap, error) {
	s = trimCodeFence(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "{") {
		return nil, errNotObject
	}

	var fields domain.FieldMap
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		return nil, fmt.Errorf("parsing updated fields: %w", err)
	}
	return fields, nil
}

func trimCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
