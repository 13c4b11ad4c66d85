package domain

// TaskKind identifies one of the assistant operations. Every pipeline stage
// switches over the full set.
type TaskKind string

const (
	TaskExtractDocument     TaskKind = "extract_document"
	TaskAnswerAboutDocument TaskKind = "answer_about_document"
	TaskAnalyzeForFilling   TaskKind = "analyze_for_filling"
	TaskFillField           TaskKind = "fill_field"
	TaskSummarizeFilled     TaskKind = "summarize_filled"
	TaskPictogramHelp       TaskKind = "pictogram_help"
)

// AllTaskKinds returns every supported task kind in declaration order.
func AllTaskKinds() []TaskKind {
	return []TaskKind{
		TaskExtractDocument,
		TaskAnswerAboutDocument,
		TaskAnalyzeForFilling,
		TaskFillField,
		TaskSummarizeFilled,
		TaskPictogramHelp,
	}
}

// Valid reports whether k is a known task kind.
func (k TaskKind) Valid() bool {
	for _, known := range AllTaskKinds() {
		if k == known {
			return true
		}
	}
	return false
}

// ImageContentType is the content type declared for every fetched image.
const ImageContentType = "image/jpeg"

// DefaultIcon is returned when the model does not suggest an icon.
const DefaultIcon = "help_outline"

// DefaultExplanation is returned when the model reply carries no explanation block.
const DefaultExplanation = "This field needs information. Please provide the required details."
