package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"docassist/internal/domain"
	"docassist/internal/service"
)

// Failure prefixes reported when an operation fails.
const (
	failAnalyze   = "Failed to analyze document"
	failChat      = "Failed to process chat message"
	failFill      = "Failed to process field"
	failSummarize = "Failed to generate document"
	failPictogram = "Failed to generate visual help"
)

// AssistantHandler handles the document assistant endpoints.
type AssistantHandler struct {
	assistant service.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistant service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// ExtractDocument handles POST /api/v1/assistant/extract
// @Summary Extract document text
// @Description Transcribe all text in the document image and surface important information
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body AssistantRequest true "Image reference"
// @Success 200 {object} domain.ExtractResult
// @Failure 500 {object} ErrorResponseBody "Invalid input, image fetch or model failure"
// @Router /assistant/extract [post]
func (h *AssistantHandler) ExtractDocument(c *gin.Context) {
	serveTask(c, failAnalyze, h.assistant.ExtractDocument)
}

// AnswerAboutDocument handles POST /api/v1/assistant/chat
// @Summary Ask about a document
// @Description Answer a user question about the document in the requested language
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body AssistantRequest true "Image reference, question and optional context"
// @Success 200 {object} domain.ChatResult
// @Failure 500 {object} ErrorResponseBody "Invalid input, image fetch or model failure"
// @Router /assistant/chat [post]
func (h *AssistantHandler) AnswerAboutDocument(c *gin.Context) {
	serveTask(c, failChat, h.assistant.AnswerAboutDocument)
}

// AnalyzeForFilling handles POST /api/v1/assistant/analyze-for-filling
// @Summary Find fillable fields
// @Description Transcribe the document and list its blank fields with expected data types
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body AssistantRequest true "Image reference"
// @Success 200 {object} domain.ExtractResult
// @Failure 500 {object} ErrorResponseBody "Invalid input, image fetch or model failure"
// @Router /assistant/analyze-for-filling [post]
func (h *AssistantHandler) AnalyzeForFilling(c *gin.Context) {
	serveTask(c, failAnalyze, h.assistant.AnalyzeForFilling)
}

// FillField handles POST /api/v1/assistant/fill-field
// @Summary Fill a form field from conversation
// @Description Match the user's utterance to form fields and return the merged field map
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body AssistantRequest true "Image reference, utterance and prior fields"
// @Success 200 {object} domain.FillResult
// @Failure 500 {object} ErrorResponseBody "Invalid input, image fetch or model failure"
// @Router /assistant/fill-field [post]
func (h *AssistantHandler) FillField(c *gin.Context) {
	serveTask(c, failFill, h.assistant.FillField)
}

// SummarizeFilled handles POST /api/v1/assistant/summarize
// @Summary Summarize a filled form
// @Description Produce a congratulatory summary of the filled fields
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body AssistantRequest true "Image reference and filled fields"
// @Success 200 {object} domain.SummaryResult
// @Failure 500 {object} ErrorResponseBody "Invalid input, image fetch or model failure"
// @Router /assistant/summarize [post]
func (h *AssistantHandler) SummarizeFilled(c *gin.Context) {
	serveTask(c, failSummarize, h.assistant.SummarizeFilled)
}

// PictogramHelp handles POST /api/v1/assistant/pictogram-help
// @Summary Explain the next field
// @Description Explain the next unfilled field in simple language and suggest an icon
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body AssistantRequest true "Image reference and optional context"
// @Success 200 {object} domain.PictogramResult
// @Failure 500 {object} ErrorResponseBody "Invalid input, image fetch or model failure"
// @Router /assistant/pictogram-help [post]
func (h *AssistantHandler) PictogramHelp(c *gin.Context) {
	serveTask(c, failPictogram, h.assistant.PictogramHelp)
}

func serveTask[T any](c *gin.Context, failure string, call func(context.Context, *domain.TaskRequest) (*T, error)) {
	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleTaskError(c, failure, &domain.ValidationError{Field: "body", Message: "Request body must be a JSON object."})
		return
	}

	result, err := call(c.Request.Context(), req.toTaskRequest())
	if err != nil {
		HandleTaskError(c, failure, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
