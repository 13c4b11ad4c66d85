package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docassist/internal/domain"
	"docassist/internal/handler"
	"docassist/internal/model"
	"docassist/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAssistantHandler() (*handler.AssistantHandler, *mocks.MockAssistantService) {
	mockSvc := new(mocks.MockAssistantService)
	return handler.NewAssistantHandler(mockSvc), mockSvc
}

func postJSON(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/assistant", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *handler.APIError {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return resp.Error
}

// --- ExtractDocument ---

func TestAssistantHandler_ExtractDocument_Success(t *testing.T) {
	h, mockSvc := newAssistantHandler()

	mockSvc.On("ExtractDocument", mock.Anything, &domain.TaskRequest{ImageURL: "https://example.com/a.jpg"}).
		Return(&domain.ExtractResult{Success: true, ExtractedText: "BILL"}, nil)

	c, w := postJSON(`{"imageUrl":"https://example.com/a.jpg"}`)
	h.ExtractDocument(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"extractedText":"BILL"}`, w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestAssistantHandler_ExtractDocument_InvalidInput(t *testing.T) {
	h, mockSvc := newAssistantHandler()

	mockSvc.On("ExtractDocument", mock.Anything, mock.Anything).
		Return(nil, &domain.ValidationError{Field: "imageUrl", Message: "Image URL is required."})

	c, w := postJSON(`{}`)
	h.ExtractDocument(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	apiErr := decodeError(t, w)
	assert.Equal(t, "INTERNAL", apiErr.Code)
	assert.Equal(t, "Failed to analyze document: Image URL is required.", apiErr.Message)
}

func TestAssistantHandler_MalformedBody(t *testing.T) {
	h, mockSvc := newAssistantHandler()

	c, w := postJSON(`not json`)
	h.FillField(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	apiErr := decodeError(t, w)
	assert.Equal(t, "Failed to process field: Request body must be a JSON object.", apiErr.Message)
	mockSvc.AssertNotCalled(t, "FillField", mock.Anything, mock.Anything)
}

// --- AnswerAboutDocument ---

func TestAssistantHandler_Chat_FetchFailure(t *testing.T) {
	h, mockSvc := newAssistantHandler()

	mockSvc.On("AnswerAboutDocument", mock.Anything, mock.Anything).
		Return(nil, &domain.FetchError{Ref: "https://example.com/a.jpg", Status: 404})

	c, w := postJSON(`{"imageUrl":"https://example.com/a.jpg","userMessage":"hi"}`)
	h.AnswerAboutDocument(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to process chat message: Image fetch failed with status 404", decodeError(t, w).Message)
}

func TestAssistantHandler_Chat_Success(t *testing.T) {
	h, mockSvc := newAssistantHandler()

	mockSvc.On("AnswerAboutDocument", mock.Anything, mock.MatchedBy(func(req *domain.TaskRequest) bool {
		return req.UserMessage == "How much?" && req.Language == "hi-IN" && req.ExtractedText == "Amount: 540"
	})).Return(&domain.ChatResult{Success: true, Response: "540"}, nil)

	c, w := postJSON(`{"imageUrl":"https://example.com/a.jpg","userMessage":"How much?","language":"hi-IN","extractedText":"Amount: 540"}`)
	h.AnswerAboutDocument(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"response":"540"}`, w.Body.String())
}

// --- AnalyzeForFilling ---

func TestAssistantHandler_AnalyzeForFilling_ModelFailure(t *testing.T) {
	h, mockSvc := newAssistantHandler()

	mockSvc.On("AnalyzeForFilling", mock.Anything, mock.Anything).
		Return(nil, &domain.ModelError{Provider: "gemini", Status: 400, Err: errors.New("bad key")})

	c, w := postJSON(`{"imageUrl":"https://example.com/a.jpg"}`)
	h.AnalyzeForFilling(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to analyze document: gemini API error (status 400): bad key", decodeError(t, w).Message)
	assert.Empty(t, w.Header().Get("Retry-After"))
}

// --- FillField ---

func TestAssistantHandler_FillField_Success(t *testing.T) {
	h, mockSvc := newAssistantHandler()

	mockSvc.On("FillField", mock.Anything, mock.MatchedBy(func(req *domain.TaskRequest) bool {
		return req.FilledFields["Age"] == "34" && req.UserMessage == "Asha"
	})).Return(&domain.FillResult{
		Success:       true,
		Response:      "Got it, next please.",
		UpdatedFields: domain.FieldMap{"Age": "34", "Name": "Asha"},
	}, nil)

	c, w := postJSON(`{"imageUrl":"https://example.com/a.jpg","userMessage":"Asha","filledFields":{"Age":34}}`)
	h.FillField(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"response":"Got it, next please.","updatedFields":{"Age":"34","Name":"Asha"}}`, w.Body.String())
}

func TestAssistantHandler_FillField_RateLimited(t *testing.T) {
	h, mockSvc := newAssistantHandler()

	rl := &model.RateLimitError{Provider: "gemini", RetryAfter: 30 * time.Second, Err: errors.New("quota")}
	mockSvc.On("FillField", mock.Anything, mock.Anything).
		Return(nil, &domain.ModelError{Provider: "gemini", Status: 429, Err: rl})

	c, w := postJSON(`{"imageUrl":"https://example.com/a.jpg","userMessage":"Asha"}`)
	h.FillField(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
}

// --- SummarizeFilled ---

func TestAssistantHandler_Summarize_Success(t *testing.T) {
	h, mockSvc := newAssistantHandler()

	mockSvc.On("SummarizeFilled", mock.Anything, mock.MatchedBy(func(req *domain.TaskRequest) bool {
		return req.FilledFields != nil && len(req.FilledFields) == 0
	})).Return(&domain.SummaryResult{Success: true, Summary: "Done", FilledFields: domain.FieldMap{}}, nil)

	c, w := postJSON(`{"imageUrl":"https://example.com/a.jpg","filledFields":{}}`)
	h.SummarizeFilled(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"summary":"Done","filledFields":{}}`, w.Body.String())
}

func TestAssistantHandler_Summarize_MissingFields(t *testing.T) {
	h, mockSvc := newAssistantHandler()

	mockSvc.On("SummarizeFilled", mock.Anything, mock.MatchedBy(func(req *domain.TaskRequest) bool {
		return req.FilledFields == nil
	})).Return(nil, &domain.ValidationError{Field: "filledFields", Message: "Image URL and filled fields are required."})

	c, w := postJSON(`{"imageUrl":"https://example.com/a.jpg"}`)
	h.SummarizeFilled(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to generate document: Image URL and filled fields are required.", decodeError(t, w).Message)
}

// --- PictogramHelp ---

func TestAssistantHandler_PictogramHelp_Success(t *testing.T) {
	h, mockSvc := newAssistantHandler()

	mockSvc.On("PictogramHelp", mock.Anything, mock.Anything).
		Return(&domain.PictogramResult{Success: true, Explanation: "Your name", IconSuggestion: "person"}, nil)

	c, w := postJSON(`{"imageUrl":"https://example.com/a.jpg"}`)
	h.PictogramHelp(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"explanation":"Your name","iconSuggestion":"person"}`, w.Body.String())
}

func TestAssistantHandler_PictogramHelp_Failure(t *testing.T) {
	h, mockSvc := newAssistantHandler()

	mockSvc.On("PictogramHelp", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	c, w := postJSON(`{"imageUrl":"https://example.com/a.jpg"}`)
	h.PictogramHelp(c)

	assert.Equal(t, "Failed to generate visual help: boom", decodeError(t, w).Message)
}
