package prompt

import (
	"fmt"
	"strings"

	"docassist/internal/domain"
)

// Context is the data a template may draw on. Language is a locale code and
// is resolved to a display name before rendering.
type Context struct {
	ExtractedText string
	UserMessage   string
	Language      domain.LocaleCode
	FilledFields  domain.FieldMap
}

// IconVocabulary is the fixed set of icon names the model may suggest.
var IconVocabulary = []string{
	"person", "email", "phone", "home", "location_on", "calendar_today", "work", "badge",
	"credit_card", "description", "edit", "message", "account_circle", "business", "school",
	"family_restroom", "male", "female", "cake", "fingerprint", "medical_services",
	"local_hospital", domain.DefaultIcon,
}

// Build renders the instruction for kind.
func Build(kind domain.TaskKind, c Context) (string, error) {
	switch kind {
	case domain.TaskExtractDocument:
		return buildExtractDocument(), nil
	case domain.TaskAnswerAboutDocument:
		return buildAnswerAboutDocument(c), nil
	case domain.TaskAnalyzeForFilling:
		return buildAnalyzeForFilling(), nil
	case domain.TaskFillField:
		return buildFillField(c), nil
	case domain.TaskSummarizeFilled:
		return buildSummarizeFilled(c), nil
	case domain.TaskPictogramHelp:
		return buildPictogramHelp(c), nil
	default:
		return "", fmt.Errorf("building prompt for %q: %w", kind, domain.ErrUnknownTask)
	}
}

func buildExtractDocument() string {
	return "You are an AI assistant helping illiterate users understand documents.\n" +
		"Analyze this document image and extract all text and important information.\n" +
		"Provide the extracted data in a clear, structured format."
}

func buildAnswerAboutDocument(c Context) string {
	return "You are an AI assistant helping users understand documents. You have analyzed a document and extracted the following information:\n\n" +
		c.ExtractedText + "\n\n" +
		`The user is asking: "` + c.UserMessage + `"` + "\n\n" +
		"Please respond to the user's question in " + domain.LanguageName(c.Language) + ". " +
		"Be helpful, clear, and concise. If the question is about specific details in the document, " +
		"refer to the document image and extracted text to provide accurate information. " +
		"If the user asks about something not in the document, politely let them know. " +
		"Keep your response conversational and easy to understand for users who may not be highly literate."
}

func buildAnalyzeForFilling() string {
	return "You are an AI assistant helping users fill out forms and documents with blank fields.\n" +
		"Analyze this document image carefully and:\n" +
		"1. Extract all text present in the document\n" +
		"2. Identify all blank fields, empty spaces, or fields that need to be filled\n" +
		"3. List each field with a clear label (e.g., 'Name:', 'Date:', 'Address:', etc.)\n" +
		"4. Note the type of information expected for each field\n\n" +
		"Provide the analysis in this format:\n" +
		"=== DOCUMENT TEXT ===\n" +
		"[All visible text]\n\n" +
		"=== FIELDS TO FILL ===\n" +
		"Field 1: [Field name] - [Type of data expected]\n" +
		"Field 2: [Field name] - [Type of data expected]\n" +
		"etc."
}

func buildFillField(c Context) string {
	return "You are an AI assistant helping users fill out a document. Here's the document analysis:\n\n" +
		c.ExtractedText + "\n" +
		filledFieldsSection(c.FilledFields) + "\n\n" +
		`The user just said: "` + c.UserMessage + `"` + "\n\n" +
		"Your task:\n" +
		"1. Understand what information the user is providing\n" +
		"2. Match it to the appropriate field(s) in the document\n" +
		"3. Respond in " + domain.LanguageName(c.Language) + " confirming what you filled and asking for the next piece of information\n" +
		"4. If the user's input is unclear, ask for clarification\n" +
		"5. If all fields are filled, congratulate them and summarize\n\n" +
		"IMPORTANT: After your response, provide the updated fields in this EXACT format:\n" +
		"[UPDATED_FIELDS]\n" +
		`{"FieldName1": "Value1", "FieldName2": "Value2"}` + "\n" +
		"[/UPDATED_FIELDS]\n\n" +
		"Be conversational, friendly, and guide the user through filling the form step by step."
}

func buildSummarizeFilled(c Context) string {
	return "You are an AI assistant. A user has filled out a document with the following information:\n\n" +
		c.FilledFields.Lines() + "\n\n" +
		"Please provide a comprehensive summary in " + domain.LanguageName(c.Language) + " that:\n" +
		"1. Congratulates the user on completing the form\n" +
		"2. Lists all the filled fields in a clear, organized manner\n" +
		"3. Mentions that this information has been recorded\n" +
		"4. Provides any relevant next steps or advice\n\n" +
		"Keep the tone friendly and encouraging."
}

func buildPictogramHelp(c Context) string {
	return "You are an AI assistant helping users understand form fields through visual explanations.\n\n" +
		"DOCUMENT ANALYSIS:\n" + c.ExtractedText + "\n" +
		filledFieldsSection(c.FilledFields) + "\n\n" +
		"Based on the document and the fields that still need to be filled, provide:\n\n" +
		"1. Identify the NEXT unfilled field that needs attention\n" +
		"2. Provide a clear, simple explanation in " + domain.LanguageName(c.Language) + " about what this field is asking for\n" +
		"3. Give 1-2 examples of what kind of information should be entered\n" +
		"4. Use simple language suitable for users with low literacy\n\n" +
		"IMPORTANT: At the end, suggest ONE appropriate icon name from this list:\n" +
		strings.Join(IconVocabulary, ", ") + "\n\n" +
		"Format your response like this:\n" +
		"[EXPLANATION]\n" +
		"Your clear explanation here with examples\n" +
		"[/EXPLANATION]\n" +
		"[ICON]icon_name[/ICON]"
}

// filledFieldsSection starts with a blank line so it can follow the document text directly.
func filledFieldsSection(fields domain.FieldMap) string {
	if len(fields) == 0 {
		return "\nNo fields have been filled yet."
	}
	return "\n=== ALREADY FILLED FIELDS ===\n" + fields.Lines()
}
