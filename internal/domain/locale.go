package domain

import "sort"

// LocaleCode is a BCP-47-like tag such as "hi-IN".
type LocaleCode string

// DefaultLocale is used when a request carries no language or an unknown one.
const DefaultLocale LocaleCode = "en-IN"

// languageNames is populated once at package init and never mutated.
var languageNames = map[LocaleCode]string{
	"en-IN": "English",
	"hi-IN": "Hindi (हिंदी)",
	"ta-IN": "Tamil (தமிழ்)",
	"te-IN": "Telugu (తెలుగు)",
	"mr-IN": "Marathi (मराठी)",
	"bn-IN": "Bengali (বাংলা)",
	"gu-IN": "Gujarati (ગુજરાતી)",
	"kn-IN": "Kannada (ಕನ್ನಡ)",
	"ml-IN": "Malayalam (മലയാളം)",
	"pa-IN": "Punjabi (ਪੰਜਾਬੀ)",
	"or-IN": "Odia (ଓଡ଼ିଆ)",
	"as-IN": "Assamese (অসমীয়া)",
}

// LanguageName resolves a locale code to the display name embedded in prompts.
// Unknown and empty codes resolve to the English entry.
func LanguageName(code LocaleCode) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return languageNames[DefaultLocale]
}

// Language is one entry of the locale table.
type Language struct {
	Code LocaleCode `json:"code" example:"hi-IN"`
	Name string     `json:"name" example:"Hindi (हिंदी)"`
}

// SupportedLanguages returns the locale table sorted by code.
func SupportedLanguages() []Language {
	out := make([]Language, 0, len(languageNames))
	for code, name := range languageNames {
		out = append(out, Language{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
