package extract

import (
	"regexp"
	"strings"
)

// Marker is a bracketed [TAG]...[/TAG] block embedded in free model text.
type Marker struct {
	Tag string
	re  *regexp.Regexp
}

// NewMarker compiles a marker for tag. When multiline is false the interior
// may not contain a newline.
func NewMarker(tag string, multiline bool) *Marker {
	flags := ""
	if multiline {
		flags = "(?s)"
	}
	q := regexp.QuoteMeta(tag)
	return &Marker{
		Tag: tag,
		re:  regexp.MustCompile(flags + `\[` + q + `\](.*?)\[/` + q + `\]`),
	}
}

var (
	UpdatedFields = NewMarker("UPDATED_FIELDS", true)
	Explanation   = NewMarker("EXPLANATION", true)
	Icon          = NewMarker("ICON", false)
)

// Find returns the interior of the first block in s, untrimmed.
func (m *Marker) Find(s string) (string, bool) {
	sub := m.re.FindStringSubmatch(s)
	if sub == nil {
		return "", false
	}
	return sub[1], true
}

// Strip removes every block from s and trims the result.
func (m *Marker) Strip(s string) string {
	return strings.TrimSpace(m.re.ReplaceAllLiteralString(s, ""))
}
