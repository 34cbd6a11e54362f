package render

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

	richPolicy  = bluemonday.NewPolicy().AllowElements("strong", "br")
	prosePolicy = bluemonday.UGCPolicy()

	markdown = goldmark.New()
)

// RichText applies the minimal transform used by the credentials, expertise,
// locations and affiliations fields: **bold** becomes <strong> and newlines
// become <br>. Everything else stays text.
func RichText(raw string) string {
	escaped := html.EscapeString(strings.TrimSpace(raw))
	escaped = boldPattern.ReplaceAllString(escaped, "<strong>$1</strong>")
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return richPolicy.Sanitize(escaped)
}

// Paragraphs renders a bio: blank lines separate paragraphs.
func Paragraphs(raw string) string {
	var blocks []string
	for _, p := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n\n") {
		if t := strings.TrimSpace(p); t != "" {
			blocks = append(blocks, t)
		}
	}
	if len(blocks) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(strings.Join(blocks, "\n\n")), &buf); err != nil {
		var b strings.Builder
		for _, p := range blocks {
			b.WriteString("<p>" + html.EscapeString(p) + "</p>")
		}
		return b.String()
	}
	return strings.TrimSpace(prosePolicy.Sanitize(buf.String()))
}
