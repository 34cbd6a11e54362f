package youtube

import (
	"regexp"
	"strings"
)

// Patterns are tried in order. The explicit URL shapes come first so a bare
// eleven character string only matches when nothing more specific does.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/watch\?v=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

// ExtractVideoID returns the canonical video identifier for an embed, watch or
// short URL, or for a bare identifier. The boolean is false when no known shape
// matches; callers report that as an input error.
func ExtractVideoID(raw string) (string, bool) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return "", false
	}
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(t); len(m) > 1 {
			return m[1], true
		}
	}
	return "", false
}
