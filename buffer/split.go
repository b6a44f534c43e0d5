package buffer

import (
	"strings"

	"github.com/iw2rmb/textbox/internal/glyph"
)

// SplitText splits s on '\n', keeping empty segments: "a\n" yields
// ["a", ""] and "" yields [""].
func SplitText(s string) []string {
	return strings.Split(s, "\n")
}

// Ingest builds lines from s one character at a time.
//
// In multi-line mode '\n' ends a line. Every other ISO control character
// is dropped, and so is '\n' in single-line mode.
func Ingest(s string, multiLine bool) []string {
	var (
		out []string
		sb  strings.Builder
	)
	for _, r := range s {
		if r == '\n' && multiLine {
			out = append(out, sb.String())
			sb.Reset()
			continue
		}
		if glyph.IsControl(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return append(out, sb.String())
}

// Sanitize drops ISO control characters, including '\n'.
func Sanitize(s string) string {
	if strings.IndexFunc(s, glyph.IsControl) < 0 {
		return s
	}
	return strings.Join(Ingest(s, false), "")
}
