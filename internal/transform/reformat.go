package transform

import (
	"strings"

	"github.com/samber/oops"
)

// IncludeMarker is the snippet-splice sentinel some documentation renderers
// expand at build time. Reformatting blanks any line carrying it, except
// inside code fences.
const IncludeMarker = "--8<--"

// HeaderStyle is the heading level that replaces tab markers during
// reformatting.
type HeaderStyle string

const (
	HeaderH2 HeaderStyle = "h2"
	HeaderH3 HeaderStyle = "h3"
	HeaderH4 HeaderStyle = "h4"

	DefaultHeaderStyle = HeaderH3
)

// ParseHeaderStyle accepts either a symbolic level name (h2, h3, h4) or the
// literal heading marker (##, ###, ####). An empty string selects the
// default.
func ParseHeaderStyle(s string) (HeaderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultHeaderStyle, nil
	case "h2", "##":
		return HeaderH2, nil
	case "h3", "###":
		return HeaderH3, nil
	case "h4", "####":
		return HeaderH4, nil
	default:
		return "", oops.
			Code("INVALID_HEADER_STYLE").
			With("style", s).
			Hint("Valid header styles: ##, ###, ####, h2, h3, h4").
			Errorf("unknown header style %q", s)
	}
}

// Marker returns the literal heading marker for the style.
func (h HeaderStyle) Marker() string {
	switch h {
	case HeaderH2:
		return "##"
	case HeaderH4:
		return "####"
	default:
		return "###"
	}
}

// Reformat flattens a tabbed markdown document: tab markers become headings
// at the given level, tab bodies lose one 4-space indent level, short `py`
// fence tags become `python`, and include markers are stripped outside code
// fences.
//
// The scan is a single pass with two pieces of line state. Per-line check
// order matters: a line can end one tab body and open the next marker, so
// dedenting runs before marker detection, which runs before fence handling.
func Reformat(content string, style HeaderStyle) string {
	lines := splitLines(content)
	inCodeBlock := false
	inTabBlock := false

	for i, line := range lines {
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}

		if inTabBlock {
			if strings.HasPrefix(line, "    ") {
				line = line[4:]
			} else {
				inTabBlock = false
			}
		}

		if strings.HasPrefix(line, "===") {
			inTabBlock = true
			line = strings.ReplaceAll(line, `=== `, style.Marker()+" ")
			line = strings.ReplaceAll(line, `"`, "")
		}

		if strings.HasPrefix(line, "```py") && !strings.HasPrefix(line, "```python") {
			inCodeBlock = true
			line = strings.ReplaceAll(line, "```py", "```python")
		}

		if inCodeBlock && strings.TrimSpace(line) == "```" {
			inCodeBlock = false
		}

		if !inCodeBlock && strings.Contains(line, IncludeMarker) {
			line = ""
		}

		lines[i] = line
	}

	return strings.Join(lines, "")
}

// splitLines splits content keeping line terminators so untouched lines
// round-trip byte for byte.
func splitLines(content string) []string {
	lines := strings.SplitAfter(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}
