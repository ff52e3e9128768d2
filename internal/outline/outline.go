// Package outline extracts the heading structure of a markdown document,
// used to inspect transformer output (tab markers become real headings after
// a reformat, so they show up here).
package outline

import (
	"bytes"
	"os"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"github.com/samber/oops"
)

// Heading is one heading in document order.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Line  int    `json:"line"`
}

// File parses the markdown file at path and returns its headings.
func File(path string) ([]Heading, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.
			Code("FILE_NOT_FOUND").
			With("path", path).
			Wrapf(err, "reading %q", path)
	}

	return Parse(content), nil
}

// Parse returns the headings of a markdown document with their levels and
// 1-based line numbers.
func Parse(content []byte) []Heading {
	content = stripBOM(content)

	mdParser := parser.NewWithExtensions(parser.CommonExtensions)
	doc := mdParser.Parse(content)

	var headings []Heading
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}

		if heading, isHeading := node.(*ast.Heading); isHeading {
			if text := headingText(heading); text != "" {
				headings = append(headings, Heading{Level: heading.Level, Text: text})
			}
		}

		return ast.GoToNext
	})

	assignLineNumbers(headings, content)

	return headings
}

func headingText(node ast.Node) string {
	var buf strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if entering {
			switch typed := n.(type) {
			case *ast.Text:
				buf.Write(typed.Literal)
			case *ast.Code:
				buf.Write(typed.Literal)
			}
		}
		return ast.GoToNext
	})

	return strings.Join(strings.Fields(buf.String()), " ")
}

func stripBOM(content []byte) []byte {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:]
	}

	return content
}

// assignLineNumbers scans the source for heading markers in document order.
// gomarkdown's AST does not keep source positions, so the scan re-finds each
// heading, skipping fenced code blocks. Candidates must match both the level
// and the rendered text, so a heading the parse skipped (empty text) or an
// unrelated line at the same level cannot shift later line numbers.
func assignLineNumbers(headings []Heading, content []byte) {
	if len(headings) == 0 {
		return
	}

	lines := bytes.Split(content, []byte("\n"))
	hi := 0
	inFenced := false

	for lineIdx := 0; lineIdx < len(lines) && hi < len(headings); lineIdx++ {
		trimmed := bytes.TrimSpace(lines[lineIdx])

		if bytes.HasPrefix(trimmed, []byte("```")) || bytes.HasPrefix(trimmed, []byte("~~~")) {
			inFenced = !inFenced
			continue
		}
		if inFenced {
			continue
		}

		want := headings[hi]
		wantText := plainText([]byte(want.Text))

		if level := atxHeadingLevel(lines[lineIdx]); level == want.Level &&
			plainText(atxHeadingBody(lines[lineIdx])) == wantText {
			headings[hi].Line = lineIdx + 1
			hi++
			continue
		}

		// A setext heading's marker is the underline; the heading text sits
		// on the line above it.
		if lineIdx > 0 && setextLevel(trimmed) == want.Level &&
			plainText(lines[lineIdx-1]) == wantText {
			headings[hi].Line = lineIdx
			hi++
		}
	}
}

// atxHeadingBody strips the opening hashes and any closing hash sequence.
func atxHeadingBody(line []byte) []byte {
	body := bytes.TrimLeft(bytes.TrimSpace(line), "#")
	return bytes.TrimRight(bytes.TrimSpace(body), "#")
}

// setextLevel reports the heading level a setext underline denotes, or 0 for
// any other line.
func setextLevel(trimmed []byte) int {
	if len(trimmed) == 0 {
		return 0
	}

	switch {
	case bytes.Count(trimmed, []byte("=")) == len(trimmed):
		return 1
	case bytes.Count(trimmed, []byte("-")) == len(trimmed):
		return 2
	}

	return 0
}

// plainText normalizes a heading candidate for comparison with AST text:
// inline emphasis and code markers are dropped and whitespace is collapsed.
func plainText(b []byte) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '*', '_', '`', '~':
			return -1
		}
		return r
	}, string(b))

	return strings.Join(strings.Fields(cleaned), " ")
}

// atxHeadingLevel returns the heading level (1-6) for an ATX heading line,
// or 0 if the line is not an ATX heading.
func atxHeadingLevel(line []byte) int {
	spaces := 0
	for spaces < len(line) && spaces < 4 && line[spaces] == ' ' {
		spaces++
	}
	if spaces >= 4 || spaces >= len(line) || line[spaces] != '#' {
		return 0
	}

	level := 0
	for spaces+level < len(line) && level < 7 && line[spaces+level] == '#' {
		level++
	}
	if level >= 1 && level <= 6 && spaces+level < len(line) && line[spaces+level] == ' ' {
		return level
	}
	return 0
}
