package outline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chrimaho/mdtk/internal/outline"
)

func TestParseFindsHeadingsWithLevelsAndLines(t *testing.T) {
	content := []byte(`# Title

Some prose.

## Section One

### Nested

## Section Two
`)

	headings := outline.Parse(content)
	if len(headings) != 4 {
		t.Fatalf("Parse() len = %d, want 4", len(headings))
	}

	want := []outline.Heading{
		{Level: 1, Text: "Title", Line: 1},
		{Level: 2, Text: "Section One", Line: 5},
		{Level: 3, Text: "Nested", Line: 7},
		{Level: 2, Text: "Section Two", Line: 9},
	}

	for i, w := range want {
		if headings[i] != w {
			t.Errorf("headings[%d] = %+v, want %+v", i, headings[i], w)
		}
	}
}

func TestParseIgnoresHeadingsInsideFences(t *testing.T) {
	content := []byte("# Real\n\n```\n# not a heading\n```\n\n## Also real\n")

	headings := outline.Parse(content)
	if len(headings) != 2 {
		t.Fatalf("Parse() len = %d, want 2", len(headings))
	}

	if headings[1].Text != "Also real" || headings[1].Line != 7 {
		t.Errorf("headings[1] = %+v, want Also real on line 7", headings[1])
	}
}

func TestParseSetextHeadingsKeepLineNumbers(t *testing.T) {
	content := []byte("Title\n=====\n\nIntro.\n\nDetails\n-------\n\n### Deep\n")

	headings := outline.Parse(content)
	if len(headings) != 3 {
		t.Fatalf("Parse() len = %d, want 3", len(headings))
	}

	want := []outline.Heading{
		{Level: 1, Text: "Title", Line: 1},
		{Level: 2, Text: "Details", Line: 6},
		{Level: 3, Text: "Deep", Line: 9},
	}

	for i, w := range want {
		if headings[i] != w {
			t.Errorf("headings[%d] = %+v, want %+v", i, headings[i], w)
		}
	}
}

func TestParseEmptyHeadingDoesNotShiftLines(t *testing.T) {
	content := []byte("## \n\n## Real\n")

	headings := outline.Parse(content)
	if len(headings) != 1 {
		t.Fatalf("Parse() len = %d, want 1", len(headings))
	}

	if headings[0].Text != "Real" || headings[0].Line != 3 {
		t.Errorf("headings[0] = %+v, want Real on line 3", headings[0])
	}
}

func TestParseMatchesHeadingsWithInlineMarkup(t *testing.T) {
	content := []byte("## Using `df.sum()`\n\n## Plain\n")

	headings := outline.Parse(content)
	if len(headings) != 2 {
		t.Fatalf("Parse() len = %d, want 2", len(headings))
	}

	if headings[0].Line != 1 || headings[1].Line != 3 {
		t.Errorf("lines = %d, %d, want 1 and 3", headings[0].Line, headings[1].Line)
	}
}

func TestParseStripsBOM(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("# Title\n")...)

	headings := outline.Parse(content)
	if len(headings) != 1 || headings[0].Text != "Title" {
		t.Fatalf("Parse() = %+v, want single Title heading", headings)
	}
}

func TestParseNoHeadings(t *testing.T) {
	if headings := outline.Parse([]byte("Just prose.\n")); len(headings) != 0 {
		t.Errorf("Parse() = %+v, want none", headings)
	}
}

func TestFileReadsAndParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("## Pandas\n\ndf.sum()\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	headings, err := outline.File(path)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}

	if len(headings) != 1 || headings[0].Text != "Pandas" || headings[0].Level != 2 {
		t.Errorf("File() = %+v, want single level-2 Pandas heading", headings)
	}
}

func TestFileMissing(t *testing.T) {
	if _, err := outline.File(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Fatal("File() error = nil, want non-nil")
	}
}
