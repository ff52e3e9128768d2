package transform

import (
	"regexp"
	"strings"

	"github.com/samber/oops"
)

// tabPattern matches a tab marker line `=== "Name"` and the maximal run of
// blank-or-indented lines that follow it. Markers inside code fences match
// too; behavior for such documents is best-effort.
var tabPattern = regexp.MustCompile(`(?m)^=== "([^"]+)"\s*\n((?:^[ \t]+.*\n*)*)`)

// blankRunPattern finds runs of 4+ newlines left behind by section removal.
var blankRunPattern = regexp.MustCompile(`\n{4,}`)

// Section is one tab block found in a document.
type Section struct {
	// Name is the quoted tab label. Matching against it is case-insensitive.
	Name string
	// Text is the full captured text, marker line included.
	Text string
	// Body holds the indented body lines, still indented.
	Body string
}

// FindSections returns every tab section in the document, in document order.
func FindSections(content string) []Section {
	matches := tabPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	for _, m := range matches {
		sections = append(sections, Section{Name: m[1], Text: m[0], Body: m[2]})
	}

	return sections
}

// ExtractResult reports what ExtractSection kept and removed.
type ExtractResult struct {
	Content string
	Kept    int
	Removed int
}

// ExtractSection removes every tab section whose name does not match the
// requested one (case-insensitive), leaving the matching sections and all
// non-tab content untouched. Runs of blank lines created by the removals are
// collapsed to at most two.
//
// A document with no tab sections at all yields a NO_SECTIONS error; a
// document where the requested name never appears yields SECTION_ABSENT.
// Both are conditions for the caller to report, not failures.
func ExtractSection(content, sectionName string) (ExtractResult, error) {
	sections := FindSections(content)
	if len(sections) == 0 {
		return ExtractResult{}, oops.
			Code("NO_SECTIONS").
			With("section", sectionName).
			Errorf("no tab sections found")
	}

	target := strings.ToLower(sectionName)
	result := content
	kept := 0

	// Removal replaces the first occurrence of each captured text, walking
	// matches in reverse document order so identical sections cannot be
	// deleted twice.
	for i := len(sections) - 1; i >= 0; i-- {
		section := sections[i]
		if strings.ToLower(section.Name) == target {
			kept++
			continue
		}

		result = strings.Replace(result, section.Text, "", 1)
	}

	if kept == 0 {
		return ExtractResult{}, oops.
			Code("SECTION_ABSENT").
			With("section", sectionName).
			Errorf("no sections found for %q", sectionName)
	}

	result = blankRunPattern.ReplaceAllString(result, "\n\n\n")

	return ExtractResult{
		Content: result,
		Kept:    kept,
		Removed: len(sections) - kept,
	}, nil
}
