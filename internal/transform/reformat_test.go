package transform_test

import (
	"strings"
	"testing"

	"github.com/chrimaho/mdtk/internal/transform"
)

func TestParseHeaderStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    transform.HeaderStyle
		wantErr bool
	}{
		{input: "", want: transform.HeaderH3},
		{input: "h2", want: transform.HeaderH2},
		{input: "h3", want: transform.HeaderH3},
		{input: "h4", want: transform.HeaderH4},
		{input: "H3", want: transform.HeaderH3},
		{input: "##", want: transform.HeaderH2},
		{input: "###", want: transform.HeaderH3},
		{input: "####", want: transform.HeaderH4},
		{input: "h5", wantErr: true},
		{input: "#####", wantErr: true},
		{input: "heading", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("style "+tt.input, func(t *testing.T) {
			got, err := transform.ParseHeaderStyle(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHeaderStyle(%q) error = nil, want non-nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseHeaderStyle(%q) error = %v", tt.input, err)
			}

			if got != tt.want {
				t.Errorf("ParseHeaderStyle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHeaderStyleMarker(t *testing.T) {
	if got := transform.HeaderH2.Marker(); got != "##" {
		t.Errorf("HeaderH2.Marker() = %q, want %q", got, "##")
	}

	if got := transform.HeaderH3.Marker(); got != "###" {
		t.Errorf("HeaderH3.Marker() = %q, want %q", got, "###")
	}

	if got := transform.HeaderH4.Marker(); got != "####" {
		t.Errorf("HeaderH4.Marker() = %q, want %q", got, "####")
	}
}

func TestReformatConvertsMarkerAndDedentsBody(t *testing.T) {
	input := "=== \"Pandas\"\n    df.sum()\n    df.mean()\n"
	want := "### Pandas\ndf.sum()\ndf.mean()\n"

	got := transform.Reformat(input, transform.HeaderH3)
	if got != want {
		t.Errorf("Reformat() = %q, want %q", got, want)
	}
}

func TestReformatHeaderLevels(t *testing.T) {
	input := "=== \"SQL\"\n    SELECT 1;\n"

	tests := []struct {
		style transform.HeaderStyle
		want  string
	}{
		{style: transform.HeaderH2, want: "## SQL\n"},
		{style: transform.HeaderH3, want: "### SQL\n"},
		{style: transform.HeaderH4, want: "#### SQL\n"},
	}

	for _, tt := range tests {
		got := transform.Reformat(input, tt.style)
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("Reformat() with %q = %q, want prefix %q", tt.style, got, tt.want)
		}
	}
}

func TestReformatNormalizesShortFenceAlias(t *testing.T) {
	input := "```py\nprint(1)\n```\n"
	want := "```python\nprint(1)\n```\n"

	if got := transform.Reformat(input, transform.HeaderH3); got != want {
		t.Errorf("Reformat() = %q, want %q", got, want)
	}
}

func TestReformatLeavesCanonicalFenceAlone(t *testing.T) {
	input := "```python\nprint(1)\n```\n"

	if got := transform.Reformat(input, transform.HeaderH3); got != input {
		t.Errorf("Reformat() = %q, want unchanged %q", got, input)
	}
}

func TestReformatStripsIncludeMarkerOutsideCode(t *testing.T) {
	input := "Intro.\n--8<-- \"snippets/setup.md\"\nOutro.\n"
	want := "Intro.\nOutro.\n"

	if got := transform.Reformat(input, transform.HeaderH3); got != want {
		t.Errorf("Reformat() = %q, want %q", got, want)
	}
}

func TestReformatKeepsIncludeMarkerInsideCode(t *testing.T) {
	input := "```py\n--8<-- literal\n```\n"
	want := "```python\n--8<-- literal\n```\n"

	if got := transform.Reformat(input, transform.HeaderH3); got != want {
		t.Errorf("Reformat() = %q, want %q", got, want)
	}
}

func TestReformatIsIdentityOnFlatDocuments(t *testing.T) {
	input := "# Title\n\nSome prose.\n\n```sql\nSELECT 1;\n```\n\n- a list\n"

	if got := transform.Reformat(input, transform.HeaderH3); got != input {
		t.Errorf("Reformat() = %q, want unchanged input", got)
	}
}

func TestReformatTabBodyEndsAtUnindentedLine(t *testing.T) {
	input := "=== \"pandas\"\n    df.sum()\nAfter the tab.\n"
	want := "### pandas\ndf.sum()\nAfter the tab.\n"

	if got := transform.Reformat(input, transform.HeaderH3); got != want {
		t.Errorf("Reformat() = %q, want %q", got, want)
	}
}

func TestReformatAdjacentTabSections(t *testing.T) {
	input := "=== \"pandas\"\n    df.sum()\n=== \"polars\"\n    df.select()\n"
	want := "### pandas\ndf.sum()\n### polars\ndf.select()\n"

	if got := transform.Reformat(input, transform.HeaderH3); got != want {
		t.Errorf("Reformat() = %q, want %q", got, want)
	}
}

func TestReformatBlankLinesPassThrough(t *testing.T) {
	input := "=== \"pandas\"\n    df.sum()\n\n    df.mean()\n"
	want := "### pandas\ndf.sum()\n\ndf.mean()\n"

	if got := transform.Reformat(input, transform.HeaderH3); got != want {
		t.Errorf("Reformat() = %q, want %q", got, want)
	}
}

func TestReformatFencedTabBody(t *testing.T) {
	input := "=== \"Polars\"\n    ```py\n    df.select()\n    ```\nDone.\n"
	want := "### Polars\n```python\ndf.select()\n```\nDone.\n"

	if got := transform.Reformat(input, transform.HeaderH3); got != want {
		t.Errorf("Reformat() = %q, want %q", got, want)
	}
}

func TestReformatPreservesMissingFinalNewline(t *testing.T) {
	input := "# Title\n\nLast line without newline"

	if got := transform.Reformat(input, transform.HeaderH3); got != input {
		t.Errorf("Reformat() = %q, want unchanged input", got)
	}
}
