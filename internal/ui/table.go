package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/chrimaho/mdtk/internal/checks"
	"github.com/chrimaho/mdtk/internal/outline"
)

// CheckSummaryOptions controls check-summary rendering.
type CheckSummaryOptions struct {
	JSON bool
}

type checkRow struct {
	Check  string `json:"check"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// RenderCheckSummary writes a pass/fail table (or JSON) for a check run and
// reports whether every check passed.
func RenderCheckSummary(w io.Writer, results []checks.Result, opts CheckSummaryOptions) (bool, error) {
	rows := make([]checkRow, 0, len(results))
	passed := true

	s := newStyles()
	for _, result := range results {
		row := checkRow{Check: result.Name, Status: "pass"}
		if !result.Passed() {
			passed = false
			row.Status = "fail"
			row.Detail = result.Err.Error()
		}

		rows = append(rows, row)
	}

	if opts.JSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(rows); err != nil {
			return passed, fmt.Errorf("encode check summary json: %w", err)
		}

		return passed, nil
	}

	writer := table.NewWriter()
	writer.SetOutputMirror(w)
	writer.SetStyle(table.StyleRounded)
	writer.AppendHeader(table.Row{"CHECK", "STATUS"})

	for _, row := range rows {
		status := s.green.Sprint(row.Status)
		if row.Status == "fail" {
			status = s.red.Sprint(row.Status)
		}

		writer.AppendRow(table.Row{row.Check, status})
	}

	writer.Render()

	for _, row := range rows {
		if row.Detail != "" {
			fmt.Fprintf(w, "%s: %s\n", row.Check, row.Detail)
		}
	}

	return passed, nil
}

// RenderOutline writes the heading structure of a document, indented by
// level, with source line numbers.
func RenderOutline(w io.Writer, path string, headings []outline.Heading, jsonOut bool) error {
	if jsonOut {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(headings); err != nil {
			return fmt.Errorf("encode outline json: %w", err)
		}

		return nil
	}

	fmt.Fprintf(w, "%s\n\n", path)

	if len(headings) == 0 {
		fmt.Fprintln(w, "No headings found.")
		return nil
	}

	fmt.Fprintln(w, "STRUCTURE:")
	for _, h := range headings {
		indent := strings.Repeat("  ", h.Level-1)
		fmt.Fprintf(w, "%3d  %s%s\n", h.Line, indent, h.Text)
	}

	return nil
}
