// Package ui renders command output: colored report lines for the
// transformer operations and a summary table for the check battery.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type styles struct {
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	dim    *color.Color
	bold   *color.Color
}

func newStyles() styles {
	return styles{
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		dim:    color.New(color.Faint),
		bold:   color.New(color.Bold),
	}
}

// Report prints human-readable result lines for the transformer commands.
type Report struct {
	w io.Writer
	s styles
}

// NewReport creates a Report that writes to stdout.
func NewReport() *Report {
	return &Report{w: os.Stdout, s: newStyles()}
}

// NewReportWithWriter creates a Report that writes to the given writer.
func NewReportWithWriter(w io.Writer) *Report {
	return &Report{w: w, s: newStyles()}
}

// Writer exposes the underlying writer for collaborators that stream their
// own progress output.
func (r *Report) Writer() io.Writer {
	return r.w
}

// Successf prints a green success line.
func (r *Report) Successf(format string, args ...any) {
	fmt.Fprintln(r.w, r.s.green.Sprintf(format, args...))
}

// Warnf prints a yellow notice line, used for the no-op conditions (missing
// file, no sections) that end a command without output.
func (r *Report) Warnf(format string, args ...any) {
	fmt.Fprintln(r.w, r.s.yellow.Sprintf(format, args...))
}

// Infof prints a plain line.
func (r *Report) Infof(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Detailf prints a dimmed detail line.
func (r *Report) Detailf(format string, args ...any) {
	fmt.Fprintln(r.w, r.s.dim.Sprintf(format, args...))
}
