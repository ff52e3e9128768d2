// Package pipeline drives the file-level operations of the tab-block
// transformer: extract a section, reformat a tabbed document, and convert it
// to a notebook. Each operation reads one input file and writes one sibling
// output file; external tools are reached through a runner.Runner.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/oops"

	"github.com/chrimaho/mdtk/internal/config"
	"github.com/chrimaho/mdtk/internal/runner"
	"github.com/chrimaho/mdtk/internal/transform"
)

const markdownExt = ".md"

// ExtractReport summarizes a completed extraction.
type ExtractReport struct {
	OutputPath string
	Kept       int
	Removed    int
}

// ExtractSections keeps only the tab sections named sectionName in the file
// at path and writes the result to `<stem>-<section><ext>`, overwriting any
// existing file there.
func ExtractSections(path, sectionName string) (ExtractReport, error) {
	if err := checkMarkdownInput(path); err != nil {
		return ExtractReport{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return ExtractReport{}, oops.Wrapf(err, "reading %q", path)
	}

	result, err := transform.ExtractSection(string(content), sectionName)
	if err != nil {
		return ExtractReport{}, err
	}

	outputPath := derivedPath(path, "-"+strings.ToLower(sectionName))
	if err := os.WriteFile(outputPath, []byte(result.Content), 0o644); err != nil {
		return ExtractReport{}, oops.
			Code("WRITE_FAILED").
			With("path", outputPath).
			Wrapf(err, "writing extracted sections")
	}

	return ExtractReport{
		OutputPath: outputPath,
		Kept:       result.Kept,
		Removed:    result.Removed,
	}, nil
}

// Reformat flattens the tabbed document at path into `<stem>-r<ext>` and
// returns the output path. The formatter pre-step runs on the input in
// place; its failure is reported to w but does not abort the reformat.
func Reformat(
	ctx context.Context,
	r runner.Runner,
	cfg *config.Config,
	path string,
	style transform.HeaderStyle,
	w io.Writer,
) (string, error) {
	if err := checkExists(path); err != nil {
		return "", err
	}

	preformat(ctx, r, cfg, path, w)

	content, err := os.ReadFile(path)
	if err != nil {
		return "", oops.Wrapf(err, "reading %q", path)
	}

	reformatted := transform.Reformat(string(content), style)

	outputPath := derivedPath(path, "-r")
	if err := os.WriteFile(outputPath, []byte(reformatted), 0o644); err != nil {
		return "", oops.
			Code("WRITE_FAILED").
			With("path", outputPath).
			Wrapf(err, "writing reformatted file")
	}

	return outputPath, nil
}

// ConvertToNotebook converts the markdown file at path to a Jupyter notebook
// next to it, via the configured notebook tool. Conversion failure is fatal;
// the formatter pre-step is tolerant.
func ConvertToNotebook(
	ctx context.Context,
	r runner.Runner,
	cfg *config.Config,
	path string,
	w io.Writer,
) (string, error) {
	if err := checkMarkdownInput(path); err != nil {
		return "", err
	}

	outputPath := strings.TrimSuffix(path, markdownExt) + ".ipynb"

	preformat(ctx, r, cfg, path, w)

	err := r.Run(ctx,
		cfg.Tools.Notebook,
		"--to=notebook",
		"--update",
		"--pipe=black",
		path,
		"--output="+outputPath,
	)
	if err != nil {
		return "", oops.
			With("input", path).
			Wrapf(err, "converting %q to a notebook", path)
	}

	fmt.Fprintf(w, "Converted %s to %s\n", path, outputPath)

	return outputPath, nil
}

// FormatAndConvert is Reformat followed by ConvertToNotebook on its output.
func FormatAndConvert(
	ctx context.Context,
	r runner.Runner,
	cfg *config.Config,
	path string,
	style transform.HeaderStyle,
	w io.Writer,
) (string, error) {
	reformattedPath, err := Reformat(ctx, r, cfg, path, style, w)
	if err != nil {
		return "", err
	}

	return ConvertToNotebook(ctx, r, cfg, reformattedPath, w)
}

// preformat runs the docs formatter on path in place, tolerating failure.
func preformat(ctx context.Context, r runner.Runner, cfg *config.Config, path string, w io.Writer) {
	err := r.Run(ctx,
		cfg.Tools.Formatter,
		fmt.Sprintf("--line-length=%d", cfg.LineLength),
		"--skip-errors",
		path,
	)
	if err != nil {
		fmt.Fprintf(w, "Warning: formatter failed on %s: %v (continuing)\n", path, err)
	}
}

func checkExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return oops.
				Code("FILE_NOT_FOUND").
				With("path", path).
				Errorf("file %s does not exist", path)
		}

		return oops.Wrapf(err, "checking %q", path)
	}

	return nil
}

func checkMarkdownInput(path string) error {
	if err := checkExists(path); err != nil {
		return err
	}

	if filepath.Ext(path) != markdownExt {
		return oops.
			Code("NOT_MARKDOWN").
			With("path", path).
			Errorf("file %s is not a markdown file", path)
	}

	return nil
}

// derivedPath inserts suffix between the stem and extension of path.
func derivedPath(path, suffix string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	return filepath.Join(filepath.Dir(path), stem+suffix+ext)
}
