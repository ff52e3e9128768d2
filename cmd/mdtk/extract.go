package main

import (
	"context"
	"strings"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/chrimaho/mdtk/internal/pipeline"
	"github.com/chrimaho/mdtk/internal/ui"
)

const extractUsage = "mdtk extract-sections <file_path> <section_name>"

func newExtractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract-sections",
		Usage:     "Extract one tab section from a markdown file",
		ArgsUsage: "<file_path> <section_name>",
		Flags:     []cli.Flag{configFlag()},
		Action:    extractAction,
	}
}

func extractAction(_ context.Context, cmd *cli.Command) error {
	const requiredArgs = 2
	if cmd.Args().Len() < requiredArgs {
		return usageError(extractUsage, requiredArgs, cmd.Args().Len())
	}

	filePath := cmd.Args().Get(0)
	sectionName := cmd.Args().Get(1)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !cfg.ValidSection(sectionName) {
		return oops.
			Code("INVALID_SECTION").
			With("section", sectionName).
			Hint("Valid options are: " + strings.Join(cfg.Sections, ", ")).
			Errorf("invalid section name %q", sectionName)
	}

	report := ui.NewReport()

	result, err := pipeline.ExtractSections(filePath, sectionName)
	if err != nil {
		if reportCondition(report, err) {
			return nil
		}

		return err
	}

	report.Successf("Extracted %q sections written to: %s", sectionName, result.OutputPath)
	report.Infof("Kept %d section(s), removed %d section(s)", result.Kept, result.Removed)

	return nil
}
