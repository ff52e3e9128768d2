package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/chrimaho/mdtk/internal/pipeline"
	"github.com/chrimaho/mdtk/internal/runner"
	"github.com/chrimaho/mdtk/internal/ui"
)

const (
	convertUsage          = "mdtk convert-to-notebook <file_path>"
	formatAndConvertUsage = "mdtk format-and-convert <file_path> [header_style]"
)

func newConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert-to-notebook",
		Usage:     "Convert a markdown file to a Jupyter notebook",
		ArgsUsage: "<file_path>",
		Flags:     []cli.Flag{configFlag()},
		Action:    convertAction,
	}
}

func convertAction(ctx context.Context, cmd *cli.Command) error {
	const requiredArgs = 1
	if cmd.Args().Len() < requiredArgs {
		return usageError(convertUsage, requiredArgs, cmd.Args().Len())
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	report := ui.NewReport()

	_, err = pipeline.ConvertToNotebook(ctx, runner.NewExec(), cfg, cmd.Args().Get(0), report.Writer())
	if err != nil {
		if reportCondition(report, err) {
			return nil
		}

		return err
	}

	return nil
}

func newFormatAndConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "format-and-convert",
		Usage:     "Reformat a tabbed markdown file, then convert it to a notebook",
		ArgsUsage: "<file_path> [header_style]",
		Flags:     []cli.Flag{configFlag()},
		Action:    formatAndConvertAction,
	}
}

func formatAndConvertAction(ctx context.Context, cmd *cli.Command) error {
	const requiredArgs = 1
	if cmd.Args().Len() < requiredArgs {
		return usageError(formatAndConvertUsage, requiredArgs, cmd.Args().Len())
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	style, err := resolveHeaderStyle(cmd.Args().Get(1), cfg)
	if err != nil {
		return err
	}

	report := ui.NewReport()

	outputPath, err := pipeline.FormatAndConvert(
		ctx, runner.NewExec(), cfg, cmd.Args().Get(0), style, report.Writer())
	if err != nil {
		if reportCondition(report, err) {
			return nil
		}

		return err
	}

	report.Successf("Notebook written to: %s", outputPath)

	return nil
}
