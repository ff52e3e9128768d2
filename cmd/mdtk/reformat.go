package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/chrimaho/mdtk/internal/config"
	"github.com/chrimaho/mdtk/internal/pipeline"
	"github.com/chrimaho/mdtk/internal/runner"
	"github.com/chrimaho/mdtk/internal/transform"
	"github.com/chrimaho/mdtk/internal/ui"
)

const reformatUsage = "mdtk reformat <file_path> [header_style]"

func newReformatCommand() *cli.Command {
	return &cli.Command{
		Name:      "reformat",
		Usage:     "Flatten a tabbed markdown file into plain headings",
		ArgsUsage: "<file_path> [header_style]",
		Flags:     []cli.Flag{configFlag()},
		Action:    reformatAction,
	}
}

func reformatAction(ctx context.Context, cmd *cli.Command) error {
	const requiredArgs = 1
	if cmd.Args().Len() < requiredArgs {
		return usageError(reformatUsage, requiredArgs, cmd.Args().Len())
	}

	filePath := cmd.Args().Get(0)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	style, err := resolveHeaderStyle(cmd.Args().Get(1), cfg)
	if err != nil {
		return err
	}

	report := ui.NewReport()

	outputPath, err := pipeline.Reformat(ctx, runner.NewExec(), cfg, filePath, style, report.Writer())
	if err != nil {
		if reportCondition(report, err) {
			return nil
		}

		return err
	}

	report.Successf("Reformatted file written to: %s", outputPath)

	return nil
}

// resolveHeaderStyle prefers the positional argument and falls back to the
// configured default.
func resolveHeaderStyle(arg string, cfg *config.Config) (transform.HeaderStyle, error) {
	if arg == "" {
		arg = cfg.Header
	}

	return transform.ParseHeaderStyle(arg)
}
