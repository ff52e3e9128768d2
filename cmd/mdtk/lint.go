package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/chrimaho/mdtk/internal/checks"
	"github.com/chrimaho/mdtk/internal/runner"
	"github.com/chrimaho/mdtk/internal/ui"
)

func newLintCommand() *cli.Command {
	return &cli.Command{
		Name:      "lint",
		Usage:     "Run the formatters over the repository",
		ArgsUsage: "[task ...]",
		Flags:     []cli.Flag{configFlag()},
		Action:    lintAction,
	}
}

func lintAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := checks.Lint(ctx, runner.NewExec(), cfg, ".", cmd.Args().Slice()); err != nil {
		return err
	}

	ui.NewReport().Successf("Linting passed.")

	return nil
}
