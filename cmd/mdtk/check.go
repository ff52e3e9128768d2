package main

import (
	"context"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/chrimaho/mdtk/internal/checks"
	"github.com/chrimaho/mdtk/internal/runner"
	"github.com/chrimaho/mdtk/internal/ui"
)

func newCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Run the verification battery over the repository",
		ArgsUsage: "[task ...]",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Run every check, including the opt-in ones",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the summary as JSON",
			},
		},
		Action: checkAction,
	}
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	results, err := checks.Check(ctx, runner.NewExec(), cfg, ".", cmd.Args().Slice(), cmd.Bool("all"))
	if err != nil {
		return err
	}

	passed, err := ui.RenderCheckSummary(os.Stdout, results, ui.CheckSummaryOptions{JSON: cmd.Bool("json")})
	if err != nil {
		return err
	}

	if !passed {
		return oops.
			Code("CHECKS_FAILED").
			Errorf("one or more checks failed")
	}

	return nil
}
