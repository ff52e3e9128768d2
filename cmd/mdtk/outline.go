package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/chrimaho/mdtk/internal/outline"
	"github.com/chrimaho/mdtk/internal/ui"
)

const outlineUsage = "mdtk outline <file_path>"

func newOutlineCommand() *cli.Command {
	return &cli.Command{
		Name:      "outline",
		Usage:     "Show the heading structure of a markdown file",
		ArgsUsage: "<file_path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the outline as JSON",
			},
		},
		Action: outlineAction,
	}
}

func outlineAction(_ context.Context, cmd *cli.Command) error {
	const requiredArgs = 1
	if cmd.Args().Len() < requiredArgs {
		return usageError(outlineUsage, requiredArgs, cmd.Args().Len())
	}

	filePath := cmd.Args().Get(0)

	headings, err := outline.File(filePath)
	if err != nil {
		if reportCondition(ui.NewReport(), err) {
			return nil
		}

		return err
	}

	return ui.RenderOutline(os.Stdout, filePath, headings, cmd.Bool("json"))
}
