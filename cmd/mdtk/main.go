package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"
)

var (
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	version = "dev"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	commit = "unknown"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	buildTime = "unknown"
)

func main() {
	if err := run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		var oopsErr oops.OopsError
		if errors.As(err, &oopsErr) && oopsErr.Hint() != "" {
			_, _ = fmt.Fprintln(os.Stderr, oopsErr.Hint())
		}

		os.Exit(1)
	}
}

func run(args []string) error {
	return newRootCommand().Run(context.Background(), args)
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "mdtk",
		Usage:   "Markdown tab-block transformer and docs pipeline toolkit",
		Version: versionString(),
		Commands: []*cli.Command{
			newExtractCommand(),
			newReformatCommand(),
			newConvertCommand(),
			newFormatAndConvertCommand(),
			newOutlineCommand(),
			newLintCommand(),
			newCheckCommand(),
			newDocsCommand(),
		},
	}
}

func versionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildTime)
}
