package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/chrimaho/mdtk/internal/docs"
	"github.com/chrimaho/mdtk/internal/runner"
)

func newDocsCommand() *cli.Command {
	return &cli.Command{
		Name:  "docs",
		Usage: "Build, serve, and publish the documentation site",
		Flags: []cli.Flag{configFlag()},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the static site locally",
				Action: docsAction(func(ctx context.Context, s *docs.Site, _ string) error {
					return s.ServeStatic(ctx)
				}, false),
			},
			{
				Name:   "serve-versioned",
				Usage:  "Serve the versioned site from the docs branch",
				Action: docsAction(func(ctx context.Context, s *docs.Site, _ string) error {
					return s.ServeVersioned(ctx)
				}, false),
			},
			{
				Name:   "build",
				Usage:  "Build the static site",
				Action: docsAction(func(ctx context.Context, s *docs.Site, _ string) error {
					return s.BuildStatic(ctx)
				}, false),
			},
			{
				Name:      "deploy",
				Usage:     "Deploy a version to the docs branch",
				ArgsUsage: "<version>",
				Action: docsAction(func(ctx context.Context, s *docs.Site, version string) error {
					return s.Deploy(ctx, version)
				}, true),
			},
			{
				Name:   "versions",
				Usage:  "List the published versions",
				Action: docsAction(func(ctx context.Context, s *docs.Site, _ string) error {
					return s.Versions(ctx)
				}, false),
			},
			{
				Name:      "delete",
				Usage:     "Delete a version from the docs branch",
				ArgsUsage: "<version>",
				Action: docsAction(func(ctx context.Context, s *docs.Site, version string) error {
					return s.DeleteVersion(ctx, version)
				}, true),
			},
			{
				Name:   "set-default",
				Usage:  "Make the latest alias the site default",
				Action: docsAction(func(ctx context.Context, s *docs.Site, _ string) error {
					return s.SetDefault(ctx)
				}, false),
			},
			{
				Name:      "publish",
				Usage:     "Deploy a version and make latest the default",
				ArgsUsage: "<version>",
				Action: docsAction(func(ctx context.Context, s *docs.Site, version string) error {
					return s.Publish(ctx, version)
				}, true),
			},
			{
				Name:      "publish-static",
				Usage:     "Build the static site and push the result",
				ArgsUsage: "<version>",
				Action: docsAction(func(ctx context.Context, s *docs.Site, version string) error {
					return s.PublishStatic(ctx, version)
				}, true),
			},
		},
	}
}

// docsAction adapts a Site method into a CLI action, validating the version
// argument for the subcommands that take one.
func docsAction(op func(context.Context, *docs.Site, string) error, needsVersion bool) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		version := cmd.Args().Get(0)
		if needsVersion {
			if err := docs.RequireVersion(version); err != nil {
				return err
			}
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		return op(ctx, docs.New(runner.NewExec(), cfg), version)
	}
}
