// Package docs wraps the documentation-site collaborators: the static site
// builder, the version manager, and the git commands that publish the built
// site. Every command goes through a runner.Runner.
package docs

import (
	"context"
	"fmt"

	"github.com/samber/oops"

	"github.com/chrimaho/mdtk/internal/config"
	"github.com/chrimaho/mdtk/internal/runner"
)

// Site drives the docs-site tools for one repository.
type Site struct {
	r         runner.Runner
	site      string
	versioner string
	branch    string
}

// New builds a Site from the configured tool names and docs branch.
func New(r runner.Runner, cfg *config.Config) *Site {
	return &Site{
		r:         r,
		site:      cfg.Tools.Site,
		versioner: cfg.Tools.Versioner,
		branch:    cfg.DocsBranch,
	}
}

// ServeStatic serves the unversioned site locally.
func (s *Site) ServeStatic(ctx context.Context) error {
	return s.r.Run(ctx, s.site, "serve")
}

// ServeVersioned serves the versioned site from the docs branch.
func (s *Site) ServeVersioned(ctx context.Context) error {
	return s.r.Run(ctx, s.versioner, "serve", "--branch="+s.branch)
}

// BuildStatic builds the site into its default output directory.
func (s *Site) BuildStatic(ctx context.Context) error {
	return s.r.Run(ctx, s.site, "build --clean")
}

// Deploy publishes version to the docs branch, also updating the `latest`
// alias. Git configuration is echoed first so CI logs show the identity and
// remote the push will use.
func (s *Site) Deploy(ctx context.Context, version string) error {
	diagnostics := [][]string{
		{"git config --global --list"},
		{"git config --local --list"},
		{"git remote --verbose"},
	}
	for _, argv := range diagnostics {
		if err := s.r.Run(ctx, argv...); err != nil {
			return err
		}
	}

	return s.r.Run(ctx,
		s.versioner,
		"--debug deploy --update-aliases",
		"--branch="+s.branch,
		"--push",
		version,
		"latest",
	)
}

// Versions lists the published versions on the docs branch.
func (s *Site) Versions(ctx context.Context) error {
	return s.r.Run(ctx, s.versioner, "--debug list", "--branch="+s.branch)
}

// DeleteVersion removes version from the docs branch.
func (s *Site) DeleteVersion(ctx context.Context, version string) error {
	return s.r.Run(ctx, s.versioner, "--debug delete", "--branch="+s.branch, version)
}

// SetDefault points the site's default at the `latest` alias and pushes.
func (s *Site) SetDefault(ctx context.Context) error {
	return s.r.Run(ctx, s.versioner, "--debug set-default", "--branch="+s.branch, "--push latest")
}

// CommitAndPush stages everything and force-pushes a docs build commit,
// skipping CI on the push.
func (s *Site) CommitAndPush(ctx context.Context, version string) error {
	if err := s.r.Run(ctx, "git add ."); err != nil {
		return err
	}

	// The commit message carries spaces, so it must not be space-expanded.
	message := fmt.Sprintf("--message=Build docs `%s` [skip ci]", version)
	if err := s.r.RunExact(ctx, "git", "commit", message); err != nil {
		return err
	}

	return s.r.Run(ctx, "git push --force --no-verify --push-option ci.skip")
}

// PublishStatic builds the static site and commits the result.
func (s *Site) PublishStatic(ctx context.Context, version string) error {
	if err := s.BuildStatic(ctx); err != nil {
		return err
	}

	return s.CommitAndPush(ctx, version)
}

// Publish deploys a version and makes `latest` the default.
func (s *Site) Publish(ctx context.Context, version string) error {
	if err := s.Deploy(ctx, version); err != nil {
		return err
	}

	return s.SetDefault(ctx)
}

// RequireVersion validates the version argument shared by the publishing
// commands.
func RequireVersion(version string) error {
	if version == "" {
		return oops.
			Code("INVALID_ARGS").
			Hint("Pass the version to publish, e.g. v1.2.0").
			Errorf("requires argument: <version>")
	}

	return nil
}
