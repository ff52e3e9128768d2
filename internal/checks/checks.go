// Package checks defines the lint and check batteries the pipeline runs over
// a documentation repository: each task is a named sequence of external tool
// invocations built from the configuration.
package checks

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/oops"

	"github.com/chrimaho/mdtk/internal/config"
	"github.com/chrimaho/mdtk/internal/runner"
)

// Task is one named lint or check step.
type Task struct {
	Name string
	// Default marks tasks that run when no names are given.
	Default bool
	// Steps yields the tool invocations for the task, in order. root is the
	// directory target files are collected from.
	Steps func(cfg *config.Config, root string) ([][]string, error)
}

// Result is the outcome of one executed task.
type Result struct {
	Name string
	Err  error
}

// Passed reports whether the task succeeded.
func (r Result) Passed() bool {
	return r.Err == nil
}

// LintTasks returns the formatting tasks, which rewrite files in place.
func LintTasks() []Task {
	return []Task{
		{
			Name:    "black",
			Default: true,
			Steps: func(_ *config.Config, _ string) ([][]string, error) {
				return [][]string{{"black", "--config=pyproject.toml", "./"}}, nil
			},
		},
		{
			Name:    "docs",
			Default: true,
			Steps: func(cfg *config.Config, root string) ([][]string, error) {
				return formatterArgs(cfg, root, false)
			},
		},
		{
			Name:    "isort",
			Default: true,
			Steps: func(_ *config.Config, _ string) ([][]string, error) {
				return [][]string{{"isort", "--settings-file=pyproject.toml", "./"}}, nil
			},
		},
		{
			Name:    "pycln",
			Default: true,
			Steps: func(_ *config.Config, _ string) ([][]string, error) {
				return [][]string{{"pycln", "--config=pyproject.toml", "src/"}}, nil
			},
		},
		{
			Name: "pyupgrade",
			Steps: func(_ *config.Config, root string) ([][]string, error) {
				files, err := CollectFiles(root, ".py")
				if err != nil {
					return nil, err
				}

				return [][]string{append([]string{"pyupgrade", "--py3-plus"}, files...)}, nil
			},
		},
	}
}

// CheckTasks returns the read-only verification tasks. Non-default tasks run
// only when named explicitly or with the all flag.
func CheckTasks() []Task {
	return []Task{
		{
			Name:    "black",
			Default: true,
			Steps: func(_ *config.Config, _ string) ([][]string, error) {
				return [][]string{{"black", "--check", "--config=pyproject.toml", "./"}}, nil
			},
		},
		{
			Name:    "docs",
			Default: true,
			Steps: func(cfg *config.Config, root string) ([][]string, error) {
				return formatterArgs(cfg, root, true)
			},
		},
		{
			Name:    "isort",
			Default: true,
			Steps: func(_ *config.Config, _ string) ([][]string, error) {
				return [][]string{{"isort", "--check", "--settings-file=pyproject.toml", "./"}}, nil
			},
		},
		{
			Name:    "codespell",
			Default: true,
			Steps: func(_ *config.Config, _ string) ([][]string, error) {
				return [][]string{{"codespell", "--toml=pyproject.toml", "src/", "*.py"}}, nil
			},
		},
		{
			Name:    "pycln",
			Default: true,
			Steps: func(_ *config.Config, _ string) ([][]string, error) {
				return [][]string{{"pycln", "--config=pyproject.toml", "src/"}}, nil
			},
		},
		{
			Name:    "pylint",
			Default: true,
			Steps: func(cfg *config.Config, _ string) ([][]string, error) {
				return [][]string{{"pylint", "--rcfile=pyproject.toml", cfg.SourceDir()}}, nil
			},
		},
		{
			Name: "mypy",
			Steps: func(cfg *config.Config, _ string) ([][]string, error) {
				return [][]string{{
					"mypy",
					"--install-types",
					"--non-interactive",
					"--config-file=pyproject.toml",
					"./" + cfg.SourceDir(),
				}}, nil
			},
		},
		{
			Name: "docstrings",
			Steps: func(cfg *config.Config, _ string) ([][]string, error) {
				return [][]string{{"dfc", "--output=table", "./" + cfg.SourceDir()}}, nil
			},
		},
		{
			Name: "complexity",
			Steps: func(cfg *config.Config, _ string) ([][]string, error) {
				return [][]string{{"complexipy", "./" + cfg.SourceDir()}}, nil
			},
		},
		{
			Name: "build",
			Steps: func(_ *config.Config, _ string) ([][]string, error) {
				return [][]string{
					{"uv", "build", "--out-dir=dist"},
					{"rm", "--recursive", "dist"},
				}, nil
			},
		},
		{
			Name: "site",
			Steps: func(cfg *config.Config, _ string) ([][]string, error) {
				return [][]string{
					{cfg.Tools.Site, "build", "--site-dir=temp"},
					{"rm", "--recursive", "temp"},
				}, nil
			},
		},
		{
			Name: "pytest",
			Steps: func(_ *config.Config, _ string) ([][]string, error) {
				return [][]string{{"pytest", "--config-file=pyproject.toml"}}, nil
			},
		},
	}
}

// Lint runs the named formatting tasks (or the default set) in order,
// stopping at the first failure since later formatters see the files the
// earlier ones rewrote.
func Lint(ctx context.Context, r runner.Runner, cfg *config.Config, root string, names []string) error {
	tasks, err := selectTasks(LintTasks(), names, false)
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if err := runTask(ctx, r, cfg, root, task); err != nil {
			return err
		}
	}

	return nil
}

// Check runs the named verification tasks (or the default set, or every task
// with all) and collects a per-task result. Selection errors are returned;
// task failures land in the results.
func Check(
	ctx context.Context,
	r runner.Runner,
	cfg *config.Config,
	root string,
	names []string,
	all bool,
) ([]Result, error) {
	tasks, err := selectTasks(CheckTasks(), names, all)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, Result{
			Name: task.Name,
			Err:  runTask(ctx, r, cfg, root, task),
		})
	}

	return results, nil
}

func runTask(ctx context.Context, r runner.Runner, cfg *config.Config, root string, task Task) error {
	steps, err := task.Steps(cfg, root)
	if err != nil {
		return oops.With("task", task.Name).Wrapf(err, "preparing %s", task.Name)
	}

	for _, argv := range steps {
		if err := r.Run(ctx, argv...); err != nil {
			return oops.With("task", task.Name).Wrapf(err, "%s", task.Name)
		}
	}

	return nil
}

func selectTasks(registry []Task, names []string, all bool) ([]Task, error) {
	if all {
		return registry, nil
	}

	if len(names) == 0 {
		defaults := make([]Task, 0, len(registry))
		for _, task := range registry {
			if task.Default {
				defaults = append(defaults, task)
			}
		}

		return defaults, nil
	}

	known := make([]string, 0, len(registry))
	for _, task := range registry {
		known = append(known, task.Name)
	}

	selected := make([]Task, 0, len(names))
	for _, name := range names {
		idx := slices.IndexFunc(registry, func(task Task) bool { return task.Name == name })
		if idx < 0 {
			return nil, oops.
				Code("UNKNOWN_TASK").
				With("task", name).
				Hint(fmt.Sprintf("Known tasks: %v", known)).
				Errorf("unknown task %q", name)
		}

		selected = append(selected, registry[idx])
	}

	return selected, nil
}

// formatterArgs builds the docs-formatter invocation over the repository's
// markdown, python, and notebook files.
func formatterArgs(cfg *config.Config, root string, checkOnly bool) ([][]string, error) {
	files, err := CollectFiles(root, ".md", ".py", ".ipynb")
	if err != nil {
		return nil, err
	}

	argv := []string{cfg.Tools.Formatter}
	if checkOnly {
		argv = append(argv, "--check")
	}

	argv = append(argv, fmt.Sprintf("--line-length=%d", cfg.LineLength))
	argv = append(argv, files...)

	return [][]string{argv}, nil
}
