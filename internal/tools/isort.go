package tools

import (
	"context"

	"github.com/fourmat/fourmat/internal/model"
	"github.com/fourmat/fourmat/internal/project"
)

// ISortArgs builds the isort command line for the given files.
//
// Check mode passes --check --diff so violations are reported without
// mutation; fix mode passes --apply. Every project root is repeated with
// its own --project flag so isort classifies first-party imports
// correctly. Snapshot fixtures are skipped via --skip-glob, and --atomic
// ensures files are only rewritten in one all-or-nothing pass.
func ISortArgs(files, projectPaths []string, mode model.Mode) []string {
	var args []string
	if mode == model.ModeCheck {
		args = append(args, "--check", "--diff")
	} else {
		args = append(args, "--apply")
	}
	for _, p := range projectPaths {
		args = append(args, "--project", p)
	}
	args = append(args,
		"--skip-glob", project.SnapshotGlob,
		"--atomic",
		"--quiet",
		"--recursive",
		"--",
	)
	return append(args, files...)
}

// ISort runs the isort import sorter over files.
func ISort(ctx context.Context, files, projectPaths []string, mode model.Mode) error {
	return run(ctx, "isort", ISortArgs(files, projectPaths, mode)...)
}
