package tools

import (
	"context"

	"github.com/fourmat/fourmat/internal/model"
	"github.com/fourmat/fourmat/internal/project"
)

// BlackArgs builds the black command line for the given files.
//
// Check mode passes --check --diff; fix mode passes no mode flags, which
// makes black reformat in place. Black takes its snapshot exclusion as a
// regular expression rather than a glob. Normal output is suppressed with
// --quiet; diffs and errors still come through.
func BlackArgs(files []string, mode model.Mode) []string {
	var args []string
	if mode == model.ModeCheck {
		args = append(args, "--check", "--diff")
	}
	args = append(args,
		"--exclude", project.SnapshotRegex,
		"--quiet",
		"--",
	)
	return append(args, files...)
}

// Black runs the black code formatter over files.
func Black(ctx context.Context, files []string, mode model.Mode) error {
	return run(ctx, "black", BlackArgs(files, mode)...)
}
