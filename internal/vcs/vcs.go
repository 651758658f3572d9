package vcs

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fourmat/fourmat/internal/model"
	"github.com/fourmat/fourmat/internal/project"
)

// DirtyFiles returns the Python source files changed relative to HEAD
// within the given paths, in the order git reports them.
//
// It runs `git diff-index --name-only --diff-filter ACM HEAD -- <paths>`,
// which lists added, copied, and modified files. With staged true the
// --cached flag restricts the diff to the index, i.e. only changes that
// have been staged for commit.
//
// The result is narrowed to source files: .py suffix, snapshot fixtures
// excluded (see project.IsSourceFile).
func DirtyFiles(ctx context.Context, paths []string, staged bool) ([]string, error) {
	args := []string{"diff-index", "--name-only", "--diff-filter", "ACM"}
	if staged {
		args = append(args, "--cached")
	}
	args = append(args, "HEAD", "--")
	args = append(args, paths...)

	output, err := runGit(ctx, args...)
	if err != nil {
		return nil, err
	}

	return project.FilterSourceFiles(strings.Fields(output)), nil
}

// runGit executes a git command in the current directory.
//
// It captures stdout and stderr separately. On success it returns the
// stdout output. On failure it returns a model.CLIError that includes the
// stderr output, since git writes its diagnostics there.
func runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		message := fmt.Sprintf("git %s failed", strings.Join(args, " "))
		if stderrStr := strings.TrimSpace(stderr.String()); stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return "", model.WrapCLIError(model.ExitGeneralError, message, err)
	}

	return stdout.String(), nil
}
