// Package cli — run.go holds the orchestration shared by the check and
// fix commands: effective file-set resolution and the policy-driven tool
// sequence.
package cli

import (
	"context"
	"errors"

	"github.com/fourmat/fourmat/internal/model"
	"github.com/fourmat/fourmat/internal/tools"
	"github.com/fourmat/fourmat/internal/vcs"
)

// selectionFlags are the file-selection flags common to check and fix.
type selectionFlags struct {
	overrideConfig bool // -c/--override-config: replace existing config files
	staged         bool // --staged: only files staged for commit
	dirty          bool // --dirty: only files changed since HEAD
}

// resolveFiles determines the effective file set for a run.
//
// Explicit arguments win unconditionally. Otherwise --staged or --dirty
// narrow the set to files changed in Git within the project paths. The
// default is the project path list itself — the tools recurse into
// directories, so passing roots covers everything beneath them.
func resolveFiles(ctx context.Context, args, projectPaths []string, flags *selectionFlags) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if flags.staged || flags.dirty {
		return vcs.DirtyFiles(ctx, projectPaths, flags.staged)
	}
	return projectPaths, nil
}

// step pairs a tool name with its invocation for one run.
type step struct {
	name string
	run  func(context.Context) error
}

// runSteps executes the tool sequence under the given failure policy.
//
// With model.CollectAll every step runs even after a tool failure, so all
// violations surface in a single pass; the aggregate outcome is
// model.ErrNotConformant. With model.FailFast the first error is returned
// immediately and later steps never run.
//
// Only tool exits count as recordable failures. Anything else — a missing
// binary, a canceled context — aborts the sequence under either policy.
func runSteps(ctx context.Context, policy model.FailurePolicy, steps []step) error {
	var failed bool
	for _, s := range steps {
		VerboseLog("Running %s...", s.name)

		err := s.run(ctx)
		if err == nil {
			continue
		}
		if policy == model.FailFast {
			return err
		}

		var toolErr *tools.ToolError
		if !errors.As(err, &toolErr) {
			return err
		}
		VerboseLog("%s reported violations (status %d)", s.name, toolErr.ExitCode)
		failed = true
	}

	if failed {
		return model.ErrNotConformant
	}
	return nil
}
