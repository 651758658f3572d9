// Package cli — fix.go implements the "fourmat fix" command.
//
// fix applies formatting in tool-priority order: isort first, then black,
// then a flake8 check (flake8 has nothing to fix). Unlike check, the
// sequence is fail-fast — a later fix may be unsafe to apply over an
// unresolved earlier failure — and the first failing tool's exit code
// becomes the process exit code.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fourmat/fourmat/internal/assets"
	"github.com/fourmat/fourmat/internal/model"
	"github.com/fourmat/fourmat/internal/project"
	"github.com/fourmat/fourmat/internal/tools"
)

// NewFixCommand creates the "fix" cobra command.
func NewFixCommand() *cobra.Command {
	flags := &selectionFlags{}

	cmd := &cobra.Command{
		Use:   "fix [FILES...]",
		Short: "Automatically fix code style",
		Long: `Fix code style with isort and black, then check it with flake8.

If no file is specified, the paths listed in ` + project.ConfigFile + ` are fixed.
The sequence stops at the first failing tool and its exit code becomes
the process exit code.

Examples:
  fourmat fix
  fourmat fix --dirty
  fourmat fix src/app.py`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd.Context(), args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.overrideConfig, "override-config", "c", false,
		"Replace existing tool configuration files with the bundled defaults")
	cmd.Flags().BoolVar(&flags.staged, "staged", false,
		"Only fix files staged for commit")
	cmd.Flags().BoolVar(&flags.dirty, "dirty", false,
		"Only fix files changed since HEAD")

	return cmd
}

// runFix is the orchestration function for the fix command:
// resolve project paths → install default configuration → determine the
// effective file set → run the tools under the fail-fast policy.
func runFix(ctx context.Context, args []string, flags *selectionFlags) error {
	projectPaths, err := project.Paths()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "reading "+project.ConfigFile, err)
	}
	VerboseLog("Project paths: %v", projectPaths)

	if err := assets.Install(".", flags.overrideConfig); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "installing default configuration", err)
	}

	files, err := resolveFiles(ctx, args, projectPaths, flags)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		VerboseLog("No files to fix")
		return nil
	}

	return runSteps(ctx, model.FailFast, []step{
		{name: "isort", run: func(ctx context.Context) error {
			return tools.ISort(ctx, files, projectPaths, model.ModeFix)
		}},
		{name: "black", run: func(ctx context.Context) error {
			return tools.Black(ctx, files, model.ModeFix)
		}},
		// flake8 cannot fix anything; it still runs as a final check.
		{name: "flake8", run: func(ctx context.Context) error {
			return tools.Flake8(ctx, files, model.ModeCheck)
		}},
	})
}
