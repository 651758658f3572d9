// Package cli — check.go implements the "fourmat check" command.
//
// check reports non-conformant files without mutating anything. All three
// tools always run, each failure recorded without aborting the sequence,
// so every violation surfaces in a single pass. The command exits 1 if
// any tool reported violations and 0 otherwise.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fourmat/fourmat/internal/assets"
	"github.com/fourmat/fourmat/internal/model"
	"github.com/fourmat/fourmat/internal/project"
	"github.com/fourmat/fourmat/internal/tools"
)

// NewCheckCommand creates the "check" cobra command.
func NewCheckCommand() *cobra.Command {
	flags := &selectionFlags{}

	cmd := &cobra.Command{
		Use:   "check [FILES...]",
		Short: "Check code style without modifying files",
		Long: `Check code style with isort, black, and flake8.

If no file is specified, the paths listed in ` + project.ConfigFile + ` are checked.
All three tools run even when an earlier one fails, so a single run
surfaces every violation.

Examples:
  fourmat check
  fourmat check --staged
  fourmat check src/app.py src/util.py`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.overrideConfig, "override-config", "c", false,
		"Replace existing tool configuration files with the bundled defaults")
	cmd.Flags().BoolVar(&flags.staged, "staged", false,
		"Only check files staged for commit")
	cmd.Flags().BoolVar(&flags.dirty, "dirty", false,
		"Only check files changed since HEAD")

	return cmd
}

// runCheck is the orchestration function for the check command:
// resolve project paths → determine the effective file set → install
// default configuration → run every tool under the collect-all policy.
func runCheck(ctx context.Context, args []string, flags *selectionFlags) error {
	projectPaths, err := project.Paths()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "reading "+project.ConfigFile, err)
	}
	VerboseLog("Project paths: %v", projectPaths)

	files, err := resolveFiles(ctx, args, projectPaths, flags)
	if err != nil {
		return err
	}

	if err := assets.Install(".", flags.overrideConfig); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "installing default configuration", err)
	}

	if len(files) == 0 {
		VerboseLog("No files to check")
		return nil
	}

	return runSteps(ctx, model.CollectAll, []step{
		{name: "isort", run: func(ctx context.Context) error {
			return tools.ISort(ctx, files, projectPaths, model.ModeCheck)
		}},
		{name: "black", run: func(ctx context.Context) error {
			return tools.Black(ctx, files, model.ModeCheck)
		}},
		{name: "flake8", run: func(ctx context.Context) error {
			return tools.Flake8(ctx, files, model.ModeCheck)
		}},
	})
}
