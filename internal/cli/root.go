// Package cli implements the cobra-based CLI commands for fourmat.
//
// Each subcommand (check, fix) is defined in its own file within this
// package. This file defines the root command that serves as the parent
// for both subcommands and handles global flags and exit-code
// translation.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/fourmat/fourmat/internal/model"
	"github.com/fourmat/fourmat/internal/tools"
)

// verbose enables detailed logging output for debugging. It is bound to
// the --verbose persistent flag on the root command, which makes it
// available to every subcommand automatically.
var verbose bool

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action — it only provides
// help text and the global flag. Actual functionality is provided by the
// check and fix subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fourmat",
		Short: "One command to format and check Python code",
		Long: `fourmat coordinates isort, black, and flake8 over the project paths
listed in the .fourmat config file.

"check" reports non-conformant files without touching them, running every
tool so all violations surface in one pass. "fix" rewrites files in
tool-priority order and stops at the first failure.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats errors itself and owns the exit code.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewFixCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// Exit-code policy:
//   - a *tools.ToolError (fix mode fail-fast) propagates the failing
//     tool's own exit code, with no extra output — the tool already
//     printed its diagnostics;
//   - model.ErrNotConformant (check mode) exits 1 silently for the same
//     reason;
//   - a user interrupt ends the process quietly with status 0;
//   - anything else prints an Error: line and exits with the CLIError's
//     code, defaulting to 1.
func Execute(rootCmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	// An interrupt aborts silently, without status code signaling.
	if ctx.Err() != nil {
		return
	}

	if errors.Is(err, model.ErrNotConformant) {
		os.Exit(int(model.ExitGeneralError))
	}

	var toolErr *tools.ToolError
	if errors.As(err, &toolErr) {
		os.Exit(toolErr.ExitCode)
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(cliErr.Message, cliErr.Err)
		os.Exit(int(cliErr.Code))
	}

	printError(err.Error(), nil)
	os.Exit(int(model.ExitGeneralError))
}

// printError outputs an error message as an "Error:" line on stderr.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is
// enabled. Used throughout the CLI for trace output that helps users
// understand which operations are being performed.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}
