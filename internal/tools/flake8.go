package tools

import (
	"context"

	"github.com/fourmat/fourmat/internal/model"
)

// Flake8Args builds the flake8 command line for the given files.
// Flake8 only ever checks, so there is no mode parameter.
func Flake8Args(files []string) []string {
	return append([]string{"--"}, files...)
}

// Flake8 runs the flake8 style checker over files.
//
// Flake8 has no fix capability. Requesting any mode other than check is a
// programming error in the caller, not a runtime condition: it panics
// before any subprocess is spawned.
func Flake8(ctx context.Context, files []string, mode model.Mode) error {
	if mode != model.ModeCheck {
		panic("flake8 has no fix mode")
	}
	return run(ctx, "flake8", Flake8Args(files)...)
}
