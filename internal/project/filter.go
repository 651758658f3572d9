package project

import (
	"path/filepath"

	"github.com/gobwas/glob"
)

const (
	// SnapshotGlob matches generated snapshot test fixtures, which are
	// never formatted or linted. The pattern follows fnmatch semantics:
	// "*" crosses path separators, so any path with a
	// snapshots/snap_*.py segment below the top level matches.
	SnapshotGlob = "*/snapshots/snap_*.py"

	// SnapshotRegex is the same exclusion expressed as a regular
	// expression, for tools that take regex excludes (black).
	SnapshotRegex = `.*/snapshots/snap_.*\.py`

	// sourceSuffix is the file extension of the source files fourmat
	// touches.
	sourceSuffix = ".py"
)

// snapshotGlob is compiled without separator characters so that "*"
// matches across "/" boundaries, mirroring fnmatch.
var snapshotGlob = glob.MustCompile(SnapshotGlob)

// IsSourceFile reports whether name is a Python source file that fourmat
// should touch: the .py suffix, excluding generated snapshot fixtures.
func IsSourceFile(name string) bool {
	return filepath.Ext(name) == sourceSuffix && !snapshotGlob.Match(name)
}

// FilterSourceFiles returns the subsequence of names accepted by
// IsSourceFile, preserving input order.
func FilterSourceFiles(names []string) []string {
	var filtered []string
	for _, name := range names {
		if IsSourceFile(name) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}
