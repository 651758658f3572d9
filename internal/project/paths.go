package project

import (
	"os"
	"strings"
)

// ConfigFile is the fixed name of the path-list config file, resolved
// relative to the current directory. Running fourmat anywhere other than
// the project root is a precondition violation.
const ConfigFile = ".fourmat"

// Paths reads the config file and returns its whitespace-split contents
// as the ordered list of project root paths.
//
// A missing or unreadable config file propagates the raw I/O error: the
// file's presence is a precondition, not a condition to recover from.
// Listed paths are not validated to exist.
func Paths() ([]string, error) {
	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(data)), nil
}
