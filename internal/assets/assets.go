// Package assets bundles fourmat's default tool configuration files and
// installs them into a project root.
//
// The templates are compiled into the binary via embed, so a fourmat
// install has no external asset directory to locate. Copies are
// byte-for-byte.
package assets

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// The all: prefix is required to embed dotfiles, which are otherwise
// skipped by the embed tooling.
//
//go:embed all:templates
var templates embed.FS

// ConfigurationFiles lists the configuration files fourmat manages, in
// install order.
var ConfigurationFiles = []string{".flake8", ".isort.cfg", "pyproject.toml"}

// Install copies each bundled configuration file into dir.
//
// With override false, files that already exist at the destination are
// left untouched; with override true they are unconditionally replaced
// with the bundled template.
//
// There is no rollback: a failure copying file N leaves files 1..N-1
// already installed.
func Install(dir string, override bool) error {
	for _, name := range ConfigurationFiles {
		dst := filepath.Join(dir, name)

		if !override {
			if _, err := os.Stat(dst); err == nil {
				continue
			}
		}

		data, err := Template(name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("installing %s: %w", name, err)
		}
	}
	return nil
}

// Template returns the bundled contents of the named configuration file.
func Template(name string) ([]byte, error) {
	data, err := templates.ReadFile(path.Join("templates", name))
	if err != nil {
		return nil, fmt.Errorf("reading bundled template %s: %w", name, err)
	}
	return data, nil
}
