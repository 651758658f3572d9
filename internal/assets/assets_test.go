package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInstall verifies that a fresh install writes every bundled
// configuration file byte-for-byte.
func TestInstall(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Install(dir, false))

	for _, name := range ConfigurationFiles {
		want, err := Template(name)
		require.NoError(t, err)

		got, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, "%s should have been installed", name)
		assert.Equal(t, want, got, "%s should match the bundled template", name)
	}
}

// TestInstallPreservesExisting verifies that without override a
// pre-existing same-named file is left byte-identical.
func TestInstallPreservesExisting(t *testing.T) {
	dir := t.TempDir()

	custom := []byte("[flake8]\nmax-line-length = 120\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".flake8"), custom, 0o644))

	require.NoError(t, Install(dir, false))

	got, err := os.ReadFile(filepath.Join(dir, ".flake8"))
	require.NoError(t, err)
	assert.Equal(t, custom, got, "existing file must not be touched without override")

	// The other files were still installed.
	_, err = os.Stat(filepath.Join(dir, ".isort.cfg"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "pyproject.toml"))
	assert.NoError(t, err)
}

// TestInstallOverride verifies that with override the destination becomes
// byte-identical to the bundled template regardless of prior contents.
func TestInstallOverride(t *testing.T) {
	dir := t.TempDir()

	custom := []byte("[flake8]\nmax-line-length = 120\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".flake8"), custom, 0o644))

	require.NoError(t, Install(dir, true))

	want, err := Template(".flake8")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, ".flake8"))
	require.NoError(t, err)
	assert.Equal(t, want, got, "override must restore the bundled template")
}

// TestTemplateUnknown verifies the error path for a template name that is
// not bundled.
func TestTemplateUnknown(t *testing.T) {
	_, err := Template(".editorconfig")
	assert.Error(t, err)
}

// TestPyprojectTemplateIsValidTOML guards the bundled pyproject.toml
// against syntax errors that black would reject at runtime.
func TestPyprojectTemplateIsValidTOML(t *testing.T) {
	data, err := Template("pyproject.toml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, toml.Unmarshal(data, &doc))

	tool, ok := doc["tool"].(map[string]any)
	require.True(t, ok, "pyproject.toml must have a [tool] table")
	assert.Contains(t, tool, "black")
}
