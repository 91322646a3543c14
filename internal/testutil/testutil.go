// Package testutil provides common test helpers for the cenv project.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// TempCondaRoot creates a directory that looks like a conda installation:
// etc/profile.d/conda.sh and etc/fish/conf.d/conda.fish exist. Returns the
// root path. Cleaned up when the test finishes.
func TempCondaRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for _, rel := range []string{
		filepath.Join("etc", "profile.d", "conda.sh"),
		filepath.Join("etc", "fish", "conf.d", "conda.fish"),
	} {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("TempCondaRoot: mkdir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte("# conda init stub\n"), 0644); err != nil {
			t.Fatalf("TempCondaRoot: write failed: %v", err)
		}
	}
	return root
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}
	return path
}

// SetupTestProject creates a temporary project directory plus a config.toml
// mapping it to the env "ceie". Returns (configPath, projectRoot).
func SetupTestProject(t *testing.T) (string, string) {
	t.Helper()

	projectRoot := t.TempDir()
	content := fmt.Sprintf(`version = 1
default_shell = "zsh"

[projects.ceie]
root = %q
env = "ceie"
`, projectRoot)
	return TempConfigFile(t, content), projectRoot
}

// TempRCFile creates a temporary rc file with the given content and returns
// its path.
func TempRCFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempRCFile: write failed: %v", err)
	}
	return path
}
