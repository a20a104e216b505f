package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gobtop/pkg/filesystem"
	"github.com/arthur-debert/gobtop/pkg/paths"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a config directory and the matching filesystem
type TestEnvironment struct {
	ConfigDir string
	FS        afero.Fs
	Paths     paths.Paths
	Type      EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. GOBTOP_CONFIG_DIR points
// at the config dir and the locale is set to UTF-8 for the duration of the
// test.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		env.ConfigDir = "/virtual/config/gobtop"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.ConfigDir = filepath.Join(t.TempDir(), "gobtop")
		env.FS = filesystem.NewOS()
	}

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv("LANG", "en_US.UTF-8")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_CTYPE", "")
	t.Setenv("NO_COLOR", "1")

	p, err := paths.New(env.FS, t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	if err := p.EnsureDirs(); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	env.Paths = p

	return env
}

// ConfigPath is the default config file location
func (env *TestEnvironment) ConfigPath() string {
	return env.Paths.ConfigFile()
}

// WriteConfig writes content as the default config file
func (env *TestEnvironment) WriteConfig(content string) string {
	env.t.Helper()
	return env.WriteFile(paths.ConfigFileName, content)
}

// WriteFile writes content to name inside the config dir and returns its path
func (env *TestEnvironment) WriteFile(name, content string) string {
	env.t.Helper()

	path := filepath.Join(env.ConfigDir, name)
	if err := filesystem.EnsureDir(env.FS, filepath.Dir(path)); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := afero.WriteFile(env.FS, path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write file %s: %v", path, err)
	}
	return path
}
