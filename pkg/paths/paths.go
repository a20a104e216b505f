package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/gobtop/internal/version"
	"github.com/arthur-debert/gobtop/pkg/errors"
	"github.com/arthur-debert/gobtop/pkg/filesystem"
	"github.com/spf13/afero"
)

// Environment variable names
const (
	// EnvConfigDir overrides the config directory
	EnvConfigDir = "GOBTOP_CONFIG_DIR"
)

// File and directory names
const (
	// ConfigFileName is the name of the config file inside the config dir
	ConfigFileName = version.ProgramName + ".conf"

	// LogFileName is the name of the log file inside the config dir
	LogFileName = version.ProgramName + ".log"

	// ThemesDirName is the theme subdirectory, both for users and installs
	ThemesDirName = "themes"
)

// SystemThemeDirs are checked in order when no theme dir ships next to the binary
var SystemThemeDirs = []string{
	"/usr/local/share/" + version.ProgramName + "/themes",
	"/usr/share/" + version.ProgramName + "/themes",
}

// Paths provides centralized path management for gobtop
type Paths interface {
	ConfigDir() string
	ConfigFile() string
	LogFile() string
	UserThemeDir() string
	ThemeDir() string
	EnsureDirs() error
}

type paths struct {
	fs afero.Fs

	configDir    string
	userThemeDir string
	themeDir     string
}

// New resolves gobtop's directories. exeDir is the directory holding the
// binary; empty means "look it up with os.Executable". An error with code
// ErrNotFound is returned when no usable config directory exists.
func New(fsys afero.Fs, exeDir string) (Paths, error) {
	p := &paths{fs: fsys}

	configDir, err := p.findConfigDir()
	if err != nil {
		return nil, err
	}
	p.configDir = configDir
	p.userThemeDir = filepath.Join(configDir, ThemesDirName)

	if exeDir == "" {
		if exe, err := os.Executable(); err == nil {
			exeDir = filepath.Dir(exe)
		}
	}
	p.themeDir = p.findThemeDir(exeDir)

	return p, nil
}

// findConfigDir walks the candidates in priority order:
// 1. GOBTOP_CONFIG_DIR (used as-is)
// 2. $XDG_CONFIG_HOME/gobtop, when XDG_CONFIG_HOME is a writable directory
// 3. $HOME/.config/gobtop, when HOME is a writable directory
func (p *paths) findConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}

	candidates := []struct {
		base string
		dir  string
	}{
		{xdg.ConfigHome, filepath.Join(xdg.ConfigHome, version.ProgramName)},
		{xdg.Home, filepath.Join(xdg.Home, ".config", version.ProgramName)},
	}
	for _, c := range candidates {
		if c.base != "" && filesystem.IsWritableDir(p.fs, c.base) {
			return c.dir, nil
		}
	}

	return "", errors.New(errors.ErrNotFound, "could not get path to user HOME folder").
		WithDetail("hint", "make sure $XDG_CONFIG_HOME or $HOME environment variables are correctly set")
}

// findThemeDir prefers a theme dir shipped next to the binary, then the
// system-wide install locations
func (p *paths) findThemeDir(exeDir string) string {
	if exeDir != "" {
		dir := filepath.Clean(filepath.Join(exeDir, "..", "share", version.ProgramName, ThemesDirName))
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			dir = resolved
		}
		if filesystem.IsWritableDir(p.fs, dir) {
			return dir
		}
	}

	for _, dir := range SystemThemeDirs {
		if ok, err := afero.DirExists(p.fs, dir); err == nil && ok {
			return dir
		}
	}
	return ""
}

// EnsureDirs creates the config directory and the user theme directory.
// Failing to create the theme directory is not fatal: the user theme dir is
// cleared instead.
func (p *paths) EnsureDirs() error {
	if err := filesystem.EnsureDir(p.fs, p.configDir); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "could not create or access config directory %s", p.configDir)
	}
	if err := filesystem.EnsureDir(p.fs, p.userThemeDir); err != nil {
		p.userThemeDir = ""
	}
	return nil
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

func (p *paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

func (p *paths) LogFile() string {
	return filepath.Join(p.configDir, LogFileName)
}

func (p *paths) UserThemeDir() string {
	return p.userThemeDir
}

func (p *paths) ThemeDir() string {
	return p.themeDir
}
