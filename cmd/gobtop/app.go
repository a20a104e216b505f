package gobtop

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/gobtop/pkg/config"
	"github.com/arthur-debert/gobtop/pkg/errors"
	"github.com/arthur-debert/gobtop/pkg/filesystem"
	"github.com/arthur-debert/gobtop/pkg/logging"
	"github.com/arthur-debert/gobtop/pkg/paths"
	"github.com/arthur-debert/gobtop/pkg/ui"
	"github.com/arthur-debert/gobtop/pkg/ui/display"
	"github.com/arthur-debert/gobtop/pkg/ui/output/styles"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries the state shared by all commands of one invocation
type app struct {
	flags  rootFlags
	fs     afero.Fs
	paths  paths.Paths
	logger zerolog.Logger
}

func newApp() *app {
	return &app{
		flags:  rootFlags{Output: "auto", Preset: noPreset},
		fs:     filesystem.NewOS(),
		logger: logging.GetLogger("cmd"),
	}
}

// bootstrap validates flags, resolves directories and sets up logging. A
// missing or unwritable config directory only disables config and log files.
func (a *app) bootstrap(cmd *cobra.Command) error {
	if err := a.flags.validate(); err != nil {
		return err
	}

	logFile := ""
	p, err := paths.New(a.fs, "")
	switch {
	case err != nil:
		a.warn(cmd, MsgWarnNoConfigDir, MsgWarnEnvHint)
	case p.EnsureDirs() != nil:
		a.warn(cmd, MsgWarnConfigDir, MsgWarnEnvHint)
	default:
		a.paths = p
		logFile = p.LogFile()
	}

	logging.SetupLogger(a.flags.Verbosity, logFile)
	a.logger = logging.GetLogger("cmd")
	a.logger.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

func (a *app) warn(cmd *cobra.Command, lines ...string) {
	style := styles.GetStyle("Warning")
	for _, l := range lines {
		fmt.Fprintln(cmd.ErrOrStderr(), style.Render(l))
	}
}

// configPath is the --config file when given, else the default location.
// Empty means there is no config file to read.
func (a *app) configPath() string {
	if a.flags.ConfigFile != "" {
		return a.flags.ConfigFile
	}
	if a.paths != nil {
		return a.paths.ConfigFile()
	}
	return ""
}

func (a *app) newStore(path string) *config.Store {
	logger := logging.GetLogger("config")
	return config.New(config.Options{
		Path:   path,
		FS:     a.fs,
		Logger: &logger,
	})
}

// loadStore creates a store and loads path into it. The report describes
// the outcome; warnings are part of it, not an error.
func (a *app) loadStore(path string) (*config.Store, *display.ConfigReport, config.Warnings, error) {
	store := a.newStore(path)
	if path == "" {
		return store, nil, nil, nil
	}
	report := &display.ConfigReport{Path: path, Version: store.Version(), Warnings: []display.Warning{}}

	found, err := filesystem.Exists(a.fs, path)
	if err != nil {
		return nil, nil, nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to access config file %s", path)
	}
	report.Found = found

	warnings, err := store.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	report.Warnings = toDisplayWarnings(warnings)
	report.Dirty = store.Dirty()
	return store, report, warnings, nil
}

func toDisplayWarnings(warnings config.Warnings) []display.Warning {
	out := make([]display.Warning, 0, len(warnings))
	for _, w := range warnings {
		line, _ := w.Details["line"].(int)
		out = append(out, display.Warning{
			Key:     w.Detail("key"),
			Code:    string(w.Code),
			Message: w.Message,
			Line:    line,
		})
	}
	return out
}

func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.flags.Output)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
	}
	out := cmd.OutOrStdout()
	format = ui.Resolve(format, out)
	a.logger.Debug().Str("format", format.String()).Msg("Output format selected")
	return ui.NewRenderer(format, out)
}

// utf8Locale reports whether LC_ALL, LC_CTYPE or LANG names a UTF-8 locale
func utf8Locale(getenv func(string) string) bool {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := strings.ToLower(getenv(name))
		if strings.Contains(v, "utf-8") || strings.Contains(v, "utf8") {
			return true
		}
	}
	return false
}
