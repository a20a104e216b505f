package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/gobtop/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// levelNames is the ordered severity registry used by the log_level setting.
// Order matters: each level includes everything before it.
var levelNames = []string{"DISABLED", "ERROR", "WARNING", "INFO", "DEBUG"}

var levelMap = map[string]zerolog.Level{
	"DISABLED": zerolog.Disabled,
	"ERROR":    zerolog.ErrorLevel,
	"WARNING":  zerolog.WarnLevel,
	"INFO":     zerolog.InfoLevel,
	"DEBUG":    zerolog.DebugLevel,
}

// Levels returns a copy of the valid log level names, lowest severity first
func Levels() []string {
	out := make([]string, len(levelNames))
	copy(out, levelNames)
	return out
}

// ApplyLevel sets the global level from a log_level name
func ApplyLevel(name string) error {
	level, ok := levelMap[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return errors.Newf(errors.ErrInvalidLogLevel, "unknown log level %q", name).
			WithDetail("value", name)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// SetupLogger configures the global logger based on verbosity level.
// Entries go to stderr and, when logFile is set, are appended to it as JSON
// lines. An empty logFile means there is no config dir and logs stay on the
// console.
func SetupLogger(verbosity int, logFile string) {
	zerolog.SetGlobalLevel(verbosityLevel(verbosity))

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}}

	var fileErr error
	if logFile != "" {
		var f *os.File
		if f, fileErr = setupLogFile(logFile); fileErr == nil {
			writers = append(writers, f)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

func verbosityLevel(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
