package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/gobtop/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "nested", "gobtop.log")

			SetupLogger(tt.verbosity, logPath)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	SetupLogger(0, "")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no log file without a config dir")
}

func TestSetupLogger_AppendsJSONLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "gobtop.log")
	require.NoError(t, os.WriteFile(logPath, []byte("previous run\n"), 0o644))
	defer zerolog.SetGlobalLevel(zerolog.WarnLevel)

	SetupLogger(0, logPath)
	logger := GetLogger("config")
	logger.Warn().Str("key", "update_ms").Msg("Config value update_ms set too low (<100).")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "previous run\n"), "existing log is kept")
	assert.Contains(t, content, `"component":"config"`)
	assert.Contains(t, content, `"key":"update_ms"`)
}

func TestLevels(t *testing.T) {
	levels := Levels()
	assert.Equal(t, []string{"DISABLED", "ERROR", "WARNING", "INFO", "DEBUG"}, levels)

	levels[0] = "mutated"
	assert.Equal(t, "DISABLED", Levels()[0], "Levels must return a copy")
}

func TestApplyLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.WarnLevel)

	tests := []struct {
		name string
		want zerolog.Level
	}{
		{"DISABLED", zerolog.Disabled},
		{"ERROR", zerolog.ErrorLevel},
		{"WARNING", zerolog.WarnLevel},
		{"INFO", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, ApplyLevel(tt.name))
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}

	err := ApplyLevel("TRACE")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidLogLevel))
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	defer zerolog.SetGlobalLevel(zerolog.WarnLevel)

	logger := GetLogger("config")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"config"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(zerolog.WarnLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "load")
	done()

	assert.Contains(t, buf.String(), "Operation started")
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), `"operation":"load"`)
}
