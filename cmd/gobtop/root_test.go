package gobtop

import (
	"testing"

	"github.com/arthur-debert/gobtop/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Run(t *testing.T) {
	tests := []struct {
		name       string
		config     string
		args       []string
		wantOut    []string
		wantNotOut []string
		wantStderr string
	}{
		{
			name:    "no_config_file",
			args:    []string{"-o", "text"},
			wantOut: []string{"not found, defaults in use", "preset 0, boxes: cpu mem net proc, update every 2000 ms"},
		},
		{
			name:       "clean_config",
			config:     "update_ms = 500\nshown_boxes = \"cpu proc\"\n",
			args:       []string{"-o", "text"},
			wantOut:    []string{"gobtop.conf: ok", "boxes: cpu proc, update every 500 ms"},
			wantNotOut: []string{"needs to be rewritten"},
		},
		{
			name:    "rejected_values",
			config:  "truecolor = maybe\nupdate_ms = 99\n",
			args:    []string{"-o", "text"},
			wantOut: []string{"gobtop.conf:2: Got an invalid bool value for config name: truecolor", "gobtop.conf:3: Config value update_ms set too low (<100).", "update every 2000 ms"},
		},
		{
			name:    "preset_from_default_presets",
			args:    []string{"-o", "text", "--preset", "1"},
			wantOut: []string{"preset 1, boxes: cpu proc"},
		},
		{
			name:       "missing_preset_falls_back",
			args:       []string{"-o", "text", "-p", "9"},
			wantOut:    []string{"preset 0, boxes: cpu mem net proc"},
			wantStderr: "preset 9 does not exist",
		},
		{
			name:    "tty_on",
			args:    []string{"-o", "text", "-t"},
			wantOut: []string{MsgModeTTY},
		},
		{
			name:       "tty_off",
			args:       []string{"-o", "text", "--tty_off"},
			wantNotOut: []string{MsgModeTTY},
		},
		{
			name:    "low_color",
			args:    []string{"-o", "text", "--low-color"},
			wantOut: []string{MsgModeLowColor},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupConfigDir(t, tt.config)

			res := execute(t, tt.args...)
			require.NoError(t, res.err)
			for _, want := range tt.wantOut {
				assert.Contains(t, res.stdout, want)
			}
			for _, unwanted := range tt.wantNotOut {
				assert.NotContains(t, res.stdout, unwanted)
			}
			if tt.wantStderr != "" {
				assert.Contains(t, res.stderr, tt.wantStderr)
			}
		})
	}
}

func TestRootCmd_UTF8Check(t *testing.T) {
	setupConfigDir(t, "")
	t.Setenv("LANG", "C")

	res := execute(t, "-o", "text")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "No UTF-8 locale detected")

	res = execute(t, "-o", "text", "--utf-force")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "update every 2000 ms")
}

func TestRootCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"preset_out_of_range", []string{"--preset", "10"}, "--preset"},
		{"tty_on_and_off", []string{"--tty_on", "--tty_off"}, "--tty_on cannot be combined"},
		{"bad_output", []string{"-o", "xml"}, "--output must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupConfigDir(t, "")

			res := execute(t, tt.args...)
			require.Error(t, res.err)
			assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
			assert.Contains(t, res.err.Error(), tt.want)
		})
	}
}

func TestRootCmd_ConfigFlag(t *testing.T) {
	env := setupConfigDir(t, "")
	path := env.WriteFile("other.conf", withHeader("update_ms = 1500\n"))

	res := execute(t, "-o", "text", "--config", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "other.conf: ok")
	assert.Contains(t, res.stdout, "update every 1500 ms")
}

func TestHelpTopics(t *testing.T) {
	setupConfigDir(t, "")

	t.Run("list", func(t *testing.T) {
		res := execute(t, "help", "topics")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "presets")
		assert.Contains(t, res.stdout, "config-file")
		assert.Contains(t, res.stdout, "--preset")
		assert.Contains(t, res.stdout, "--low-color")
	})

	t.Run("topic", func(t *testing.T) {
		res := execute(t, "help", "presets")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "name:position:symbol")
	})

	t.Run("flag_topic", func(t *testing.T) {
		res := execute(t, "help", "utf-force")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "UTF-8")
	})

	t.Run("command_help", func(t *testing.T) {
		res := execute(t, "help", "config")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, MsgConfigShort)
	})
}

func TestVersionCmd(t *testing.T) {
	setupConfigDir(t, "")

	res := execute(t, "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "gobtop version")
	assert.Contains(t, res.stdout, "commit:")
}

func TestCompletionCmd(t *testing.T) {
	setupConfigDir(t, "")

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			res := execute(t, "completion", shell)
			require.NoError(t, res.err)
			assert.NotEmpty(t, res.stdout)
		})
	}

	res := execute(t, "completion", "tcsh")
	assert.Error(t, res.err)
}
