package gobtop

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/gobtop/pkg/errors"
	"github.com/arthur-debert/gobtop/pkg/paths"
	"github.com/arthur-debert/gobtop/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCheckCmd(t *testing.T) {
	t.Run("clean_file", func(t *testing.T) {
		setupConfigDir(t, "update_ms = 1000\n")

		res := execute(t, "-o", "text", "config", "check")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "gobtop.conf: ok")
	})

	t.Run("warnings_fail_the_check", func(t *testing.T) {
		setupConfigDir(t, "# comment\nshown_boxes = \"cpu gpu\"\ncpu_core_map = \"4:a\"\n")

		res := execute(t, "-o", "text", "config", "check")
		require.Error(t, res.err)
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
		assert.Contains(t, res.err.Error(), "2 invalid config value(s)")
		assert.Contains(t, res.stdout, "gobtop.conf:3: Invalid box name(s) in shown_boxes!")
		assert.Contains(t, res.stdout, "gobtop.conf:4:")
	})

	t.Run("explicit_file", func(t *testing.T) {
		env := setupConfigDir(t, "")
		path := env.WriteFile("candidate.conf", withHeader("presets = \"cpu:2:default\"\n"))

		res := execute(t, "-o", "text", "config", "check", path)
		require.Error(t, res.err)
		assert.Contains(t, res.stdout, "candidate.conf:2:")
	})

	t.Run("missing_file", func(t *testing.T) {
		env := setupConfigDir(t, "")

		res := execute(t, "-o", "text", "config", "check", filepath.Join(env.ConfigDir, "nope.conf"))
		require.Error(t, res.err)
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrNotFound))
		assert.Contains(t, res.stdout, "not found")
	})

	t.Run("json_report", func(t *testing.T) {
		setupConfigDir(t, "truecolor = nope\n")

		res := execute(t, "-o", "json", "config", "check")
		require.Error(t, res.err)

		var report display.ConfigReport
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
		assert.True(t, report.Found)
		assert.True(t, report.Dirty)
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, "truecolor", report.Warnings[0].Key)
		assert.Equal(t, string(errors.ErrInvalidBool), report.Warnings[0].Code)
		assert.Equal(t, 2, report.Warnings[0].Line)
	})
}

func TestConfigShowCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{
			name: "conf_default",
			args: []string{"config", "show"},
			want: []string{"#? Config file for gobtop v. ", "update_ms = 750", "#* "},
		},
		{
			name: "toml",
			args: []string{"config", "show", "--format", "toml"},
			want: []string{"update_ms = 750", "log_level = ", "WARNING"},
		},
		{
			name: "yaml",
			args: []string{"config", "show", "-f", "YAML"},
			want: []string{"update_ms: 750", "log_level: WARNING"},
		},
		{
			name:    "unknown_format",
			args:    []string{"config", "show", "--format", "ini"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupConfigDir(t, "update_ms = 750\n")

			res := execute(t, append([]string{"-o", "text"}, tt.args...)...)
			if tt.wantErr {
				require.Error(t, res.err)
				assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, res.err)
			for _, want := range tt.want {
				assert.Contains(t, res.stdout, want)
			}
			assert.NotContains(t, res.stdout, "tty_mode", "runtime-only settings are never exported")
		})
	}
}

func TestConfigKeysCmd(t *testing.T) {
	setupConfigDir(t, "update_ms = 750\n")

	res := execute(t, "-o", "text", "config", "keys")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "update_ms")
	assert.Contains(t, res.stdout, "750")
	assert.NotContains(t, res.stdout, "tty_mode")

	res = execute(t, "-o", "text", "config", "keys", "--all")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "tty_mode")

	res = execute(t, "-o", "json", "config", "keys")
	require.NoError(t, res.err)
	var list display.SettingList
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &list))
	require.NotEmpty(t, list.Settings)
	for _, s := range list.Settings {
		assert.True(t, s.Documented, s.Key)
	}
}

func TestConfigDescribeCmd(t *testing.T) {
	setupConfigDir(t, "")

	t.Run("documented", func(t *testing.T) {
		res := execute(t, "-o", "text", "config", "describe", "update_ms")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "update_ms (int)")
		assert.Contains(t, res.stdout, "default: 2000")
	})

	t.Run("runtime_only", func(t *testing.T) {
		res := execute(t, "-o", "text", "config", "describe", "tty_mode")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Runtime only")
	})

	t.Run("unknown", func(t *testing.T) {
		res := execute(t, "-o", "text", "config", "describe", "no_such_key")
		require.Error(t, res.err)
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrUnknownKey))
	})

	t.Run("completion", func(t *testing.T) {
		res := execute(t, "__complete", "config", "describe", "update")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "update_ms")
		assert.NotContains(t, res.stdout, "shown_boxes")
	})
}

func TestConfigPresetsCmd(t *testing.T) {
	setupConfigDir(t, "presets = \"cpu:0:default,mem:0:tty\"\n")

	res := execute(t, "-o", "text", "config", "presets")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "* 0  cpu:0:default,mem:0:default,net:0:default,proc:0:default", lines[0])
	assert.Equal(t, "  1  cpu:0:default,mem:0:tty", lines[1])
}

func TestConfigPathsCmd(t *testing.T) {
	env := setupConfigDir(t, "")

	res := execute(t, "config", "paths")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, env.ConfigPath())
	assert.Contains(t, res.stdout, filepath.Join(env.ConfigDir, paths.LogFileName))
	assert.Contains(t, res.stdout, filepath.Join(env.ConfigDir, paths.ThemesDirName))
}
