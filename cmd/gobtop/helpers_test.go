package gobtop

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/gobtop/internal/version"
	"github.com/arthur-debert/gobtop/pkg/config"
	"github.com/arthur-debert/gobtop/pkg/testutil"
)

type cmdResult struct {
	stdout string
	stderr string
	err    error
}

// setupConfigDir points gobtop at a fresh config dir with a UTF-8 locale.
// A non-empty content is written as the config file, after a valid header.
func setupConfigDir(t *testing.T, content string) *testutil.TestEnvironment {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	if content != "" {
		env.WriteConfig(withHeader(content))
	}
	return env
}

func withHeader(content string) string {
	return config.Header(version.Version) + "\n" + content
}

func execute(t *testing.T, args ...string) cmdResult {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}
