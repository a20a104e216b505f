package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	testVersion = "1.2.3"
	testPath    = "/home/user/.config/gobtop/gobtop.conf"
)

func newTestStore(t *testing.T, fsys afero.Fs) *Store {
	t.Helper()
	if fsys == nil {
		fsys = afero.NewMemMapFs()
	}
	logger := zerolog.Nop()
	return New(Options{
		Path:    testPath,
		FS:      fsys,
		Version: testVersion,
		Logger:  &logger,
	})
}

// loadContent writes content as the config file and loads it into a fresh store
func loadContent(t *testing.T, content string) (*Store, Warnings) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, testPath, []byte(content), 0644))

	s := newTestStore(t, fsys)
	warnings, err := s.Load()
	require.NoError(t, err)
	return s, warnings
}

// withHeader prefixes lines with a header matching the test version
func withHeader(lines string) string {
	return Header(testVersion) + "\n" + lines
}
