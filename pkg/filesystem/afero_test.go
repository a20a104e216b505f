package filesystem_test

import (
	"testing"

	"github.com/arthur-debert/gobtop/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, afero.WriteFile(fsys, "/cfg/gobtop.conf", []byte("x"), 0644))

	ok, err := filesystem.Exists(fsys, "/cfg/gobtop.conf")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = filesystem.Exists(fsys, "/cfg/missing.conf")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsWritableDir(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/rw", 0755))
	require.NoError(t, fsys.MkdirAll("/ro", 0555))
	require.NoError(t, afero.WriteFile(fsys, "/file", []byte("x"), 0644))

	assert.True(t, filesystem.IsWritableDir(fsys, "/rw"))
	assert.False(t, filesystem.IsWritableDir(fsys, "/ro"))
	assert.False(t, filesystem.IsWritableDir(fsys, "/file"))
	assert.False(t, filesystem.IsWritableDir(fsys, "/missing"))
}

func TestEnsureDir(t *testing.T) {
	fsys := filesystem.NewMemory()

	require.NoError(t, filesystem.EnsureDir(fsys, "/a/b/c"))
	ok, err := afero.DirExists(fsys, "/a/b/c")
	require.NoError(t, err)
	assert.True(t, ok)

	// idempotent
	assert.NoError(t, filesystem.EnsureDir(fsys, "/a/b/c"))
}

func TestNewOS(t *testing.T) {
	dir := t.TempDir()
	ok, err := filesystem.Exists(filesystem.NewOS(), dir)
	require.NoError(t, err)
	assert.True(t, ok)
}
