package filesystem

import (
	"os"

	"github.com/spf13/afero"
)

// NewOS creates a filesystem backed by the operating system
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory creates an in-memory filesystem, mostly useful for tests
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// Exists reports whether path exists. Errors other than "not exist" are
// returned so callers can tell a missing file from an unreadable one.
func Exists(fsys afero.Fs, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsWritableDir reports whether path is a directory with the owner write bit set
func IsWritableDir(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir() && info.Mode().Perm()&0200 != 0
}

// EnsureDir creates path (and parents) unless it already is a directory
func EnsureDir(fsys afero.Fs, path string) error {
	if ok, err := afero.DirExists(fsys, path); err == nil && ok {
		return nil
	}
	return fsys.MkdirAll(path, 0755)
}
