package atomicfile

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sidkik/leetsync/pkg/errors"
)

// Write replaces the contents of `path` with `data`. The data is written to a
// temporary file in the same directory and then renamed into place, so
// readers either see the old contents or the new ones, never a partial
// write. Parent directories are created as needed.
//
// It returns false without touching the file if it already holds `data`.
func Write(fs afero.Fs, path string, data []byte, perm os.FileMode) (bool, error) {
	current, err := afero.ReadFile(fs, path)
	if err == nil && bytes.Equal(current, data) {
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return false, errors.WithContext(err, "create directory")
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".tmp")
	if err != nil {
		return false, errors.WithContext(err, "create temp file")
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fs.Remove(tmp.Name())
		return false, errors.WithContext(err, "write temp file")
	}

	if err := tmp.Close(); err != nil {
		fs.Remove(tmp.Name())
		return false, errors.WithContext(err, "close temp file")
	}

	if err := fs.Chmod(tmp.Name(), perm); err != nil {
		fs.Remove(tmp.Name())
		return false, errors.WithContext(err, "chmod")
	}

	if err := fs.Rename(tmp.Name(), path); err != nil {
		fs.Remove(tmp.Name())
		return false, errors.WithContext(err, "rename")
	}
	return true, nil
}
