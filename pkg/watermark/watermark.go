package watermark

import (
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/sidkik/leetsync/pkg/atomicfile"
	"github.com/sidkik/leetsync/pkg/errors"
)

// DefaultFilename is the name of the watermark file inside the output
// directory.
const DefaultFilename = ".leetcode_last_timestamp"

// Store persists the timestamp of the newest submission that has been fully
// synced.
type Store interface {
	// Load returns the stored watermark, or 0 if none has been saved yet.
	Load() (int64, error)

	// Save atomically replaces the stored watermark.
	Save(int64) error
}

type fileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore creates a Store that keeps the watermark as a decimal integer
// in the file at `path`.
func NewFileStore(fs afero.Fs, path string) Store {
	return fileStore{fs: fs, path: path}
}

func (s fileStore) Load() (int64, error) {
	contents, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", s.path).Info(
				"No watermark found. Syncing the full submission history.")
			return 0, nil
		}
		return 0, errors.WithContext(err, "read")
	}

	value := strings.TrimSpace(string(contents))
	if value == "" {
		return 0, nil
	}

	watermark, err := strconv.ParseInt(value, 10, 64)
	if err != nil || watermark < 0 {
		return 0, errors.NewFriendlyError("The watermark file %q is corrupt: %q.\n"+
			"Delete it to resync the full submission history.", s.path, value)
	}
	return watermark, nil
}

func (s fileStore) Save(watermark int64) error {
	data := []byte(strconv.FormatInt(watermark, 10))
	if _, err := atomicfile.Write(s.fs, s.path, data, 0644); err != nil {
		return errors.WithContext(err, "write")
	}
	return nil
}
