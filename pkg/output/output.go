// Package output writes assembled binaries to the host file system.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileMode is applied to every written binary.
const FileMode os.FileMode = 0644

var ErrEmptyPath = errors.New("empty output path")

// WriteFile stages data in a temp file next to path and renames it into
// place. If any step fails the temp file is removed and an existing file at
// path is left as it was.
func WriteFile(path string, data []byte) (err error) {
	if path == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err = os.Chmod(tmpName, FileMode); err != nil {
		return err
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// AtomicSink adapts WriteFile to the driver's sink interface.
type AtomicSink struct{}

func (AtomicSink) Write(path string, data []byte) error {
	return WriteFile(path, data)
}
