package util

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"vincit.fi/photo-report/api/apitype"
	"vincit.fi/photo-report/common/logger"
)

// DefaultFileMode is the mode of files WriteAtomic creates.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic calls write with a temporary file in the directory of path and
// renames the file to path once write succeeds. On any failure the temporary
// file is removed and path is left untouched. An existing file keeps its
// permissions, a new one gets DefaultFileMode. Errors not already wrapping
// apitype.ErrIO are wrapped with it.
func WriteAtomic(path string, write func(w io.Writer) error) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	file, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating '%s': %s", apitype.ErrIO, path, err)
	}
	tempPath := file.Name()
	defer func() {
		if err != nil {
			_ = file.Close()
			if removeErr := os.Remove(tempPath); removeErr != nil && !os.IsNotExist(removeErr) {
				logger.Warn.Printf("Could not remove temporary file '%s': %s", tempPath, removeErr)
			}
		}
	}()

	logger.Trace.Printf("Writing '%s' through '%s'", path, tempPath)
	if err = file.Chmod(targetMode(path)); err != nil {
		return fmt.Errorf("%w: setting mode of '%s': %s", apitype.ErrIO, tempPath, err)
	} else if err = write(file); err != nil {
		return wrapIO(err, path)
	} else if err = file.Close(); err != nil {
		return fmt.Errorf("%w: closing '%s': %s", apitype.ErrIO, tempPath, err)
	} else if err = os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("%w: renaming to '%s': %s", apitype.ErrIO, path, err)
	}
	return nil
}

// WriteFileAtomic is WriteAtomic for data already in memory.
func WriteFileAtomic(path string, data []byte) error {
	return WriteAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

func targetMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return DefaultFileMode
}

func wrapIO(err error, path string) error {
	if errors.Is(err, apitype.ErrIO) {
		return err
	}
	return fmt.Errorf("%w: writing '%s': %s", apitype.ErrIO, path, err)
}
