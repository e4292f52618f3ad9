package binspect

import (
	"errors"
	"os"
	"syscall"

	"go.uber.org/zap"
)

// Load reads the complete contents of the file at path into memory. The
// path should already be resolved, but nothing about resolution
// guarantees the file is still there -- or still a file -- by the time
// the read happens, so every failure here gets classified on its own.
func Load(path string) ([]byte, error) {
	st, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, NewErrFileNotFound(path)
	}
	if errors.Is(err, os.ErrPermission) {
		return nil, NewErrPermissionDenied(path, err)
	}
	if err != nil {
		return nil, NewErrRead(path, err)
	}

	if !st.Mode().IsRegular() {
		return nil, NewErrNotAFile(path, st.Mode())
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, NewErrFileNotFound(path)
	case errors.Is(err, os.ErrPermission):
		return nil, NewErrPermissionDenied(path, err)
	case errors.Is(err, syscall.EISDIR):
		// replaced with a directory between the stat and the read
		return nil, NewErrNotAFile(path, os.ModeDir)
	case err != nil:
		return nil, NewErrRead(path, err)
	}

	zap.L().Debug("file loaded",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
	)

	return data, nil
}
