package binspect

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Resolve turns a user-supplied path into a canonical absolute path,
// with symlinks followed and any '.' or '..' segments removed. The path
// has to exist for resolution to succeed.
func Resolve(path string) (string, error) {
	// filepath.Abs("") resolves to the working directory, which is not
	// what anyone passing an empty string meant
	if strings.TrimSpace(path) == "" {
		return "", NewErrPathNotFound(path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", NewErrResolution(path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if errors.Is(err, os.ErrNotExist) {
		return "", NewErrPathNotFound(path)
	}
	if err != nil {
		return "", NewErrResolution(path, err)
	}

	zap.L().Debug("path resolved",
		zap.String("input", path),
		zap.String("resolved", resolved),
	)

	return resolved, nil
}
