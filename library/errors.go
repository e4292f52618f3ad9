package binspect

import (
	"fmt"
	"os"
)

// NewErrMissingArgument builds a custom ErrMissingArgument and returns it
func NewErrMissingArgument() error {
	return ErrMissingArgument{}
}

// NewErrPathNotFound builds a custom ErrPathNotFound and returns it
func NewErrPathNotFound(path string) error {
	return ErrPathNotFound{path}
}

// NewErrResolution builds a custom ErrResolution and returns it
func NewErrResolution(path string, err error) error {
	return ErrResolution{path, err}
}

// NewErrFileNotFound builds a custom ErrFileNotFound and returns it
func NewErrFileNotFound(path string) error {
	return ErrFileNotFound{path}
}

// NewErrPermissionDenied builds a custom ErrPermissionDenied and returns it
func NewErrPermissionDenied(path string, err error) error {
	return ErrPermissionDenied{path, err}
}

// NewErrNotAFile builds a custom ErrNotAFile and returns it
func NewErrNotAFile(path string, mode os.FileMode) error {
	return ErrNotAFile{path, mode}
}

// NewErrRead builds a custom ErrRead and returns it
func NewErrRead(path string, err error) error {
	return ErrRead{path, err}
}

// ErrMissingArgument is a custom error for when the tool is invoked
// without the path argument it needs
type ErrMissingArgument struct{}

func (ErrMissingArgument) Error() string {
	return "missing argument: expected the path to a file"
}

// ErrPathNotFound is a custom error for when Resolve() is given a path
// with no filesystem entry behind it
type ErrPathNotFound struct {
	path string
}

func (nf ErrPathNotFound) Error() string {
	return fmt.Sprintf("no filesystem entry found at '%v'", nf.path)
}

// ErrResolution is a custom error for when Resolve() fails for a reason
// other than the path not existing, like a permission problem or a
// symlink cycle
type ErrResolution struct {
	path string
	err  error
}

func (re ErrResolution) Error() string {
	return fmt.Sprintf("unable to resolve '%v': %v", re.path, re.err)
}

func (re ErrResolution) Unwrap() error {
	return re.err
}

// ErrFileNotFound is a custom error for when Load() can't find the file,
// which can happen even after a successful resolve if the file is
// removed in between
type ErrFileNotFound struct {
	path string
}

func (nf ErrFileNotFound) Error() string {
	return fmt.Sprintf("file not found at '%v'", nf.path)
}

// ErrPermissionDenied is a custom error for when Load() isn't allowed to
// read the file
type ErrPermissionDenied struct {
	path string
	err  error
}

func (pd ErrPermissionDenied) Error() string {
	return fmt.Sprintf("permission denied reading '%v': %v", pd.path, pd.err)
}

func (pd ErrPermissionDenied) Unwrap() error {
	return pd.err
}

// ErrNotAFile is a custom error for when the path points at a directory
// or some other non-regular file that can't be read as a byte stream
type ErrNotAFile struct {
	path string
	mode os.FileMode
}

func (na ErrNotAFile) Error() string {
	return fmt.Sprintf("'%v' is not a regular file (mode %v)", na.path, na.mode)
}

// ErrRead is a custom error for when reading the file fails for a
// reason the other errors don't cover, like an I/O failure
type ErrRead struct {
	path string
	err  error
}

func (rd ErrRead) Error() string {
	return fmt.Sprintf("unable to read '%v': %v", rd.path, rd.err)
}

func (rd ErrRead) Unwrap() error {
	return rd.err
}
