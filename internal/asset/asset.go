// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package asset renames a single filesystem entry, a file or a directory,
// identified by its path.
//
// A rename is one call to the rename primitive of the underlying filesystem.
// It is atomic when the platform makes it so (typically within one volume),
// and it is never retried or rolled back. When the destination already
// exists, the platform decides: on Unix and Windows an existing file is
// replaced, while renaming a directory onto a non-empty directory fails with
// [AlreadyExists].
package asset

import (
	"errors"
	"io/fs"
	"syscall"

	"github.com/spf13/afero"
)

// ErrEmptyPath is returned by [Asset.Rename] when the new path is empty.
var ErrEmptyPath = errors.New("asset: new path is empty")

// Asset is a file or directory identified by its path. The path is not
// checked for existence until the asset is renamed.
type Asset struct {
	fs   afero.Fs
	path string
}

// New returns an Asset for path on the operating system filesystem.
func New(path string) Asset {
	return NewFS(afero.NewOsFs(), path)
}

// NewFS returns an Asset for path on fsys.
func NewFS(fsys afero.Fs, path string) Asset {
	return Asset{fs: fsys, path: path}
}

// Path returns the path of the asset.
func (a Asset) Path() string { return a.path }

// Rename renames the asset to newPath. On failure it returns an [*Error]
// describing what went wrong.
func (a Asset) Rename(newPath string) error {
	if newPath == "" {
		return ErrEmptyPath
	}
	if err := a.fs.Rename(a.path, newPath); err != nil {
		return &Error{
			Old:  a.path,
			New:  newPath,
			Kind: kindOf(err),
			Err:  err,
		}
	}
	return nil
}

// Kind classifies a rename failure.
type Kind int

// Rename failure kinds.
const (
	Other Kind = iota
	NotFound
	PermissionDenied
	CrossDevice
	AlreadyExists
)

var kindNames = [...]string{
	Other:            "other",
	NotFound:         "not found",
	PermissionDenied: "permission denied",
	CrossDevice:      "cross-device",
	AlreadyExists:    "already exists",
}

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

func kindOf(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, syscall.EXDEV):
		return CrossDevice
	case errors.Is(err, fs.ErrExist):
		return AlreadyExists
	default:
		return Other
	}
}

// Error is returned when the filesystem refuses a rename.
//
// Its message is the one provided by the operating system.
type Error struct {
	Old, New string
	Kind     Kind
	Err      error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
