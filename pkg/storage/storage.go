// Package storage defines the FileStore interface used to persist feature
// artifacts. Paths are forward-slash separated and relative to the store root,
// so the pipeline never builds absolute output paths itself.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotDir is returned when a store root exists but is not a directory.
var ErrNotDir = errors.New("storage: not a directory")

// FileStore is a minimal interface for directory-structured file storage.
type FileStore interface {
	// Read opens the named file for reading.
	// The caller must close the returned ReadCloser when done.
	// If the file does not exist, an error wrapping os.ErrNotExist is returned.
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// Write opens the named file for writing.
	// If the file already exists it is truncated.
	// The caller must close the returned WriteCloser to flush data.
	Write(ctx context.Context, path string) (io.WriteCloser, error)

	// Mkdir creates exactly one directory. The parent must exist. If the
	// directory already exists, the error wraps fs.ErrExist.
	Mkdir(ctx context.Context, path string) error
}
