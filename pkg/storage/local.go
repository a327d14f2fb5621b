package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local implements FileStore on top of the local filesystem.
// All paths are resolved relative to the configured root directory.
type Local struct {
	root string
}

// OpenLocal opens a Local store rooted at dir. The directory must already
// exist; it is never created.
func OpenLocal(dir string) (*Local, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, dir)
	}
	return &Local{root: abs}, nil
}

// Root returns the absolute root directory.
func (l *Local) Root() string {
	return l.root
}

// resolve turns a storage path into an absolute filesystem path.
func (l *Local) resolve(path string) string {
	return filepath.Join(l.root, filepath.FromSlash(path))
}

// Read opens the named file for reading.
func (l *Local) Read(_ context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(l.resolve(path))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Write creates or truncates the named file. The parent directory must exist.
func (l *Local) Write(_ context.Context, path string) (io.WriteCloser, error) {
	f, err := os.Create(l.resolve(path))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Mkdir creates one directory below the root.
func (l *Local) Mkdir(_ context.Context, path string) error {
	return os.Mkdir(l.resolve(path), 0o755)
}
