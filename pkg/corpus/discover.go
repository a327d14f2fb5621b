package corpus

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/AppleHolic/dvector/pkg/feature"
)

// Discoverer finds the audio files of one speaker directory. The returned
// order is the order utterances are extracted and written in.
type Discoverer interface {
	Discover(dir string) ([]string, error)
}

// DiscovererFunc adapts a function to the Discoverer interface.
type DiscovererFunc func(dir string) ([]string, error)

// Discover calls f(dir).
func (f DiscovererFunc) Discover(dir string) ([]string, error) {
	return f(dir)
}

// DefaultExtensions are the audio extensions AudioFiles matches when none are
// configured: every format the default extractor decodes.
var DefaultExtensions = feature.Extensions()

// AudioFiles discovers audio files recursively below a speaker directory.
// Extensions match case-insensitively, without the leading dot. Results are
// sorted by full path.
type AudioFiles struct {
	Extensions []string
}

// Discover implements Discoverer.
func (a AudioFiles) Discover(dir string) ([]string, error) {
	exts := a.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.TrimPrefix(filepath.Ext(p), ".")
		if slices.ContainsFunc(exts, func(e string) bool { return strings.EqualFold(e, ext) }) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover audio in %s: %w", dir, err)
	}
	slices.Sort(files)
	return files, nil
}
