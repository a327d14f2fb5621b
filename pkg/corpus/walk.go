package corpus

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
)

// Walk yields every speaker directory under roots, root by root. Within a root
// speakers come in lexicographic order of their names. Regular files at the
// root level are ignored; symlinks count when they point at a directory, and a
// symlink that cannot be resolved is an error.
//
// Each root is listed only when the walk reaches it. A root that cannot be
// listed yields a single error and ends the walk.
func Walk(roots []string) iter.Seq2[Speaker, error] {
	return func(yield func(Speaker, error) bool) {
		for _, root := range roots {
			speakers, err := listSpeakers(root)
			if err != nil {
				yield(Speaker{}, err)
				return
			}
			for _, spk := range speakers {
				if !yield(spk, nil) {
					return
				}
			}
		}
	}
}

func listSpeakers(root string) ([]Speaker, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list speakers in %s: %w", root, err)
	}
	var speakers []Speaker
	for _, e := range entries {
		p := filepath.Join(root, e.Name())
		isDir := e.IsDir()
		if !isDir && e.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(p)
			if err != nil {
				return nil, fmt.Errorf("resolve speaker %s: %w", p, err)
			}
			isDir = info.IsDir()
		}
		if !isDir {
			continue
		}
		speakers = append(speakers, Speaker{Root: root, ID: e.Name(), Path: p})
	}
	return speakers, nil
}
