// Package corpus turns speaker-organized audio corpora into per-utterance
// feature artifacts.
//
// A corpus root holds one directory per speaker. Every speaker with at least
// one audio file is given the next global speaker index (1-based, shared by
// all roots of a run) and materialized into
//
//	<dest>/s0001(<speaker id>)/<utterance id>.msgpack
//
// Speakers without audio are reported and skipped without consuming an index.
// Any other failure aborts the run; nothing is retried or rolled back.
package corpus

import "errors"

var (
	// ErrNoRoots is returned when Prepare is called without roots.
	ErrNoRoots = errors.New("corpus: no root paths")

	// ErrDestination is returned when the destination is missing or not a
	// directory.
	ErrDestination = errors.New("corpus: invalid destination")

	// ErrOutputExists is returned when a speaker output directory already
	// exists. It always accompanies fs.ErrExist.
	ErrOutputExists = errors.New("corpus: output directory exists")
)

// Speaker is one speaker directory found under a root.
type Speaker struct {
	// Root is the corpus root the speaker was found in.
	Root string

	// ID is the directory name, kept verbatim as the original speaker id.
	ID string

	// Path is Root joined with ID.
	Path string
}
