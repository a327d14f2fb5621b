package corpus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AppleHolic/dvector/pkg/feature"
	"github.com/AppleHolic/dvector/pkg/storage"
)

// Entry records one materialized speaker.
type Entry struct {
	Index      int    `yaml:"index" json:"index"`
	Speaker    string `yaml:"speaker" json:"speaker"`
	Source     string `yaml:"source" json:"source"`
	Dir        string `yaml:"dir" json:"dir"`
	Utterances int    `yaml:"utterances" json:"utterances"`
}

// Summary describes a run.
type Summary struct {
	Destination string  `yaml:"destination" json:"destination"`
	Speakers    int     `yaml:"speakers" json:"speakers"`
	Skipped     int     `yaml:"skipped" json:"skipped"`
	Utterances  int     `yaml:"utterances" json:"utterances"`
	Entries     []Entry `yaml:"entries,omitempty" json:"entries,omitempty"`
}

// Pipeline holds the collaborators of a run. Extractor is required; the rest
// default to AudioFiles, slog.Default() and no progress reporting.
type Pipeline struct {
	Discoverer Discoverer
	Extractor  feature.Extractor
	Logger     *slog.Logger
	Progress   Progress
}

// Prepare materializes every non-empty speaker under roots into dest.
//
// dest must already exist as a directory; this is checked before any root is
// read. Roots are processed in the given order and share one index space
// starting at 1. The first error stops the run and is returned together with
// the summary of the speakers completed so far.
func (p *Pipeline) Prepare(ctx context.Context, roots []string, dest string) (*Summary, error) {
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}
	if p.Extractor == nil {
		return nil, errors.New("corpus: pipeline has no extractor")
	}
	store, err := storage.OpenLocal(dest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDestination, err)
	}

	m := &Materializer{
		Store:      store,
		Discoverer: p.Discoverer,
		Extractor:  p.Extractor,
		Logger:     p.Logger,
		Progress:   p.Progress,
	}
	sum := &Summary{Destination: store.Root()}

	next := 1
	for spk, err := range Walk(roots) {
		if err != nil {
			return sum, err
		}
		res, err := m.Materialize(ctx, spk, next)
		if err != nil {
			return sum, err
		}
		if res.Skipped() {
			sum.Skipped++
			continue
		}
		next = res.Index + 1

		sum.Speakers++
		sum.Utterances += res.Utterances
		sum.Entries = append(sum.Entries, Entry{
			Index:      res.Index,
			Speaker:    spk.ID,
			Source:     spk.Path,
			Dir:        res.Dir,
			Utterances: res.Utterances,
		})
	}
	return sum, nil
}
