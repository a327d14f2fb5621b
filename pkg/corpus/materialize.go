package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/AppleHolic/dvector/pkg/feature"
	"github.com/AppleHolic/dvector/pkg/storage"
	"github.com/AppleHolic/dvector/pkg/tensor"
)

// Progress receives per-speaker extraction progress. Start is called once
// before the first utterance, Increment after each extracted utterance, and
// Finish exactly once after Start, whether or not extraction succeeded.
type Progress interface {
	Start(label string, total int)
	Increment()
	Finish()
}

type nopProgress struct{}

func (nopProgress) Start(string, int) {}
func (nopProgress) Increment()        {}
func (nopProgress) Finish()           {}

// Result describes one materialized speaker.
type Result struct {
	// Index is the global speaker index, or 0 if the speaker was skipped.
	Index int

	// Dir is the speaker directory relative to the destination.
	Dir string

	// Utterances is the number of artifacts written.
	Utterances int
}

// Skipped reports whether the speaker had no utterances.
func (r Result) Skipped() bool {
	return r.Index == 0
}

// Materializer writes the artifacts of one speaker at a time.
type Materializer struct {
	Store      storage.FileStore
	Discoverer Discoverer
	Extractor  feature.Extractor
	Logger     *slog.Logger
	Progress   Progress
}

func (m *Materializer) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}

func (m *Materializer) progress() Progress {
	if m.Progress != nil {
		return m.Progress
	}
	return nopProgress{}
}

func (m *Materializer) discoverer() Discoverer {
	if m.Discoverer != nil {
		return m.Discoverer
	}
	return AudioFiles{}
}

// Materialize discovers the utterances of spk and, if there are any, assigns
// it index next, creates its output directory and writes one artifact per
// utterance. A speaker without utterances returns a skipped Result and
// leaves the destination untouched.
//
// All utterances are extracted before the first artifact is written. Any
// error aborts the speaker; files already written stay where they are.
func (m *Materializer) Materialize(ctx context.Context, spk Speaker, next int) (Result, error) {
	paths, err := m.discoverer().Discover(spk.Path)
	if err != nil {
		return Result{}, err
	}

	log := m.logger()
	log.Info(fmt.Sprintf("Collecting %d utterances from %s", len(paths), spk.Path),
		"count", len(paths), "path", spk.Path)
	if len(paths) == 0 {
		return Result{}, nil
	}

	res := Result{Index: next, Dir: SpeakerDir(next, spk.ID), Utterances: len(paths)}
	if err := m.Store.Mkdir(ctx, res.Dir); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Result{}, fmt.Errorf("%w: %s: %w", ErrOutputExists, res.Dir, err)
		}
		return Result{}, fmt.Errorf("create %s: %w", res.Dir, err)
	}

	specs, err := m.extractAll(res.Dir, paths)
	if err != nil {
		return Result{}, err
	}
	for i, p := range paths {
		name := path.Join(res.Dir, ArtifactName(UtteranceID(p)))
		if err := m.write(ctx, name, specs[i]); err != nil {
			return Result{}, err
		}
	}

	log.Debug("speaker materialized", "index", res.Index, "speaker", spk.ID, "dir", res.Dir)
	return res, nil
}

func (m *Materializer) extractAll(label string, paths []string) ([]*tensor.Tensor, error) {
	p := m.progress()
	p.Start(label, len(paths))
	defer p.Finish()

	specs := make([]*tensor.Tensor, len(paths))
	for i, audio := range paths {
		spec, err := m.Extractor.Extract(audio)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", audio, err)
		}
		specs[i] = spec
		p.Increment()
	}
	return specs, nil
}

func (m *Materializer) write(ctx context.Context, name string, t *tensor.Tensor) error {
	w, err := m.Store.Write(ctx, name)
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tensor.Encode(w, t); err != nil {
		w.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
