// Package feature defines the feature-extraction boundary of the corpus
// pipeline and ships the default log-mel implementation.
package feature

import (
	"fmt"

	"github.com/AppleHolic/dvector/pkg/audio/fbank"
	"github.com/AppleHolic/dvector/pkg/audio/resampler"
	"github.com/AppleHolic/dvector/pkg/tensor"
)

// Extractor turns one audio file into one feature tensor.
//
// Implementations must be pure inference: the same file always yields the
// same tensor, and nothing observable from one call (buffers, statistics,
// caches, model state) may influence another. Callers rely on this to run
// extraction in any order or, later, concurrently.
type Extractor interface {
	Extract(path string) (*tensor.Tensor, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(path string) (*tensor.Tensor, error)

// Extract calls f(path).
func (f ExtractorFunc) Extract(path string) (*tensor.Tensor, error) {
	return f(path)
}

// Mel extracts [frames, 80] log mel filterbank tensors from WAV, FLAC, MP3
// and Ogg Vorbis files, picking the decoder by extension. Audio is downmixed
// to mono and resampled to 16 kHz first.
type Mel struct {
	fbank *fbank.Extractor
}

// NewMel returns a Mel extractor with the fixed feature configuration.
func NewMel() *Mel {
	return &Mel{fbank: fbank.New(fbank.DefaultConfig())}
}

// Extract implements Extractor.
func (m *Mel) Extract(path string) (*tensor.Tensor, error) {
	cfg := m.fbank.Config()

	a, err := readAudio(path)
	if err != nil {
		return nil, err
	}
	samples, err := resampler.Resample(a.Samples, a.SampleRate, cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("resample %d Hz: %w", a.SampleRate, err)
	}

	pcm := make([]float32, len(samples))
	for i, s := range samples {
		pcm[i] = float32(s)
	}
	return tensor.FromRows(m.fbank.Extract(pcm), cfg.NumMels)
}

var _ Extractor = (*Mel)(nil)
