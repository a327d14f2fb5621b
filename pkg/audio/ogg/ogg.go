// Package ogg decodes Ogg Vorbis files into normalized mono samples.
// Ogg streams carrying other codecs, such as Opus, are rejected.
package ogg

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jfreymuth/oggvorbis"

	"github.com/AppleHolic/dvector/pkg/audio"
)

// ErrInvalid is returned for streams that are not Ogg Vorbis.
var ErrInvalid = errors.New("ogg: invalid vorbis stream")

// Decode reads a complete Ogg Vorbis stream. Channels are averaged.
func Decode(r io.Reader) (*audio.Audio, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	channels := format.Channels
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalid, channels)
	}

	out := make([]float64, len(data)/channels)
	for i := range out {
		var sum float64
		for c := range channels {
			sum += float64(data[i*channels+c])
		}
		out[i] = sum / float64(channels)
	}
	return &audio.Audio{Samples: out, SampleRate: format.SampleRate}, nil
}

// ReadFile decodes the Ogg Vorbis file at path.
func ReadFile(path string) (*audio.Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
