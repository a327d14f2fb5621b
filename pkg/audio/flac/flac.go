// Package flac decodes FLAC files into normalized mono samples.
//
// Any bit depth and channel count FLAC allows is supported. Channels are
// averaged into one.
package flac

import (
	"errors"
	"fmt"
	"io"
	"os"

	mflac "github.com/mewkiz/flac"

	"github.com/AppleHolic/dvector/pkg/audio"
)

// ErrInvalid is returned for streams that are not FLAC.
var ErrInvalid = errors.New("flac: invalid stream")

// Decode reads a complete FLAC stream.
func Decode(r io.Reader) (*audio.Audio, error) {
	stream, err := mflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	info := stream.Info
	if info.NChannels == 0 || info.BitsPerSample == 0 {
		return nil, fmt.Errorf("%w: %d channels, %d-bit samples", ErrInvalid, info.NChannels, info.BitsPerSample)
	}
	scale := float64(int64(1) << (info.BitsPerSample - 1))

	out := make([]float64, 0, int(info.NSamples))
	for {
		f, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("flac: read frame: %w", err)
		}
		channels := float64(len(f.Subframes))
		for i := range int(f.BlockSize) {
			var sum int64
			for _, sub := range f.Subframes {
				sum += int64(sub.Samples[i])
			}
			out = append(out, float64(sum)/channels/scale)
		}
	}
	return &audio.Audio{Samples: out, SampleRate: int(info.SampleRate)}, nil
}

// ReadFile decodes the FLAC file at path.
func ReadFile(path string) (*audio.Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
