// Package wav decodes RIFF/WAVE files into normalized mono samples.
//
// Integer PCM at 16, 24 and 32 bits is supported, at any sample rate and
// channel count. Multi-channel audio is downmixed by averaging channels.
package wav

import (
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/AppleHolic/dvector/pkg/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

var (
	// ErrInvalid is returned for streams that are not RIFF/WAVE.
	ErrInvalid = errors.New("wav: invalid file")

	// ErrUnsupported is returned for WAVE encodings this package does not decode.
	ErrUnsupported = errors.New("wav: unsupported encoding")
)

// Decode reads a complete WAV stream.
func Decode(r io.ReadSeeker) (*audio.Audio, error) {
	d := gowav.NewDecoder(r)
	if !d.IsValidFile() {
		if err := d.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		return nil, ErrInvalid
	}
	if d.WavAudioFormat != formatPCM && d.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupported, d.WavAudioFormat)
	}
	switch d.BitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit samples", ErrUnsupported, d.BitDepth)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: read samples: %w", err)
	}
	channels := int(d.NumChans)
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalid, channels)
	}
	return &audio.Audio{
		Samples:    downmix(buf.Data, channels, int(d.BitDepth)),
		SampleRate: int(d.SampleRate),
	}, nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*audio.Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// downmix averages interleaved integer frames into normalized mono samples.
func downmix(data []int, channels, bitDepth int) []float64 {
	scale := float64(int64(1) << (bitDepth - 1))
	frames := len(data) / channels
	out := make([]float64, frames)
	for i := range frames {
		sum := 0
		for c := range channels {
			sum += data[i*channels+c]
		}
		out[i] = float64(sum) / float64(channels) / scale
	}
	return out
}

// Encode writes samples as 16-bit mono PCM. Values outside [-1, 1] are
// clipped.
func Encode(w io.WriteSeeker, samples []float64, sampleRate int) error {
	data := make([]int, len(samples))
	for i, s := range samples {
		v := int(s * 32767)
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		data[i] = v
	}
	enc := gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM)
	if err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}); err != nil {
		return fmt.Errorf("wav: write samples: %w", err)
	}
	return enc.Close()
}

// WriteFile encodes samples into a new file at path.
func WriteFile(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, samples, sampleRate); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
