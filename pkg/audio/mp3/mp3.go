// Package mp3 decodes MPEG-1/2 Layer III files into normalized mono samples.
package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/AppleHolic/dvector/pkg/audio"
)

// ErrInvalid is returned for streams without a decodable MP3 frame.
var ErrInvalid = errors.New("mp3: invalid stream")

// The decoder always produces interleaved 16-bit little-endian stereo.
const bytesPerFrame = 4

// Decode reads a complete MP3 stream. Both output channels are averaged.
func Decode(r io.Reader) (*audio.Audio, error) {
	d, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	pcm, err := io.ReadAll(d)
	if err != nil {
		return nil, fmt.Errorf("mp3: read samples: %w", err)
	}

	out := make([]float64, len(pcm)/bytesPerFrame)
	for i := range out {
		l := int16(binary.LittleEndian.Uint16(pcm[i*bytesPerFrame:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i*bytesPerFrame+2:]))
		out[i] = (float64(l) + float64(r)) / 2 / 32768
	}
	return &audio.Audio{Samples: out, SampleRate: d.SampleRate()}, nil
}

// ReadFile decodes the MP3 file at path.
func ReadFile(path string) (*audio.Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
