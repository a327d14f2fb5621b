package feature

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/AppleHolic/dvector/pkg/audio"
	"github.com/AppleHolic/dvector/pkg/audio/flac"
	"github.com/AppleHolic/dvector/pkg/audio/mp3"
	"github.com/AppleHolic/dvector/pkg/audio/ogg"
	"github.com/AppleHolic/dvector/pkg/audio/wav"
)

// ErrFormat is returned for files whose extension has no decoder.
var ErrFormat = errors.New("feature: unsupported audio format")

type decodeFunc func(io.ReadSeeker) (*audio.Audio, error)

func stream(fn func(io.Reader) (*audio.Audio, error)) decodeFunc {
	return func(r io.ReadSeeker) (*audio.Audio, error) { return fn(r) }
}

// decoders is keyed by lower-case extension without the dot.
var decoders = map[string]decodeFunc{
	"flac": stream(flac.Decode),
	"mp3":  stream(mp3.Decode),
	"ogg":  stream(ogg.Decode),
	"wav":  wav.Decode,
}

// Extensions returns the file extensions Mel can decode, sorted, without the
// leading dot.
func Extensions() []string {
	return slices.Sorted(maps.Keys(decoders))
}

// readAudio decodes path with the decoder registered for its extension.
func readAudio(path string) (*audio.Audio, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dec(f)
}
