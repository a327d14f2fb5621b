package corpus

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAudioFilesRecursiveSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.wav", "a.WAV", "sub/c.wav", "sub/deeper/d.Wav", "notes.txt", "e.m4a"} {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}

	got, err := AudioFiles{}.Discover(dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.WAV"),
		filepath.Join(dir, "b.wav"),
		filepath.Join(dir, "sub", "c.wav"),
		filepath.Join(dir, "sub", "deeper", "d.Wav"),
	}, got)
}

func TestAudioFilesDefaultFormats(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"19-198-0001.flac", "19-198-0002.FLAC", "a.mp3", "b.ogg", "c.wav", "d.aac"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	got, err := AudioFiles{}.Discover(dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "19-198-0001.flac"),
		filepath.Join(dir, "19-198-0002.FLAC"),
		filepath.Join(dir, "a.mp3"),
		filepath.Join(dir, "b.ogg"),
		filepath.Join(dir, "c.wav"),
	}, got)
}

func TestAudioFilesCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.wav", "b.flac", "c.FLAC"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	got, err := AudioFiles{Extensions: []string{"flac"}}.Discover(dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "b.flac"), filepath.Join(dir, "c.FLAC")}, got)
}

func TestAudioFilesEmpty(t *testing.T) {
	got, err := AudioFiles{}.Discover(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestAudioFilesMissingDir(t *testing.T) {
	_, err := AudioFiles{}.Discover(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}
