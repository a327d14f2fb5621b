package corpus

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AppleHolic/dvector/pkg/feature"
	"github.com/AppleHolic/dvector/pkg/storage"
	"github.com/AppleHolic/dvector/pkg/tensor"
)

// layout maps speaker id to utterance file names. A nil slice creates an
// empty speaker directory.
type layout map[string][]string

// makeCorpus creates a root under t.TempDir(). Each audio file holds its own
// name so that valueExtractor can tell files apart.
func makeCorpus(t *testing.T, speakers layout) string {
	t.Helper()
	root := t.TempDir()
	for spk, files := range speakers {
		dir := filepath.Join(root, spk)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		for _, f := range files {
			require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte(f), 0o644))
		}
	}
	return root
}

// valueExtractor returns a [1, n] tensor holding the bytes of the file, so the
// artifact content identifies its source file.
func valueExtractor() feature.ExtractorFunc {
	return func(path string) (*tensor.Tensor, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		row := make([]float32, len(data))
		for i, b := range data {
			row[i] = float32(b)
		}
		return tensor.FromRows([][]float32{row}, len(row))
	}
}

// readArtifact decodes the artifact at name below dest, as written by
// valueExtractor, back into the source file name.
func readArtifact(t *testing.T, dest, name string) string {
	t.Helper()
	store, err := storage.OpenLocal(dest)
	require.NoError(t, err)
	r, err := store.Read(context.Background(), name)
	require.NoError(t, err)
	defer r.Close()
	tt, err := tensor.Decode(r)
	require.NoError(t, err)
	var b strings.Builder
	for _, v := range tt.Data {
		b.WriteByte(byte(v))
	}
	return b.String()
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func newPipeline() *Pipeline {
	return &Pipeline{Extractor: valueExtractor(), Logger: quietLogger()}
}

func prepare(t *testing.T, p *Pipeline, dest string, roots ...string) (*Summary, error) {
	t.Helper()
	return p.Prepare(context.Background(), roots, dest)
}

func indices(sum *Summary) []int {
	out := make([]int, 0, len(sum.Entries))
	for _, e := range sum.Entries {
		out = append(out, e.Index)
	}
	return out
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// extractorFunc runs observe before delegating to inner.
func extractorFunc(observe func(path string) error, inner feature.Extractor) feature.ExtractorFunc {
	return func(path string) (*tensor.Tensor, error) {
		if err := observe(path); err != nil {
			return nil, err
		}
		return inner.Extract(path)
	}
}
