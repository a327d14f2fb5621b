package resampler

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestResampleSameRate(t *testing.T) {
	in := []float64{0.1, -0.2, 0.3}
	out, err := Resample(in, 16000, 16000)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %f, want %f", i, out[i], in[i])
		}
	}
}

func TestResampleInvalidRate(t *testing.T) {
	tests := []struct {
		name     string
		src, dst int
	}{
		{"zero src", 0, 16000},
		{"negative dst", 16000, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resample([]float64{0}, tt.src, tt.dst)
			if !errors.Is(err, ErrRate) {
				t.Fatalf("expected ErrRate, got %v", err)
			}
		})
	}
}

func TestResampleUpsample(t *testing.T) {
	const src, dst = 8000, 16000
	in := make([]float64, src)
	for i := range in {
		in[i] = 0.5 * math.Sin(2*math.Pi*300*float64(i)/src)
	}

	out, err := Resample(in, src, dst)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range out {
		if s > 1 || s < -1 || math.IsNaN(s) {
			t.Fatalf("out[%d] = %f out of range", i, s)
		}
	}
}

func TestResampleKeepsTail(t *testing.T) {
	const tolerance = 4
	for _, src := range []int{8000, 22050, 44100, 48000} {
		t.Run(fmt.Sprintf("%d", src), func(t *testing.T) {
			in := make([]float64, src)
			for i := range in {
				in[i] = 0.5
			}

			out, err := Resample(in, src, 16000)
			if err != nil {
				t.Fatal(err)
			}
			want := OutputLen(len(in), src, 16000)
			if len(out) < want-tolerance || len(out) > want {
				t.Fatalf("len = %d, want %d (within %d)", len(out), want, tolerance)
			}
		})
	}
}

func TestOutputLen(t *testing.T) {
	tests := []struct {
		n, src, dst, want int
	}{
		{16000, 16000, 16000, 16000},
		{44100, 44100, 16000, 16000},
		{8000, 8000, 16000, 16000},
		{3, 48000, 16000, 1},
	}
	for _, tt := range tests {
		if got := OutputLen(tt.n, tt.src, tt.dst); got != tt.want {
			t.Errorf("OutputLen(%d, %d, %d) = %d, want %d", tt.n, tt.src, tt.dst, got, tt.want)
		}
	}
}
