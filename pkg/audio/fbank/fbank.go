// Package fbank computes log mel filterbank features from PCM audio.
//
// The output is a [T, numMels] float32 matrix, one row per 10 ms frame.
// Parameters are fixed by DefaultConfig and follow the Kaldi convention:
//
//	SampleRate:  16000
//	WindowSize:  400 (25 ms)
//	HopSize:     160 (10 ms)
//	FFTSize:     512
//	NumMels:     80
//	LowFreq:     20
//	HighFreq:  7600
//	PreEmphasis: 0.97
package fbank

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// logFloor keeps silent frames finite.
const logFloor = 1e-10

// Config controls mel filterbank extraction parameters.
type Config struct {
	SampleRate  int     // audio sample rate in Hz
	WindowSize  int     // window length in samples
	HopSize     int     // hop length in samples
	FFTSize     int     // FFT size, >= WindowSize
	NumMels     int     // number of mel bins
	LowFreq     float64 // lowest mel frequency in Hz
	HighFreq    float64 // highest mel frequency in Hz
	PreEmphasis float64 // pre-emphasis coefficient
}

// DefaultConfig returns the feature configuration used for every artifact.
func DefaultConfig() Config {
	return Config{
		SampleRate:  16000,
		WindowSize:  400,
		HopSize:     160,
		FFTSize:     512,
		NumMels:     80,
		LowFreq:     20,
		HighFreq:    7600,
		PreEmphasis: 0.97,
	}
}

// NumFrames returns how many frames Extract produces for n samples.
func (c Config) NumFrames(n int) int {
	if n < c.WindowSize {
		return 0
	}
	return (n-c.WindowSize)/c.HopSize + 1
}

// Extractor computes mel filterbank features from PCM samples.
//
// An Extractor holds only read-only tables, so Extract never carries state
// from one call to the next.
type Extractor struct {
	cfg     Config
	window  []float64
	melBank [][]float64
}

// New creates a new fbank Extractor with the given config.
func New(cfg Config) *Extractor {
	return &Extractor{
		cfg:     cfg,
		window:  hammingWindow(cfg.WindowSize),
		melBank: melFilterBank(cfg.NumMels, cfg.FFTSize, cfg.SampleRate, cfg.LowFreq, cfg.HighFreq),
	}
}

// Config returns the extractor's configuration.
func (e *Extractor) Config() Config {
	return e.cfg
}

// Extract computes log mel filterbank features from samples in [-1, 1].
// It returns nil when pcm is shorter than one window.
func (e *Extractor) Extract(pcm []float32) [][]float32 {
	cfg := e.cfg
	numFrames := cfg.NumFrames(len(pcm))
	if numFrames == 0 {
		return nil
	}

	fft := fourier.NewFFT(cfg.FFTSize)
	frame := make([]float64, cfg.FFTSize)
	coeffs := make([]complex128, cfg.FFTSize/2+1)
	power := make([]float64, len(coeffs))

	features := make([][]float32, numFrames)
	for t := range numFrames {
		start := t * cfg.HopSize
		for i := 0; i < cfg.WindowSize; i++ {
			s := float64(pcm[start+i])
			if i > 0 {
				s -= cfg.PreEmphasis * float64(pcm[start+i-1])
			}
			frame[i] = s * e.window[i]
		}
		// Zero-pad up to the FFT size.
		for i := cfg.WindowSize; i < cfg.FFTSize; i++ {
			frame[i] = 0
		}

		coeffs = fft.Coefficients(coeffs, frame)
		for k, c := range coeffs {
			re, im := real(c), imag(c)
			power[k] = re*re + im*im
		}

		mel := make([]float32, cfg.NumMels)
		for m, filter := range e.melBank {
			sum := 0.0
			for k, w := range filter {
				sum += w * power[k]
			}
			mel[m] = float32(math.Log(math.Max(sum, logFloor)))
		}
		features[t] = mel
	}
	return features
}
