package resampler

import (
	"errors"
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"
)

// ErrRate is returned for non-positive sample rates.
var ErrRate = errors.New("resampler: invalid sample rate")

// Resample converts mono samples from srcRate to dstRate. When the rates are
// equal the input is returned unchanged. The filter tail is flushed and the
// result is cut to OutputLen samples. Samples are expected in [-1, 1]; the
// output is clipped to that range.
func Resample(samples []float64, srcRate, dstRate int) ([]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrRate, srcRate, dstRate)
	}
	if srcRate == dstRate || len(samples) == 0 {
		return samples, nil
	}

	r, err := resampling.New(&resampling.Config{
		InputRate:  float64(srcRate),
		OutputRate: float64(dstRate),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	out, err := r.Process(samples)
	if err != nil {
		return nil, fmt.Errorf("resample error: %w", err)
	}
	tail, err := r.Flush()
	if err != nil {
		return nil, fmt.Errorf("resample flush: %w", err)
	}
	out = append(out, tail...)
	if n := OutputLen(len(samples), srcRate, dstRate); len(out) > n {
		out = out[:n]
	}
	for i, s := range out {
		if s > 1 {
			out[i] = 1
		} else if s < -1 {
			out[i] = -1
		}
	}
	return out, nil
}

// OutputLen returns the nominal number of samples a signal of n samples has
// after conversion from srcRate to dstRate.
func OutputLen(n, srcRate, dstRate int) int {
	return int(int64(n) * int64(dstRate) / int64(srcRate))
}
