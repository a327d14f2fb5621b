// Package resampler converts mono float64 audio between sample rates.
//
// Conversion is done in one pass over an in-memory signal with a pure Go
// polyphase resampler, so no cgo or system libraries are needed.
//
// Example usage:
//
//	out, err := resampler.Resample(samples, 44100, 16000)
//	if err != nil {
//	    return err
//	}
package resampler
