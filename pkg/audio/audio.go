package audio

// Audio is a decoded mono signal.
type Audio struct {
	// Samples are normalized to [-1, 1].
	Samples []float64

	// SampleRate is the rate of Samples in Hz.
	SampleRate int
}

