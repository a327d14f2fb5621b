package fbank

import "math"

// hammingWindow generates a symmetric Hamming window of the given length.
func hammingWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

// hzToMel converts frequency in Hz to the HTK mel scale.
func hzToMel(hz float64) float64 {
	return 1127.0 * math.Log(1.0+hz/700.0)
}

// melToHz converts HTK mel back to Hz.
func melToHz(mel float64) float64 {
	return 700.0 * (math.Exp(mel/1127.0) - 1.0)
}

// melFilterBank builds triangular filters over [lowFreq, highFreq], evaluated
// at the mel position of each FFT bin's center frequency rather than snapped
// to whole bins. Returns [numMels][fftSize/2+1].
func melFilterBank(numMels, fftSize, sampleRate int, lowFreq, highFreq float64) [][]float64 {
	halfFFT := fftSize/2 + 1
	lowMel := hzToMel(lowFreq)
	highMel := hzToMel(highFreq)
	delta := (highMel - lowMel) / float64(numMels+1)
	binHz := float64(sampleRate) / float64(fftSize)

	binMel := make([]float64, halfFFT)
	for k := range binMel {
		binMel[k] = hzToMel(float64(k) * binHz)
	}

	bank := make([][]float64, numMels)
	for m := range bank {
		left := lowMel + float64(m)*delta
		center := left + delta
		right := center + delta

		filter := make([]float64, halfFFT)
		for k, mel := range binMel {
			switch {
			case mel > left && mel <= center:
				filter[k] = (mel - left) / (center - left)
			case mel > center && mel < right:
				filter[k] = (right - mel) / (right - center)
			}
		}
		bank[m] = filter
	}
	return bank
}
