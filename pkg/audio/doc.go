// Package audio holds the decoded signal type shared by the audio
// sub-packages used by dvector:
//
//   - wav, flac, mp3, ogg: decoding files to mono float samples
//   - resampler: sample rate conversion
//   - fbank: log mel filterbank features
//
// A typical chain reads a file, converts it to the feature sample rate and
// extracts frames:
//
//	a, _ := flac.ReadFile(path)
//	pcm, _ := resampler.Resample(a.Samples, a.SampleRate, 16000)
//	frames := fbank.New(fbank.DefaultConfig()).Extract(toFloat32(pcm))
package audio
