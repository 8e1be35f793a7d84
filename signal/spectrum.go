package signal

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// DominantFrequency estimates the strongest frequency component of a sample
// sequence. The samples are Hann-windowed to limit spectral leakage, the
// magnitude spectrum is computed over the first half of the FFT, and the
// bin with the largest magnitude (DC excluded) is mapped back to Hz using
// the supplied sample rate. Returns 0 for sequences too short to resolve
// a non-DC bin or for a non-positive sample rate.
func DominantFrequency(samples []float64, sampleRate float64) float64 {
	if len(samples) < 2 || sampleRate <= 0 {
		return 0.0
	}

	windowed := make([]float64, len(samples))
	copy(windowed, samples)
	window.Apply(windowed, window.Hann)

	spectrum := fft.FFTReal(windowed)
	half := len(spectrum) / 2
	if half < 2 {
		return 0.0
	}

	bestBin := 1
	bestMag := cmplx.Abs(spectrum[1])
	for bin := 2; bin < half; bin++ {
		if mag := cmplx.Abs(spectrum[bin]); mag > bestMag {
			bestMag = mag
			bestBin = bin
		}
	}

	return float64(bestBin) * sampleRate / float64(len(samples))
}
