package signal

// Photoacoustic Pulse Simulation
//
// This package synthesizes and analyses photoacoustic pulse waveforms.
// A simulated pulse is a sinusoid under an exponential decay envelope:
//
//	signal[i] = sin(2π · frequency · t[i]) · exp(-decay · t[i] · numPoints)
//
// with the time axis normalised to the unit interval, t[i] = i/numPoints.
// The decay exponent deliberately multiplies t[i] by numPoints so that the
// envelope argument tracks the sample index; the expression is kept in this
// exact form because simplifying it changes the rounding of the envelope.

import "math"

// Default acquisition parameters for a simulated pulse.
const (
	DefaultNumPoints = 1000
	DefaultFrequency = 100000.0
	DefaultDecay     = 0.005
)

// Acquire simulates acquisition of a decaying sine wave representing a
// photoacoustic pulse. It returns the time axis and the sample values,
// always of equal length. numPoints == 0 yields two empty slices.
func Acquire(numPoints int, frequency, decay float64) (t, samples []float64) {
	if numPoints <= 0 {
		return []float64{}, []float64{}
	}

	t = make([]float64, numPoints)
	samples = make([]float64, numPoints)
	n := float64(numPoints)

	for i := 0; i < numPoints; i++ {
		ti := float64(i) / n
		t[i] = ti
		samples[i] = math.Sin(2*math.Pi*frequency*ti) * math.Exp(-decay*ti*n)
	}

	return t, samples
}
