package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metrics summarises a sample sequence.
type Metrics struct {
	PeakAmplitude float64 `json:"peakAmplitude"`
	AverageEnergy float64 `json:"averageEnergy"`
}

// Analyze computes the peak amplitude (max |x|) and average energy
// (mean of x²) of a sample sequence. The time axis is accepted for
// interface compatibility but does not participate in the computation.
// An empty sequence yields (0, 0) rather than an error.
func Analyze(_, samples []float64) (peak, energy float64) {
	if len(samples) == 0 {
		return 0.0, 0.0
	}

	peak = floats.Norm(samples, math.Inf(1))
	energy = floats.Dot(samples, samples) / float64(len(samples))
	return peak, energy
}

// AnalyzeMetrics is Analyze packaged into a Metrics value.
func AnalyzeMetrics(t, samples []float64) Metrics {
	peak, energy := Analyze(t, samples)
	return Metrics{PeakAmplitude: peak, AverageEnergy: energy}
}
