package signal

import (
	"math"
	"testing"
)

func TestAnalyzeEmptySignal(t *testing.T) {
	t.Parallel()

	peak, energy := Analyze(nil, nil)
	if peak != 0.0 || energy != 0.0 {
		t.Fatalf("expected (0, 0) for empty signal, got (%f, %f)", peak, energy)
	}
}

func TestAnalyzeSinglePoint(t *testing.T) {
	t.Parallel()

	peak, energy := Analyze([]float64{0.0}, []float64{0.5})
	if peak != 0.5 {
		t.Fatalf("expected peak 0.5, got %f", peak)
	}
	if energy != 0.25 {
		t.Fatalf("expected energy 0.25, got %f", energy)
	}
}

func TestAnalyzePeakUsesAbsoluteValue(t *testing.T) {
	t.Parallel()

	samples := []float64{0.1, -1.2, 0.3, 0.8}
	peak, energy := Analyze(nil, samples)
	if peak != 1.2 {
		t.Fatalf("expected peak 1.2, got %f", peak)
	}

	var sumSq float64
	for _, s := range samples {
		sumSq += s * s
	}
	want := sumSq / float64(len(samples))
	if math.Abs(energy-want) > 1e-12 {
		t.Fatalf("expected energy %g, got %g", want, energy)
	}
}

func TestAnalyzeBoundsPeakFromAbove(t *testing.T) {
	t.Parallel()

	_, samples := Acquire(512, 1000.0, 0.02)
	peak, energy := Analyze(nil, samples)
	if peak < 0 || energy < 0 {
		t.Fatalf("metrics must be non-negative, got (%f, %f)", peak, energy)
	}
	for i, s := range samples {
		if math.Abs(s) > peak {
			t.Fatalf("sample %d (|%f|) exceeds reported peak %f", i, s, peak)
		}
	}
}
