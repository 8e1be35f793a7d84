package oxy

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEstimateSO2ClampsToUnitInterval(t *testing.T) {
	t.Parallel()

	pa1 := []float64{0.1, 0.8, 2.0, 1.0}
	pa2 := []float64{1.0, 1.0, 1.0, 1.0}

	so2, err := EstimateSO2(pa1, pa2, DefaultRMin, DefaultRMax)
	if err != nil {
		t.Fatalf("EstimateSO2 returned error: %v", err)
	}
	if len(so2) != len(pa1) {
		t.Fatalf("expected %d estimates, got %d", len(pa1), len(so2))
	}
	for i, s := range so2 {
		if s < 0.0 || s > 1.0 {
			t.Fatalf("estimate %d out of range: %f", i, s)
		}
	}

	// Ratio 0.8 sits exactly halfway between the default bounds.
	if math.Abs(so2[1]-0.5) > 1e-12 {
		t.Fatalf("expected midpoint saturation 0.5, got %f", so2[1])
	}
	if so2[0] != 0.0 {
		t.Fatalf("expected below-range ratio to clamp to 0, got %f", so2[0])
	}
	if so2[2] != 1.0 {
		t.Fatalf("expected above-range ratio to clamp to 1, got %f", so2[2])
	}
}

func TestEstimateSO2DropsZeroDivisorPairs(t *testing.T) {
	t.Parallel()

	so2, err := EstimateSO2([]float64{1.0}, []float64{0.0}, DefaultRMin, DefaultRMax)
	if err != nil {
		t.Fatalf("EstimateSO2 returned error: %v", err)
	}
	if len(so2) != 0 {
		t.Fatalf("expected zero-divisor pair to be dropped, got %v", so2)
	}
}

func TestEstimateSO2PairsToShorterInput(t *testing.T) {
	t.Parallel()

	so2, err := EstimateSO2([]float64{0.8, 0.8, 0.8}, []float64{1.0}, DefaultRMin, DefaultRMax)
	if err != nil {
		t.Fatalf("EstimateSO2 returned error: %v", err)
	}
	if len(so2) != 1 {
		t.Fatalf("expected trailing unmatched amplitudes to be dropped, got %d estimates", len(so2))
	}
}

func TestEstimateSO2RejectsDegenerateCalibration(t *testing.T) {
	t.Parallel()

	if _, err := EstimateSO2([]float64{1.0}, []float64{1.0}, 0.7, 0.7); err == nil {
		t.Fatal("expected error for rMin == rMax")
	}
}

func TestReadAmplitudesSkipsMalformedLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wavelength1.csv")
	content := "0.45\nnot-a-number\n\n0.62\n0.31,extra\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	amplitudes, err := ReadAmplitudes(path)
	if err != nil {
		t.Fatalf("ReadAmplitudes failed: %v", err)
	}
	want := []float64{0.45, 0.62, 0.31}
	if len(amplitudes) != len(want) {
		t.Fatalf("expected %d amplitudes, got %d (%v)", len(want), len(amplitudes), amplitudes)
	}
	for i := range want {
		if amplitudes[i] != want[i] {
			t.Fatalf("amplitude %d: got %f, want %f", i, amplitudes[i], want[i])
		}
	}
}

func TestWriteEstimatesRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "estimated_so2.csv")
	estimates := []float64{0.0, 0.5, 1.0}
	if err := WriteEstimates(estimates, path); err != nil {
		t.Fatalf("WriteEstimates failed: %v", err)
	}

	got, err := ReadAmplitudes(path)
	if err != nil {
		t.Fatalf("reading estimates back failed: %v", err)
	}
	if len(got) != len(estimates) {
		t.Fatalf("expected %d values, got %d", len(estimates), len(got))
	}
	for i := range estimates {
		if got[i] != estimates[i] {
			t.Fatalf("estimate %d: got %f, want %f", i, got[i], estimates[i])
		}
	}
}
