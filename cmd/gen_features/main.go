package main

// gen_features builds a synthetic labelled feature dataset for the
// classification pipeline. Each row is derived from a simulated
// photoacoustic pulse with class-dependent oscillation and decay plus
// additive noise, reduced to a compact (peak, energy, dominant frequency)
// descriptor with the class label in the last column.

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"

	"photoacoustics/signal"
)

// classProfile describes how pulses of one class are synthesized.
type classProfile struct {
	label     int
	frequency float64
	decay     float64
}

var profiles = []classProfile{
	{label: 0, frequency: 80.0, decay: 2.0},
	{label: 1, frequency: 200.0, decay: 6.0},
}

func main() {
	outFlag := flag.String("out", "pa_features.csv", "Output dataset CSV path")
	perClass := flag.Int("per-class", 40, "Rows to generate per class")
	numPoints := flag.Int("n", 1024, "Sample points per simulated pulse")
	noise := flag.Float64("noise", 0.05, "Additive noise amplitude")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	if *perClass <= 0 {
		log.Fatalf("per-class must be positive, got %d", *perClass)
	}

	rng := rand.New(rand.NewSource(*seed))

	file, err := os.Create(*outFlag)
	if err != nil {
		log.Fatalf("failed to create %s: %v", *outFlag, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	rows := 0
	for _, profile := range profiles {
		for i := 0; i < *perClass; i++ {
			// Jitter the profile so rows within a class are not identical.
			frequency := profile.frequency * (1 + 0.1*rng.NormFloat64())
			decay := profile.decay * (1 + 0.1*rng.NormFloat64())

			t, samples := signal.Acquire(*numPoints, frequency, decay)
			for j := range samples {
				samples[j] += *noise * rng.NormFloat64()
			}

			peak, energy := signal.Analyze(t, samples)
			dominant := signal.DominantFrequency(samples, float64(*numPoints))

			record := []string{
				strconv.FormatFloat(peak, 'g', -1, 64),
				strconv.FormatFloat(energy, 'g', -1, 64),
				strconv.FormatFloat(dominant, 'g', -1, 64),
				strconv.Itoa(profile.label),
			}
			if err := writer.Write(record); err != nil {
				log.Fatalf("failed to write row: %v", err)
			}
			rows++
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Fatalf("failed to flush %s: %v", *outFlag, err)
	}

	fmt.Printf("Wrote %d labelled rows (%d classes) to %s\n", rows, len(profiles), *outFlag)
}
