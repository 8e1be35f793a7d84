package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"photoacoustics/classify"
	"photoacoustics/db"
	"photoacoustics/oxy"
	"photoacoustics/signal"
	"photoacoustics/utils"

	"github.com/joho/godotenv"
	"github.com/mdobak/go-xerrors"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	_ = godotenv.Load()

	var err error
	switch os.Args[1] {
	case "acquire":
		err = runAcquire(os.Args[2:])
	case "estimate":
		err = runEstimate(os.Args[2:])
	case "classify":
		err = runClassify(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		logger := utils.GetLogger()
		logger.ErrorContext(context.Background(), "pipeline failed",
			slog.String("pipeline", os.Args[1]), slog.Any("error", xerrors.New(err)))
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Expected 'acquire', 'estimate' or 'classify' subcommand")
	fmt.Println()
	fmt.Println("  acquire   simulate a photoacoustic pulse, report metrics, write signal.csv")
	fmt.Println("  estimate  estimate sO2 from two-wavelength amplitude files")
	fmt.Println("  classify  train and evaluate a classifier on labelled feature rows")
}

// runAcquire simulates a pulse, reports its metrics and writes the sample
// sequence to the signal file.
func runAcquire(args []string) error {
	acquireCmd := flag.NewFlagSet("acquire", flag.ExitOnError)
	numPoints := acquireCmd.Int("n", utils.GetEnvInt("PA_NUM_POINTS", signal.DefaultNumPoints), "Number of sample points")
	frequency := acquireCmd.Float64("freq", utils.GetEnvFloat("PA_FREQUENCY", signal.DefaultFrequency), "Sine frequency in Hz")
	decay := acquireCmd.Float64("decay", utils.GetEnvFloat("PA_DECAY", signal.DefaultDecay), "Exponential decay factor")
	outPath := acquireCmd.String("out", utils.GetEnv("PA_SIGNAL_PATH", "signal.csv"), "Output signal CSV path")
	acquireCmd.Parse(args)

	t, samples := signal.Acquire(*numPoints, *frequency, *decay)
	peak, energy := signal.Analyze(t, samples)
	dominant := signal.DominantFrequency(samples, float64(*numPoints))

	fmt.Printf("Peak amplitude: %g\n", peak)
	fmt.Printf("Average energy: %g\n", energy)
	if dominant > 0 {
		fmt.Printf("Dominant frequency: %.2f (normalised units)\n", dominant)
	}

	if err := signal.SaveSignalCSV(*outPath, t, samples); err != nil {
		return err
	}
	fmt.Printf("Signal written to %s\n", *outPath)

	return recordRun(&db.Run{
		Pipeline:      "acquire",
		PeakAmplitude: peak,
		AverageEnergy: energy,
		DominantHz:    dominant,
		Details: map[string]any{
			"numPoints": *numPoints,
			"frequency": *frequency,
			"decay":     *decay,
			"output":    *outPath,
		},
	})
}

// runEstimate maps two-wavelength amplitude files onto saturation estimates.
func runEstimate(args []string) error {
	estimateCmd := flag.NewFlagSet("estimate", flag.ExitOnError)
	wl1Path := estimateCmd.String("wl1", utils.GetEnv("PA_WL1_PATH", "data_wavelength1.csv"), "Wavelength 1 amplitude CSV")
	wl2Path := estimateCmd.String("wl2", utils.GetEnv("PA_WL2_PATH", "data_wavelength2.csv"), "Wavelength 2 amplitude CSV")
	outPath := estimateCmd.String("out", utils.GetEnv("PA_SO2_PATH", "estimated_so2.csv"), "Output estimate CSV path")
	rMin := estimateCmd.Float64("rmin", utils.GetEnvFloat("PA_R_MIN", oxy.DefaultRMin), "Ratio at 0% oxygenation")
	rMax := estimateCmd.Float64("rmax", utils.GetEnvFloat("PA_R_MAX", oxy.DefaultRMax), "Ratio at 100% oxygenation")
	estimateCmd.Parse(args)

	pa1, err := oxy.ReadAmplitudes(*wl1Path)
	if err != nil {
		return err
	}
	pa2, err := oxy.ReadAmplitudes(*wl2Path)
	if err != nil {
		return err
	}

	so2, err := oxy.EstimateSO2(pa1, pa2, *rMin, *rMax)
	if err != nil {
		return err
	}
	if err := oxy.WriteEstimates(so2, *outPath); err != nil {
		return err
	}
	fmt.Printf("Estimated sO2 values for %d points written to %s\n", len(so2), *outPath)

	return recordRun(&db.Run{
		Pipeline:      "estimate",
		EstimateCount: len(so2),
		Details: map[string]any{
			"wavelength1": *wl1Path,
			"wavelength2": *wl2Path,
			"output":      *outPath,
			"rMin":        *rMin,
			"rMax":        *rMax,
		},
	})
}

// runClassify loads labelled feature rows, splits them positionally, trains
// the configured classifier and reports test accuracy.
func runClassify(args []string) error {
	classifyCmd := flag.NewFlagSet("classify", flag.ExitOnError)
	dataPath := classifyCmd.String("data", utils.GetEnv("PA_FEATURES_PATH", "pa_features.csv"), "Labelled feature CSV")
	testRatio := classifyCmd.Float64("test-ratio", utils.GetEnvFloat("PA_TEST_RATIO", 0.2), "Fraction of rows held out for testing")
	algorithm := classifyCmd.String("algo", utils.GetEnv("PA_CLASSIFIER", classify.DefaultAlgorithm), "Registered classifier name")
	classifyCmd.Parse(args)

	features, labels, err := classify.LoadDataset(*dataPath)
	if err != nil {
		return err
	}
	if len(features) == 0 {
		return fmt.Errorf("no valid rows loaded from %s", *dataPath)
	}

	trainX, testX, trainY, testY := classify.SplitDataset(features, labels, *testRatio)

	model, err := classify.Train(*algorithm, trainX, trainY)
	if err != nil {
		return err
	}

	accuracy, err := classify.Evaluate(model, testX, testY)
	if err != nil {
		return err
	}
	fmt.Printf("Model accuracy: %.2f%%\n", accuracy*100)

	return recordRun(&db.Run{
		Pipeline: "classify",
		Accuracy: accuracy,
		Details: map[string]any{
			"dataset":   *dataPath,
			"algorithm": *algorithm,
			"testRatio": *testRatio,
			"trainRows": len(trainX),
			"testRows":  len(testX),
		},
	})
}

// recordRun appends a run summary to the SQLite run store when PA_DB_PATH
// is configured. A recording failure is logged but never fails the
// pipeline that produced the result.
func recordRun(run *db.Run) error {
	dbPath := utils.GetEnv("PA_DB_PATH", "")
	if dbPath == "" {
		return nil
	}

	client, err := db.NewSQLiteClient(dbPath)
	if err != nil {
		log.Printf("WARNING: run store unavailable: %v", err)
		return nil
	}
	defer client.Close()

	if err := client.SaveRun(run); err != nil {
		log.Printf("WARNING: failed to record run: %v", err)
	}
	return nil
}
