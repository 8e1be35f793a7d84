package oxy

// Oxygen Saturation Estimation
//
// This package estimates tissue oxygen saturation (sO₂) from photoacoustic
// amplitudes measured at two wavelengths using a ratio-of-ratios approach:
// the per-sample amplitude ratio is mapped linearly onto a saturation
// fraction and clamped to [0, 1]. The calibration bounds rMin and rMax are
// the expected ratios for fully deoxygenated and fully oxygenated tissue.
// In real systems these bounds come from reference phantoms or blood
// samples; the defaults here are teaching values.

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"photoacoustics/utils"
)

// Default ratio calibration bounds.
const (
	DefaultRMin = 0.4
	DefaultRMax = 1.2
)

// ReadAmplitudes reads photoacoustic amplitudes from a CSV file. Each line
// is expected to carry a single numeric value in its first field; empty
// lines and lines that do not parse are skipped silently.
func ReadAmplitudes(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open amplitude file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read amplitude file: %w", err)
	}

	amplitudes := make([]float64, 0, len(records))
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		value, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		amplitudes = append(amplitudes, value)
	}
	return amplitudes, nil
}

// EstimateSO2 maps paired two-wavelength amplitudes onto saturation
// fractions. Pairing is positional up to the shorter input; pairs whose
// second-wavelength amplitude is exactly zero are dropped (the output may
// be shorter than the input). A degenerate calibration with rMax == rMin
// is a caller configuration error and is rejected outright.
func EstimateSO2(pa1, pa2 []float64, rMin, rMax float64) ([]float64, error) {
	if rMax == rMin {
		return nil, fmt.Errorf("degenerate ratio calibration: rMin == rMax == %g", rMin)
	}

	n := len(pa1)
	if len(pa2) < n {
		n = len(pa2)
	}

	so2 := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if pa2[i] == 0 {
			continue
		}
		r := pa1[i] / pa2[i]
		s := (r - rMin) / (rMax - rMin)
		if s < 0.0 {
			s = 0.0
		}
		if s > 1.0 {
			s = 1.0
		}
		so2 = append(so2, s)
	}
	return so2, nil
}

// WriteEstimates writes saturation estimates to a CSV file, one value per
// line with no header.
func WriteEstimates(estimates []float64, path string) error {
	if err := utils.CreateFolder(filepath.Dir(path)); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create estimate file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for i, s := range estimates {
		if err := writer.Write([]string{strconv.FormatFloat(s, 'g', -1, 64)}); err != nil {
			return fmt.Errorf("failed to write estimate %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush estimate file: %w", err)
	}
	return nil
}
