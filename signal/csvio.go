package signal

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"photoacoustics/utils"
)

// SaveSignalCSV writes a sample sequence to a CSV file with a "time,signal"
// header followed by one (t, amplitude) pair per line. Values are formatted
// with full float64 precision so a written file reads back exactly.
func SaveSignalCSV(path string, t, samples []float64) error {
	if len(t) != len(samples) {
		return fmt.Errorf("time and signal length mismatch: %d vs %d", len(t), len(samples))
	}

	if err := utils.CreateFolder(filepath.Dir(path)); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create signal file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"time", "signal"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range t {
		record := []string{
			strconv.FormatFloat(t[i], 'g', -1, 64),
			strconv.FormatFloat(samples[i], 'g', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush signal file: %w", err)
	}
	return nil
}

// LoadSignalCSV reads a sample sequence previously written by SaveSignalCSV.
// The header row and any rows that do not parse as a numeric pair are
// skipped silently.
func LoadSignalCSV(path string) (t, samples []float64, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open signal file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read signal file: %w", err)
	}

	t = make([]float64, 0, len(records))
	samples = make([]float64, 0, len(records))
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		ti, errT := strconv.ParseFloat(record[0], 64)
		si, errS := strconv.ParseFloat(record[1], 64)
		if errT != nil || errS != nil {
			continue
		}
		t = append(t, ti)
		samples = append(samples, si)
	}
	return t, samples, nil
}
