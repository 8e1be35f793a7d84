package classify

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadDataset reads labelled feature rows from a CSV file. Each row carries
// numeric features with an integer class label in the last field. Rows with
// non-numeric fields, including malformed rows, are dropped silently; no
// count of dropped rows is kept.
func LoadDataset(path string) (features [][]float64, labels []int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	features = make([][]float64, 0, len(records))
	labels = make([]int, 0, len(records))
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		labelField := record[len(record)-1]
		label, err := strconv.Atoi(labelField)
		if err != nil {
			continue
		}

		vector := make([]float64, 0, len(record)-1)
		valid := true
		for _, field := range record[:len(record)-1] {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				valid = false
				break
			}
			vector = append(vector, value)
		}
		if !valid {
			continue
		}

		features = append(features, vector)
		labels = append(labels, label)
	}
	return features, labels, nil
}

// SplitDataset partitions a labelled dataset into train and test sets. The
// split is purely positional: testSize = floor(total * testRatio), the last
// testSize rows become the test partition and the prefix becomes train. A
// zero test size keeps the whole input as the train partition.
func SplitDataset(features [][]float64, labels []int, testRatio float64) (trainX, testX [][]float64, trainY, testY []int) {
	total := len(features)
	testSize := int(float64(total) * testRatio)

	if testSize <= 0 {
		return features, [][]float64{}, labels, []int{}
	}

	cut := total - testSize
	return features[:cut], features[cut:], labels[:cut], labels[cut:]
}
