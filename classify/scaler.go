package classify

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// FeatureScaler standardizes features across a dataset using z-score
// normalization: each feature dimension is transformed to mean=0, std=1.
// Without scaling, a single large-magnitude dimension can dominate the
// distance metric and make otherwise distinct samples indistinguishable.
type FeatureScaler struct {
	Mean   []float64 `json:"mean"`
	Stddev []float64 `json:"stddev"`
}

// NewFeatureScaler computes per-dimension scaling moments from a training
// matrix. All rows must share the same dimensionality.
func NewFeatureScaler(features [][]float64) (*FeatureScaler, error) {
	if len(features) == 0 {
		return nil, errors.New("no samples provided")
	}
	featureCount := len(features[0])
	if featureCount == 0 {
		return nil, errors.New("samples have no features")
	}
	for _, row := range features {
		if len(row) != featureCount {
			return nil, errors.New("inconsistent feature dimensions")
		}
	}

	mean := make([]float64, featureCount)
	stddev := make([]float64, featureCount)
	column := make([]float64, len(features))
	for dim := 0; dim < featureCount; dim++ {
		for i, row := range features {
			column[i] = row[dim]
		}
		m, s := stat.MeanStdDev(column, nil)
		// Guard constant dimensions against division by zero.
		if s < 1e-10 || len(features) < 2 {
			s = 1.0
		}
		mean[dim] = m
		stddev[dim] = s
	}

	return &FeatureScaler{Mean: mean, Stddev: stddev}, nil
}

// Transform applies z-score standardization to a feature vector. Vectors of
// a different dimensionality are returned unchanged.
func (fs *FeatureScaler) Transform(features []float64) []float64 {
	if len(features) != len(fs.Mean) {
		return features
	}

	scaled := make([]float64, len(features))
	for i, value := range features {
		scaled[i] = (value - fs.Mean[i]) / fs.Stddev[i]
	}
	return scaled
}
