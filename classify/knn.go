package classify

// K-Nearest Neighbours Classifier
//
// Distance-weighted KNN over labelled feature vectors:
//
// 1. Fit stores the training vectors and labels (optionally z-score
//    standardized, see FeatureScaler).
// 2. Predict computes the euclidean distance from each query vector to every
//    training vector and selects the k nearest.
// 3. Votes are weighted by 1 / (distance + epsilon) so closer neighbours
//    count for more; the label with the largest aggregate weight wins, with
//    ties broken by the lower average neighbour distance.
//
// k is clamped to the training-set size, so a small training partition never
// makes Predict fail.

import (
	"errors"
	"math"
	"sort"
)

// DefaultNeighbors is the fixed neighbour count used by the pipeline.
const DefaultNeighbors = 3

// KNN is a k-nearest neighbours Classifier.
type KNN struct {
	k           int
	standardize bool

	trainX [][]float64
	trainY []int
	scaler *FeatureScaler
}

type distancePair struct {
	index    int
	distance float64
}

// NewKNN creates an untrained KNN classifier with the given neighbour count.
func NewKNN(k int) *KNN {
	if k <= 0 {
		k = DefaultNeighbors
	}
	return &KNN{k: k}
}

// NewStandardizedKNN creates a KNN classifier that z-score standardizes
// features using moments fit on the training partition.
func NewStandardizedKNN(k int) *KNN {
	knn := NewKNN(k)
	knn.standardize = true
	return knn
}

// Fit stores the training data. The slices are copied so later mutation of
// the caller's dataset cannot shift stored neighbours.
func (knn *KNN) Fit(features [][]float64, labels []int) error {
	if len(features) == 0 {
		return errors.New("no training samples provided")
	}
	if len(features) != len(labels) {
		return errors.New("feature and label counts differ")
	}

	trainX := make([][]float64, len(features))
	for i, vector := range features {
		trainX[i] = append([]float64(nil), vector...)
	}
	trainY := append([]int(nil), labels...)

	if knn.standardize {
		scaler, err := NewFeatureScaler(trainX)
		if err != nil {
			return err
		}
		for i := range trainX {
			trainX[i] = scaler.Transform(trainX[i])
		}
		knn.scaler = scaler
	}

	knn.trainX = trainX
	knn.trainY = trainY
	return nil
}

// Predict classifies each query vector by distance-weighted vote among its
// k nearest training vectors.
func (knn *KNN) Predict(features [][]float64) ([]int, error) {
	if len(knn.trainX) == 0 {
		return nil, errors.New("classifier has not been fitted")
	}

	k := knn.k
	if k > len(knn.trainX) {
		k = len(knn.trainX)
	}

	predictions := make([]int, len(features))
	for qi, query := range features {
		if knn.scaler != nil {
			query = knn.scaler.Transform(query)
		}

		distances := make([]distancePair, len(knn.trainX))
		for i, stored := range knn.trainX {
			distances[i] = distancePair{index: i, distance: euclideanDistance(query, stored)}
		}
		sort.Slice(distances, func(i, j int) bool {
			return distances[i].distance < distances[j].distance
		})

		type labelStats struct {
			weightSum float64
			distSum   float64
			count     int
		}
		votes := make(map[int]*labelStats)
		for idx := 0; idx < k; idx++ {
			neighbor := distances[idx]
			weight := 1.0 / (neighbor.distance + 1e-9)
			label := knn.trainY[neighbor.index]
			stats, ok := votes[label]
			if !ok {
				stats = &labelStats{}
				votes[label] = stats
			}
			stats.weightSum += weight
			stats.distSum += neighbor.distance
			stats.count++
		}

		best := 0
		bestWeight := math.Inf(-1)
		bestAvgDist := math.Inf(1)
		for label, stats := range votes {
			avgDist := stats.distSum / float64(stats.count)
			switch {
			case stats.weightSum > bestWeight:
				best, bestWeight, bestAvgDist = label, stats.weightSum, avgDist
			case stats.weightSum == bestWeight && avgDist < bestAvgDist:
				best, bestAvgDist = label, avgDist
			case stats.weightSum == bestWeight && avgDist == bestAvgDist && label < best:
				best = label
			}
		}
		predictions[qi] = best
	}
	return predictions, nil
}

// euclideanDistance is tolerant of vectors of different lengths: the shared
// prefix contributes squared differences and any surplus dimensions
// contribute their squared magnitude.
func euclideanDistance(a, b []float64) float64 {
	minLength := len(a)
	if len(b) < minLength {
		minLength = len(b)
	}

	var sum float64
	for i := 0; i < minLength; i++ {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	for i := minLength; i < len(a); i++ {
		sum += a[i] * a[i]
	}
	for i := minLength; i < len(b); i++ {
		sum += b[i] * b[i]
	}
	return math.Sqrt(sum)
}

func init() {
	RegisterClassifier("knn", func() Classifier { return NewKNN(DefaultNeighbors) })
	RegisterClassifier("knn-standardized", func() Classifier { return NewStandardizedKNN(DefaultNeighbors) })
}
