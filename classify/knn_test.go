package classify

import (
	"testing"
)

func clusteredTrainingSet() ([][]float64, []int) {
	features := [][]float64{
		{0.0, 0.1}, {0.1, 0.0}, {0.05, 0.05},
		{1.0, 0.9}, {0.9, 1.0}, {0.95, 0.95},
	}
	labels := []int{0, 0, 0, 1, 1, 1}
	return features, labels
}

func TestKNNPredictPrefersNearestCluster(t *testing.T) {
	t.Parallel()

	features, labels := clusteredTrainingSet()
	knn := NewKNN(3)
	if err := knn.Fit(features, labels); err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	predictions, err := knn.Predict([][]float64{{0.02, 0.03}, {0.97, 0.92}})
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if predictions[0] != 0 {
		t.Fatalf("expected query near origin to classify as 0, got %d", predictions[0])
	}
	if predictions[1] != 1 {
		t.Fatalf("expected query near (1,1) to classify as 1, got %d", predictions[1])
	}
}

func TestKNNClampsNeighbourCount(t *testing.T) {
	t.Parallel()

	knn := NewKNN(10)
	if err := knn.Fit([][]float64{{0.0}, {1.0}}, []int{0, 1}); err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	predictions, err := knn.Predict([][]float64{{0.1}})
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if predictions[0] != 0 {
		t.Fatalf("expected closer neighbour to win, got %d", predictions[0])
	}
}

func TestKNNFitValidation(t *testing.T) {
	t.Parallel()

	if err := NewKNN(3).Fit(nil, nil); err == nil {
		t.Fatal("expected error fitting on empty training set")
	}
	if err := NewKNN(3).Fit([][]float64{{1.0}}, []int{0, 1}); err == nil {
		t.Fatal("expected error for mismatched feature and label counts")
	}
}

func TestKNNPredictBeforeFit(t *testing.T) {
	t.Parallel()

	if _, err := NewKNN(3).Predict([][]float64{{0.5}}); err == nil {
		t.Fatal("expected error predicting before Fit")
	}
}

func TestStandardizedKNNHandlesDominantDimension(t *testing.T) {
	t.Parallel()

	// The second dimension carries the class signal but is three orders of
	// magnitude smaller than the first; raw euclidean distance ignores it.
	features := [][]float64{
		{1000.0, 0.001}, {1010.0, 0.002}, {990.0, 0.001},
		{1005.0, 0.101}, {995.0, 0.102}, {1000.0, 0.103},
	}
	labels := []int{0, 0, 0, 1, 1, 1}

	knn := NewStandardizedKNN(3)
	if err := knn.Fit(features, labels); err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	predictions, err := knn.Predict([][]float64{{1002.0, 0.1}})
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if predictions[0] != 1 {
		t.Fatalf("expected standardized classifier to honour the small dimension, got %d", predictions[0])
	}
}

func TestEuclideanDistanceRaggedVectors(t *testing.T) {
	t.Parallel()

	got := euclideanDistance([]float64{3.0}, []float64{0.0, 4.0})
	if got != 5.0 {
		t.Fatalf("expected surplus dimensions to contribute magnitude, got %f", got)
	}
}
