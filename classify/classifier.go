package classify

import (
	"fmt"
	"sort"
	"strings"
)

// Classifier is the capability set a classification backend must provide.
// Any implementation conforming to Fit/Predict may be registered and used
// by the pipeline; nothing else about the backend is assumed.
type Classifier interface {
	Fit(features [][]float64, labels []int) error
	Predict(features [][]float64) ([]int, error)
}

// DefaultAlgorithm is the classifier used when none is named explicitly.
const DefaultAlgorithm = "knn"

var classifierFactories = map[string]func() Classifier{}

// RegisterClassifier makes a classifier implementation available under the
// given name. Later registrations under the same name replace earlier ones.
func RegisterClassifier(name string, factory func() Classifier) {
	classifierFactories[name] = factory
}

// NewClassifier instantiates a registered classifier implementation. An
// unknown name is a missing-dependency error, reported with the available
// implementations so the caller can act on it.
func NewClassifier(name string) (Classifier, error) {
	factory, ok := classifierFactories[name]
	if !ok {
		available := make([]string, 0, len(classifierFactories))
		for registered := range classifierFactories {
			available = append(available, registered)
		}
		sort.Strings(available)
		if len(available) == 0 {
			return nil, fmt.Errorf("no classifier implementation registered; cannot train %q", name)
		}
		return nil, fmt.Errorf("no classifier implementation registered under %q (available: %s)",
			name, strings.Join(available, ", "))
	}
	return factory(), nil
}

// Train instantiates the named classifier and fits it to the training
// partition.
func Train(algorithm string, trainX [][]float64, trainY []int) (Classifier, error) {
	model, err := NewClassifier(algorithm)
	if err != nil {
		return nil, err
	}
	if err := model.Fit(trainX, trainY); err != nil {
		return nil, fmt.Errorf("failed to fit %s classifier: %w", algorithm, err)
	}
	return model, nil
}

// Evaluate returns the exact-match accuracy of a model over the test
// partition. An empty test partition yields 0.0 regardless of the model.
func Evaluate(model Classifier, testX [][]float64, testY []int) (float64, error) {
	if len(testX) == 0 {
		return 0.0, nil
	}

	predictions, err := model.Predict(testX)
	if err != nil {
		return 0.0, fmt.Errorf("prediction failed: %w", err)
	}

	n := len(predictions)
	if len(testY) < n {
		n = len(testY)
	}
	correct := 0
	for i := 0; i < n; i++ {
		if predictions[i] == testY[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(testY)), nil
}
