package mock

import "github.com/fwojciec/sitegraph"

var _ sitegraph.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of sitegraph.Classifier.
type Classifier struct {
	ClassifyFn func(text string) *sitegraph.Classification
}

func (c *Classifier) Classify(text string) *sitegraph.Classification {
	return c.ClassifyFn(text)
}

var _ sitegraph.Predictor = (*Predictor)(nil)

// Predictor is a mock implementation of sitegraph.Predictor.
type Predictor struct {
	PredictFn func(text string) []sitegraph.CategoryProbability
}

func (p *Predictor) Predict(text string) []sitegraph.CategoryProbability {
	return p.PredictFn(text)
}
