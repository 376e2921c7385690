// Package naivebayes implements a TF-IDF multinomial naive Bayes text
// classifier used as the statistical site categorizer.
package naivebayes

import (
	"math"
	"slices"
	"time"

	"github.com/fwojciec/sitegraph"
)

var _ sitegraph.Predictor = (*Model)(nil)

// Sample is one labeled training or evaluation text.
type Sample struct {
	Text     string
	Category sitegraph.Category
}

// Options controls vocabulary selection and smoothing.
type Options struct {
	// MinDF drops terms found in fewer documents.
	MinDF int

	// MaxDF drops terms found in a larger proportion of documents.
	MaxDF float64

	// Alpha is the additive smoothing parameter.
	Alpha float64
}

// DefaultOptions returns the options the shipped model is trained with.
func DefaultOptions() Options {
	return Options{MinDF: 2, MaxDF: 0.9, Alpha: 1}
}

// Model is a trained classifier. It is read-only after training and safe
// for concurrent use.
type Model struct {
	Classes    []sitegraph.Category
	Vocabulary map[string]int
	IDF        []float64

	// ClassLogPrior and FeatureLogProb are indexed by class, then term.
	ClassLogPrior  []float64
	FeatureLogProb [][]float64

	Options   Options
	TrainedAt time.Time
}

// Train fits a model on samples. Term weights are raw counts scaled by the
// smoothed inverse document frequency and normalized to unit length.
func Train(samples []Sample, opts Options) (*Model, error) {
	if len(samples) == 0 {
		return nil, sitegraph.Errorf(sitegraph.EINVALID, "no training samples")
	}
	if opts.Alpha <= 0 {
		return nil, sitegraph.Errorf(sitegraph.EINVALID, "alpha must be positive")
	}

	counts := make([]map[string]int, len(samples))
	df := map[string]int{}
	for i, s := range samples {
		counts[i] = termCounts(s.Text)
		for term := range counts[i] {
			df[term]++
		}
	}

	n := len(samples)
	maxDocs := opts.MaxDF * float64(n)
	var terms []string
	for term, d := range df {
		if d >= opts.MinDF && float64(d) <= maxDocs {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return nil, sitegraph.Errorf(sitegraph.EINVALID, "empty vocabulary after document frequency filtering")
	}
	slices.Sort(terms)

	m := &Model{
		Vocabulary: make(map[string]int, len(terms)),
		IDF:        make([]float64, len(terms)),
		Options:    opts,
		TrainedAt:  time.Now().UTC(),
	}
	for i, term := range terms {
		m.Vocabulary[term] = i
		m.IDF[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	classIndex := map[sitegraph.Category]int{}
	for _, s := range samples {
		if _, ok := classIndex[s.Category]; !ok {
			classIndex[s.Category] = 0
			m.Classes = append(m.Classes, s.Category)
		}
	}
	slices.Sort(m.Classes)
	for i, c := range m.Classes {
		classIndex[c] = i
	}

	classDocs := make([]int, len(m.Classes))
	featureCount := make([][]float64, len(m.Classes))
	for i := range featureCount {
		featureCount[i] = make([]float64, len(terms))
	}
	for i, s := range samples {
		ci := classIndex[s.Category]
		classDocs[ci]++
		for _, f := range m.vectorize(counts[i]) {
			featureCount[ci][f.term] += f.weight
		}
	}

	m.ClassLogPrior = make([]float64, len(m.Classes))
	m.FeatureLogProb = make([][]float64, len(m.Classes))
	v := float64(len(terms))
	for ci := range m.Classes {
		m.ClassLogPrior[ci] = math.Log(float64(classDocs[ci]) / float64(n))

		total := 0.0
		for _, c := range featureCount[ci] {
			total += c
		}
		denom := math.Log(total + opts.Alpha*v)
		m.FeatureLogProb[ci] = make([]float64, len(terms))
		for t, c := range featureCount[ci] {
			m.FeatureLogProb[ci][t] = math.Log(c+opts.Alpha) - denom
		}
	}
	return m, nil
}

// Predict returns the posterior probability of every class, sorted by
// descending probability. Ties keep class order.
func (m *Model) Predict(text string) []sitegraph.CategoryProbability {
	x := m.vectorize(termCounts(text))

	jll := make([]float64, len(m.Classes))
	for ci := range m.Classes {
		jll[ci] = m.ClassLogPrior[ci]
		for _, f := range x {
			jll[ci] += f.weight * m.FeatureLogProb[ci][f.term]
		}
	}

	maxLL := slices.Max(jll)
	sum := 0.0
	for _, l := range jll {
		sum += math.Exp(l - maxLL)
	}
	logNorm := maxLL + math.Log(sum)

	probs := make([]sitegraph.CategoryProbability, len(m.Classes))
	for ci, c := range m.Classes {
		probs[ci] = sitegraph.CategoryProbability{Category: c, Probability: math.Exp(jll[ci] - logNorm)}
	}
	slices.SortStableFunc(probs, func(a, b sitegraph.CategoryProbability) int {
		switch {
		case a.Probability > b.Probability:
			return -1
		case a.Probability < b.Probability:
			return 1
		}
		return 0
	})
	return probs
}

// feature is one non-zero entry of a document vector.
type feature struct {
	term   int
	weight float64
}

// vectorize returns the unit-length TF-IDF vector of counts over the model
// vocabulary, ordered by term index.
func (m *Model) vectorize(counts map[string]int) []feature {
	x := make([]feature, 0, len(counts))
	for term, c := range counts {
		if t, ok := m.Vocabulary[term]; ok {
			x = append(x, feature{term: t, weight: float64(c) * m.IDF[t]})
		}
	}
	slices.SortFunc(x, func(a, b feature) int { return a.term - b.term })

	norm := 0.0
	for _, f := range x {
		norm += f.weight * f.weight
	}
	if norm == 0 {
		return x
	}
	norm = math.Sqrt(norm)
	for i := range x {
		x[i].weight /= norm
	}
	return x
}

func termCounts(text string) map[string]int {
	counts := map[string]int{}
	for _, term := range Terms(Tokenize(text)) {
		counts[term]++
	}
	return counts
}

// Evaluation summarizes a model's accuracy on labeled samples.
type Evaluation struct {
	Samples  int
	Correct  int
	Accuracy float64
}

// Evaluate scores the model's top label against each sample's category.
func Evaluate(m *Model, samples []Sample) Evaluation {
	e := Evaluation{Samples: len(samples)}
	for _, s := range samples {
		if probs := m.Predict(s.Text); len(probs) > 0 && probs[0].Category == s.Category {
			e.Correct++
		}
	}
	if e.Samples > 0 {
		e.Accuracy = float64(e.Correct) / float64(e.Samples)
	}
	return e
}
