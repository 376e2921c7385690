package classify

import (
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/fwojciec/sitegraph"
)

// Arbitration defaults.
const (
	// MinTextLength is the text length in characters the statistical
	// model needs to run; shorter text is classified by the heuristic.
	MinTextLength = 100

	// DefaultConfidenceThreshold is the top-label probability below which a
	// disagreeing heuristic label wins.
	DefaultConfidenceThreshold = 0.4
)

var _ sitegraph.Classifier = (*Classifier)(nil)

var defaultHeuristic = sync.OnceValue(NewHeuristic)

// Classifier combines a statistical model with the keyword heuristic.
// It is safe for concurrent use when Model is.
type Classifier struct {
	// Model is optional. When nil every request uses the heuristic.
	Model sitegraph.Predictor

	// Heuristic defaults to the built-in keyword table.
	Heuristic *Heuristic

	MinTextLength       int
	ConfidenceThreshold float64

	// Logger is optional.
	Logger *slog.Logger
}

// NewClassifier returns a Classifier with default thresholds. model may
// be nil.
func NewClassifier(model sitegraph.Predictor) *Classifier {
	return &Classifier{
		Model:               model,
		Heuristic:           NewHeuristic(),
		MinTextLength:       MinTextLength,
		ConfidenceThreshold: DefaultConfidenceThreshold,
	}
}

// Classify labels text. Text no longer than MinTextLength, or any text
// when no model is loaded, gets the heuristic result unchanged. Otherwise
// the model's top label is used unless its probability is below
// ConfidenceThreshold and the heuristic disagrees.
func (c *Classifier) Classify(text string) *sitegraph.Classification {
	logger := c.logger()
	heuristic := c.Heuristic
	if heuristic == nil {
		heuristic = defaultHeuristic()
	}

	if c.Model == nil || utf8.RuneCountInString(text) <= c.MinTextLength {
		res := heuristic.Classify(text)
		logger.Debug("classified by keywords", "category", res.Category)
		return res
	}

	probs := c.Model.Predict(text)
	if len(probs) == 0 {
		return heuristic.Classify(text)
	}
	top := probs[0]
	res := &sitegraph.Classification{
		Category:      top.Category,
		Confidence:    top.Probability,
		Probabilities: probs,
		Strategy:      sitegraph.StrategyStatistical,
	}

	if top.Probability < c.ConfidenceThreshold {
		if h := heuristic.best(text); h != top.Category {
			logger.Info("low confidence prediction overridden",
				"predicted", top.Category,
				"confidence", top.Probability,
				"keywords", h,
			)
			res.Category = h
			res.Strategy = sitegraph.StrategyOverride
		}
	}

	logger.Debug("classified", "category", res.Category, "confidence", res.Confidence, "strategy", res.Strategy)
	return res
}

func (c *Classifier) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
