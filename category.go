package sitegraph

import (
	"slices"
	"strings"
)

// Category is a site purpose label drawn from a closed set.
type Category string

// Category constants.
const (
	CategoryECommerce     Category = "e-commerce"
	CategoryBlog          Category = "blog"
	CategoryNews          Category = "news"
	CategoryPortfolio     Category = "portfolio"
	CategoryCorporate     Category = "corporate"
	CategoryEducational   Category = "educational"
	CategorySocial        Category = "social"
	CategoryEntertainment Category = "entertainment"
	CategoryBanking       Category = "banking"
	CategoryFinancial     Category = "financial"
	CategoryConsulting    Category = "consulting"
	CategoryGovernment    Category = "government"
	CategoryUnknown       Category = "unknown"
)

var categories = []Category{
	CategoryECommerce,
	CategoryBlog,
	CategoryNews,
	CategoryPortfolio,
	CategoryCorporate,
	CategoryEducational,
	CategorySocial,
	CategoryEntertainment,
	CategoryBanking,
	CategoryFinancial,
	CategoryConsulting,
	CategoryGovernment,
}

// Categories returns the known categories in canonical order.
// CategoryUnknown is not included.
func Categories() []Category {
	return slices.Clone(categories)
}

// ParseCategory returns the category named s.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == CategoryUnknown || slices.Contains(categories, c) {
		return c, nil
	}
	return "", Errorf(EINVALID, "unknown category %q", s)
}

// CategoryProbability is one entry of a ranked probability distribution.
type CategoryProbability struct {
	Category    Category `json:"category"`
	Probability float64  `json:"probability"`
}

// Strategy names the classifier path that produced a label.
type Strategy string

// Strategy constants.
const (
	StrategyStatistical Strategy = "statistical"
	StrategyHeuristic   Strategy = "heuristic"

	// StrategyOverride means a low-confidence statistical label was replaced
	// by a disagreeing heuristic label.
	StrategyOverride Strategy = "heuristic-override"
)

// Classification is the result of classifying site text.
type Classification struct {
	Category Category `json:"category"`

	// Confidence is the statistical model's top-label probability, zero
	// when the model did not run.
	Confidence float64 `json:"confidence"`

	// Probabilities is sorted by descending probability.
	Probabilities []CategoryProbability `json:"probabilities"`

	Strategy Strategy `json:"strategy"`
}

// Classifier assigns a category to site text. Classify is total: it always
// returns a classification.
type Classifier interface {
	Classify(text string) *Classification
}

// Predictor is a trained statistical model.
type Predictor interface {
	// Predict returns the probability of every class, sorted by descending
	// probability. The result is never empty.
	Predict(text string) []CategoryProbability
}
