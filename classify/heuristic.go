// Package classify assigns site categories from page text, arbitrating
// between a trained statistical model and a keyword heuristic.
package classify

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
	"github.com/fwojciec/sitegraph"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var _ sitegraph.Classifier = (*Heuristic)(nil)

// Heuristic scores each category by the number of keyword occurrences in
// the lowercased text. It is stateless after construction and safe for
// concurrent use.
type Heuristic struct {
	matcher  *ahocorasick.Matcher
	keywords []string

	// owners maps a keyword index to the categories listing it.
	owners [][]int
}

// NewHeuristic builds the keyword matcher for the built-in category
// keyword table.
func NewHeuristic() *Heuristic {
	h := &Heuristic{}
	index := map[string]int{}
	for ci, set := range keywordSets {
		for _, kw := range set.keywords {
			i, ok := index[kw]
			if !ok {
				i = len(h.keywords)
				index[kw] = i
				h.keywords = append(h.keywords, kw)
				h.owners = append(h.owners, nil)
			}
			h.owners[i] = append(h.owners[i], ci)
		}
	}
	h.matcher = ahocorasick.NewStringMatcher(h.keywords)
	return h
}

// Scores returns the keyword occurrence count per category.
func (h *Heuristic) Scores(text string) map[sitegraph.Category]int {
	lower := cases.Lower(language.Und).String(text)

	counts := make([]int, len(keywordSets))
	for _, i := range h.matcher.Match([]byte(lower)) {
		n := strings.Count(lower, h.keywords[i])
		for _, ci := range h.owners[i] {
			counts[ci] += n
		}
	}

	scores := make(map[sitegraph.Category]int, len(keywordSets))
	for ci, set := range keywordSets {
		scores[set.category] = counts[ci]
	}
	return scores
}

// Classify returns the highest-scoring category. A zero best score or a
// tie for the best score yields CategoryUnknown.
func (h *Heuristic) Classify(text string) *sitegraph.Classification {
	return heuristicResult(h.best(text))
}

func (h *Heuristic) best(text string) sitegraph.Category {
	scores := h.Scores(text)
	best, top, tied := sitegraph.CategoryUnknown, 0, false
	for _, set := range keywordSets {
		switch s := scores[set.category]; {
		case s > top:
			best, top, tied = set.category, s, false
		case s == top && s > 0:
			tied = true
		}
	}
	if top == 0 || tied {
		return sitegraph.CategoryUnknown
	}
	return best
}

func heuristicResult(c sitegraph.Category) *sitegraph.Classification {
	return &sitegraph.Classification{
		Category:      c,
		Probabilities: []sitegraph.CategoryProbability{{Category: c, Probability: 1}},
		Strategy:      sitegraph.StrategyHeuristic,
	}
}
