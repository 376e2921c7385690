package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/sitegraph"
)

// Ensure LoggingClassifier implements sitegraph.Classifier.
var _ sitegraph.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with logging.
type LoggingClassifier struct {
	next   sitegraph.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next sitegraph.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the result.
func (c *LoggingClassifier) Classify(text string) *sitegraph.Classification {
	begin := time.Now()
	res := c.next.Classify(text)
	c.logger.Info("classify",
		"chars", utf8.RuneCountInString(text),
		"category", res.Category,
		"confidence", res.Confidence,
		"strategy", res.Strategy,
		"duration", time.Since(begin),
	)
	return res
}
