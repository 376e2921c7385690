package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/mock"
	sgslog "github.com/fwojciec/sitegraph/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingClassifier_Classify(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	want := &sitegraph.Classification{
		Category:   sitegraph.CategoryNews,
		Confidence: 0.75,
		Strategy:   sitegraph.StrategyStatistical,
	}
	inner := &mock.Classifier{
		ClassifyFn: func(string) *sitegraph.Classification { return want },
	}

	got := sgslog.NewLoggingClassifier(inner, logger).Classify("breaking news")

	assert.Same(t, want, got)
	output := buf.String()
	assert.Contains(t, output, "classify")
	assert.Contains(t, output, "chars=13")
	assert.Contains(t, output, "category=news")
	assert.Contains(t, output, "confidence=0.75")
	assert.Contains(t, output, "strategy=statistical")
}
