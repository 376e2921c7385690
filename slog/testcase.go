package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitegraph"
)

// Ensure LoggingCodeGenerator implements sitegraph.CodeGenerator.
var _ sitegraph.CodeGenerator = (*LoggingCodeGenerator)(nil)

// LoggingCodeGenerator wraps a CodeGenerator with logging.
type LoggingCodeGenerator struct {
	next   sitegraph.CodeGenerator
	logger *slog.Logger
}

// NewLoggingCodeGenerator creates a new LoggingCodeGenerator.
func NewLoggingCodeGenerator(next sitegraph.CodeGenerator, logger *slog.Logger) *LoggingCodeGenerator {
	return &LoggingCodeGenerator{next: next, logger: logger}
}

// GenerateCode delegates to the wrapped generator and logs the operation.
func (g *LoggingCodeGenerator) GenerateCode(ctx context.Context, tc *sitegraph.TestCase, siteURL string) (code string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate code",
			"test", tc.ID,
			"url", siteURL,
			"bytes", len(code),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateCode(ctx, tc, siteURL)
}

// Ensure LoggingRunner implements sitegraph.TestRunner.
var _ sitegraph.TestRunner = (*LoggingRunner)(nil)

// LoggingRunner wraps a TestRunner with a record per run and per failed step.
type LoggingRunner struct {
	next   sitegraph.TestRunner
	logger *slog.Logger
}

// NewLoggingRunner creates a new LoggingRunner.
func NewLoggingRunner(next sitegraph.TestRunner, logger *slog.Logger) *LoggingRunner {
	return &LoggingRunner{next: next, logger: logger}
}

// Run delegates to the wrapped runner and logs the outcome.
func (r *LoggingRunner) Run(ctx context.Context, tc *sitegraph.TestCase) (res *sitegraph.RunResult, err error) {
	defer func(begin time.Time) {
		if res != nil {
			for _, step := range res.Steps {
				if step.Err != "" {
					r.logger.Warn("step failed", "test", tc.ID, "action", step.Action.Kind, "err", step.Err)
				}
			}
		}
		r.logger.Info("run test",
			"test", tc.ID,
			"passed", res != nil && res.Passed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Run(ctx, tc)
}

// Close delegates to the wrapped runner.
func (r *LoggingRunner) Close() error {
	return r.next.Close()
}
