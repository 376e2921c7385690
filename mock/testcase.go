package mock

import (
	"context"

	"github.com/fwojciec/sitegraph"
)

var _ sitegraph.TestCaseService = (*TestCaseService)(nil)

// TestCaseService is a mock implementation of sitegraph.TestCaseService.
type TestCaseService struct {
	ReplaceTestBatchFn  func(ctx context.Context, batch *sitegraph.TestBatch) error
	FindTestBatchFn     func(ctx context.Context, explorationID, pageURL string) (*sitegraph.TestBatch, error)
	SaveGeneratedCodeFn func(ctx context.Context, code *sitegraph.GeneratedCode) error
	FindGeneratedCodeFn func(ctx context.Context, explorationID, pageURL string, testCaseID int) (*sitegraph.GeneratedCode, error)
}

func (s *TestCaseService) ReplaceTestBatch(ctx context.Context, batch *sitegraph.TestBatch) error {
	return s.ReplaceTestBatchFn(ctx, batch)
}

func (s *TestCaseService) FindTestBatch(ctx context.Context, explorationID, pageURL string) (*sitegraph.TestBatch, error) {
	return s.FindTestBatchFn(ctx, explorationID, pageURL)
}

func (s *TestCaseService) SaveGeneratedCode(ctx context.Context, code *sitegraph.GeneratedCode) error {
	return s.SaveGeneratedCodeFn(ctx, code)
}

func (s *TestCaseService) FindGeneratedCode(ctx context.Context, explorationID, pageURL string, testCaseID int) (*sitegraph.GeneratedCode, error) {
	return s.FindGeneratedCodeFn(ctx, explorationID, pageURL, testCaseID)
}

var _ sitegraph.CodeGenerator = (*CodeGenerator)(nil)

// CodeGenerator is a mock implementation of sitegraph.CodeGenerator.
type CodeGenerator struct {
	GenerateCodeFn func(ctx context.Context, tc *sitegraph.TestCase, siteURL string) (string, error)
}

func (g *CodeGenerator) GenerateCode(ctx context.Context, tc *sitegraph.TestCase, siteURL string) (string, error) {
	return g.GenerateCodeFn(ctx, tc, siteURL)
}

var _ sitegraph.TestRunner = (*TestRunner)(nil)

// TestRunner is a mock implementation of sitegraph.TestRunner.
type TestRunner struct {
	RunFn   func(ctx context.Context, tc *sitegraph.TestCase) (*sitegraph.RunResult, error)
	CloseFn func() error
}

func (r *TestRunner) Run(ctx context.Context, tc *sitegraph.TestCase) (*sitegraph.RunResult, error) {
	return r.RunFn(ctx, tc)
}

func (r *TestRunner) Close() error {
	return r.CloseFn()
}
