package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/sitegraph"
	main "github.com/fwojciec/sitegraph/cmd/sitegraph"
	"github.com/fwojciec/sitegraph/mock"
	"github.com/fwojciec/sitegraph/structure"
	"github.com/stretchr/testify/require"
)

const root = "https://shop.example/"

// testExploration returns a stored-looking exploration of a three page
// shop: the home page links to /products and /about, and /products holds
// a search form.
func testExploration(t *testing.T) *sitegraph.Exploration {
	t.Helper()

	g := sitegraph.NewGraph(root)
	require.NoError(t, g.AddPage(&sitegraph.Page{
		URL: root, Title: "Shop", Path: "/",
		Links: []string{root + "products", root + "about"},
	}))
	require.NoError(t, g.AddPage(&sitegraph.Page{
		URL: root + "products", Title: "Products", Path: "/products", Depth: 1, Parent: root,
		Headings: []string{"All products"},
		Counts:   sitegraph.Counts{Forms: 1, Inputs: 2, Buttons: 1},
		Text:     "browse our products and add them to your cart",
		Links:    []string{root, root + "about"},
	}))
	require.NoError(t, g.AddPage(&sitegraph.Page{
		URL: root + "about", Title: "About", Path: "/about", Depth: 1, Parent: root,
	}))
	g.Seal()

	cls := &sitegraph.Classification{
		Category:      sitegraph.CategoryECommerce,
		Confidence:    0.8,
		Strategy:      sitegraph.StrategyStatistical,
		Probabilities: []sitegraph.CategoryProbability{{Category: sitegraph.CategoryECommerce, Probability: 0.8}, {Category: sitegraph.CategoryBlog, Probability: 0.2}},
	}
	s := structure.Derive(g, cls, structure.Options{MaxPaths: structure.DefaultMaxPaths}, sitegraph.StopComplete)

	e := sitegraph.NewExploration(s)
	e.ID = "exp-1"
	e.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return e
}

// explorations returns a mock that serves e by ID.
func explorations(e *sitegraph.Exploration) *mock.ExplorationService {
	return &mock.ExplorationService{
		FindExplorationByIDFn: func(_ context.Context, id string) (*sitegraph.Exploration, error) {
			if id != e.ID {
				return nil, sitegraph.Errorf(sitegraph.ENOTFOUND, "exploration %q not found", id)
			}
			return e, nil
		},
	}
}

// memTestCases is an in-memory TestCaseService.
func memTestCases() (*mock.TestCaseService, map[string]*sitegraph.TestBatch) {
	batches := make(map[string]*sitegraph.TestBatch)
	codes := make(map[string]*sitegraph.GeneratedCode)
	key := func(id, page string) string { return id + "|" + page }
	svc := &mock.TestCaseService{
		ReplaceTestBatchFn: func(_ context.Context, b *sitegraph.TestBatch) error {
			batches[key(b.ExplorationID, b.PageURL)] = b
			return nil
		},
		FindTestBatchFn: func(_ context.Context, id, page string) (*sitegraph.TestBatch, error) {
			b, ok := batches[key(id, page)]
			if !ok {
				return nil, sitegraph.Errorf(sitegraph.ENOTFOUND, "test batch not found")
			}
			return b, nil
		},
		SaveGeneratedCodeFn: func(_ context.Context, c *sitegraph.GeneratedCode) error {
			codes[key(c.ExplorationID, c.PageURL)] = c
			return nil
		},
		FindGeneratedCodeFn: func(_ context.Context, id, page string, _ int) (*sitegraph.GeneratedCode, error) {
			c, ok := codes[key(id, page)]
			if !ok {
				return nil, sitegraph.Errorf(sitegraph.ENOTFOUND, "generated code not found")
			}
			return c, nil
		},
	}
	return svc, batches
}

func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}
