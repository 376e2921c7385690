package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/structure"
	"github.com/fwojciec/sitegraph/synth"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	seed, err := sitegraph.NormalizeURL(c.URL)
	if err != nil {
		return fail(deps, err)
	}

	if c.Reuse {
		existing, err := deps.Explorations.FindExplorations(deps.Ctx, sitegraph.ExplorationFilter{URL: &seed, Limit: 1})
		if err != nil {
			return fail(deps, err)
		}
		if len(existing) > 0 {
			e, err := deps.Explorations.FindExplorationByID(deps.Ctx, existing[0].ID)
			if err != nil {
				return fail(deps, err)
			}
			fmt.Fprintf(deps.Stdout, "Reusing exploration %s from %s\n", e.ID, e.CreatedAt.Format("2006-01-02 15:04"))
			printSummary(deps, e)
			return nil
		}
	}

	ctx := deps.Ctx
	if c.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Deadline)
		defer cancel()
	}

	res, err := deps.Crawler.Crawl(ctx, seed)
	if err != nil {
		return fail(deps, err)
	}
	if res.Graph.Len() == 0 {
		return fail(deps, sitegraph.Errorf(sitegraph.EUNAVAILABLE, "could not fetch %s", seed))
	}

	cls := deps.Classifier.Classify(res.Graph.Text())
	s := structure.Derive(res.Graph, cls, structure.Options{MaxPaths: c.MaxPaths}, res.StopReason)
	s.Domain = res.Domain

	// Storage must outlive an expired crawl deadline.
	e := sitegraph.NewExploration(s)
	if err := deps.Explorations.CreateExploration(deps.Ctx, e); err != nil {
		return fail(deps, err)
	}

	batch := &sitegraph.TestBatch{ExplorationID: e.ID, TestCases: synth.SynthesizeSite(s)}
	if err := deps.TestCases.ReplaceTestBatch(deps.Ctx, batch); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Stored exploration %s\n", e.ID)
	printSummary(deps, e)
	fmt.Fprintf(deps.Stdout, "  Tests:      %d site tests (see 'sitegraph tests %s')\n", len(batch.TestCases), e.ID)
	if res.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  Failed:     %d pages could not be fetched\n", res.Failed)
	}
	return nil
}
