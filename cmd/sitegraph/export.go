package main

import (
	"fmt"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/fs"
)

// Run executes the export command. Only stored batches are exported.
func (c *ExportCmd) Run(deps *Dependencies) error {
	e, err := findExploration(deps, c.ID)
	if err != nil {
		return err
	}

	var batches []*sitegraph.TestBatch
	for _, pageURL := range append([]string{""}, e.Structure.Order...) {
		batch, err := deps.TestCases.FindTestBatch(deps.Ctx, e.ID, pageURL)
		if sitegraph.ErrorCode(err) == sitegraph.ENOTFOUND {
			continue
		}
		if err != nil {
			return fail(deps, err)
		}
		batches = append(batches, batch)
	}

	written, err := fs.NewExporter(c.Dir).Export(deps.Ctx, e, batches)
	if err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d files to %s\n", len(written), c.Dir)
	return nil
}
