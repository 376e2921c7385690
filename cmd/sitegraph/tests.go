package main

import (
	"fmt"

	"github.com/fwojciec/sitegraph"
)

// Run executes the tests command.
func (c *TestsCmd) Run(deps *Dependencies) error {
	e, err := findExploration(deps, c.ID)
	if err != nil {
		return err
	}
	pageURL, err := normalizePage(c.Page)
	if err != nil {
		return fail(deps, err)
	}

	batch, err := loadBatch(deps, e, pageURL, c.Regenerate)
	if err != nil {
		return fail(deps, err)
	}

	for i, tc := range batch.TestCases {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		printTestCase(deps, tc)
	}
	return nil
}

func printTestCase(deps *Dependencies, tc *sitegraph.TestCase) {
	out := deps.Stdout
	fmt.Fprintf(out, "[%d] %s\n", tc.ID, tc.Title)
	if tc.Description != "" {
		fmt.Fprintf(out, "    %s\n", tc.Description)
	}
	fmt.Fprintln(out, "    Steps:")
	for i, step := range tc.Steps {
		fmt.Fprintf(out, "      %d. %s\n", i+1, step)
	}
	if len(tc.ExpectedResults) > 0 {
		fmt.Fprintln(out, "    Expected:")
		for _, res := range tc.ExpectedResults {
			fmt.Fprintf(out, "      - %s\n", res)
		}
	}
}
