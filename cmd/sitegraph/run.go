package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/sitegraph"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	_, _, tc, err := findTestCase(deps, c.ID, c.Page, c.TestID)
	if err != nil {
		return err
	}

	res, err := deps.Runner.Run(deps.Ctx, tc)
	if err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "[%d] %s\n", tc.ID, tc.Title)
	for _, step := range res.Steps {
		target := step.Action.URL
		if target == "" {
			target = step.Action.Text
		}
		if step.Err != "" {
			fmt.Fprintf(deps.Stdout, "  FAIL  %s %s: %s\n", step.Action.Kind, target, step.Err)
			continue
		}
		fmt.Fprintf(deps.Stdout, "  ok    %s %s (%s)\n", step.Action.Kind, target, step.Duration.Round(time.Millisecond))
	}

	if !res.Passed {
		return sitegraph.Errorf(sitegraph.EINVALID, "test case %d failed", tc.ID)
	}
	fmt.Fprintln(deps.Stdout, "PASS")
	return nil
}
