package main

import (
	"fmt"

	"github.com/fwojciec/sitegraph"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return sitegraph.Errorf(sitegraph.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Explorations.DeleteExploration(deps.Ctx, c.ID); err != nil {
		if sitegraph.ErrorCode(err) == sitegraph.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: exploration %q not found. Use 'sitegraph list' to see stored explorations.\n", c.ID)
			return err
		}
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted exploration %s\n", c.ID)
	return nil
}
