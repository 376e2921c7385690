package main

import (
	"fmt"

	"github.com/fwojciec/sitegraph"
)

// Run executes the coverage command.
func (c *CoverageCmd) Run(deps *Dependencies) error {
	e, err := findExploration(deps, c.ID)
	if err != nil {
		return err
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, e.URL)
	if err != nil {
		return fail(deps, err)
	}
	if len(urls) == 0 {
		fmt.Fprintf(deps.Stdout, "No sitemap found for %s\n", e.URL)
		return nil
	}

	cov := sitegraph.ComputeCoverage(urls, e.Structure)
	fmt.Fprintf(deps.Stdout, "Sitemap lists %d pages; crawl discovered %d (%.0f%% of listed)\n",
		cov.Listed, cov.Discovered, cov.Ratio()*100)

	if len(cov.Missing) > 0 {
		fmt.Fprintf(deps.Stdout, "\nMissing from crawl (%d):\n", len(cov.Missing))
		for _, u := range cov.Missing {
			fmt.Fprintf(deps.Stdout, "  %s\n", u)
		}
	}
	if len(cov.Unlisted) > 0 {
		fmt.Fprintf(deps.Stdout, "\nNot in sitemap (%d):\n", len(cov.Unlisted))
		for _, u := range cov.Unlisted {
			fmt.Fprintf(deps.Stdout, "  %s\n", u)
		}
	}
	return nil
}
