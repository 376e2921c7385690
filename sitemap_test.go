package sitegraph_test

import (
	"testing"

	"github.com/fwojciec/sitegraph"
	"github.com/stretchr/testify/assert"
)

func TestComputeCoverage(t *testing.T) {
	t.Parallel()

	s := &sitegraph.Structure{
		URL:    root,
		Domain: "example.com",
		Pages: map[string]*sitegraph.Page{
			root:         {URL: root},
			root + "a":   {URL: root + "a"},
			root + "new": {URL: root + "new"},
		},
	}

	cov := sitegraph.ComputeCoverage([]string{
		"https://example.com/",
		"https://example.com/a?ref=sitemap",
		"https://example.com/b",
		"https://other.com/c",
		"https://example.com/b",
	}, s)

	assert.Equal(t, 3, cov.Listed)
	assert.Equal(t, 3, cov.Discovered)
	assert.Equal(t, []string{"https://example.com/b"}, cov.Missing)
	assert.Equal(t, []string{root + "new"}, cov.Unlisted)
	assert.InDelta(t, 2.0/3.0, cov.Ratio(), 1e-9)
}

func TestCoverage_RatioEmpty(t *testing.T) {
	t.Parallel()

	assert.Zero(t, (&sitegraph.Coverage{}).Ratio())
}
