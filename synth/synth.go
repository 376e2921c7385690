// Package synth derives behavioral test cases from a site structure.
//
// Synthesis is deterministic: the same structure always yields the same
// test cases in the same order, numbered from 1.
package synth

import (
	"fmt"
	"strings"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/structure"
)

// MaxPathTests caps the path navigation tests emitted for one page.
const MaxPathTests = 3

// UnknownTitle names pages missing from the structure.
const UnknownTitle = "Unknown Page"

// batch numbers test cases as they are appended.
type batch struct {
	cases []*sitegraph.TestCase
}

func (b *batch) add(tc *sitegraph.TestCase) {
	tc.ID = len(b.cases) + 1
	b.cases = append(b.cases, tc)
}

func navigate(url string) sitegraph.Action {
	return sitegraph.Action{Kind: sitegraph.ActionNavigate, URL: url}
}

func wait() sitegraph.Action {
	return sitegraph.Action{Kind: sitegraph.ActionWait}
}

func click(url, title string) sitegraph.Action {
	return sitegraph.Action{Kind: sitegraph.ActionClick, URL: url, Text: title}
}

// assertTitle returns a title check, or nothing when the title is a
// placeholder that the browser will not see.
func assertTitle(title string) []sitegraph.Action {
	switch title {
	case "", sitegraph.DefaultTitle, UnknownTitle:
		return nil
	}
	return []sitegraph.Action{{Kind: sitegraph.ActionAssertTitle, Text: title}}
}

func title(s *sitegraph.Structure, url string) string {
	if p, ok := s.Pages[url]; ok && p.Title != "" {
		return p.Title
	}
	return UnknownTitle
}

// SynthesizeSite returns the whole-site test cases: a seed accessibility
// test and, when more than one page was discovered, a navigation test and
// the tests for the site's category.
func SynthesizeSite(s *sitegraph.Structure) []*sitegraph.TestCase {
	b := &batch{}
	b.add(&sitegraph.TestCase{
		Title:       "Homepage Accessibility Test",
		Description: fmt.Sprintf("Verify that the homepage at %s is accessible and loads correctly", s.URL),
		Steps: []string{
			"Navigate to " + s.URL,
			"Wait for the page to load completely",
		},
		ExpectedResults: []string{
			"Page loads without errors",
			"All elements are visible and properly rendered",
		},
		Actions: []sitegraph.Action{navigate(s.URL), wait()},
	})
	if s.PageCount <= 1 {
		return b.cases
	}

	b.add(&sitegraph.TestCase{
		Title:       "Basic Navigation Path Test",
		Description: "Verify that navigation between key pages works correctly",
		Steps: []string{
			"Navigate to " + s.URL,
			"Find and click on the first link in the navigation menu",
			"Wait for the new page to load",
			"Navigate back to the homepage",
		},
		ExpectedResults: []string{
			"Navigation to new page is successful",
			"Back navigation returns to the homepage",
			"No errors occur during navigation",
		},
		Actions: firstLinkActions(s),
	})

	for _, tc := range categoryTests(s) {
		b.add(tc)
	}
	return b.cases
}

// firstLinkActions visits the seed's first discovered child and returns.
func firstLinkActions(s *sitegraph.Structure) []sitegraph.Action {
	actions := []sitegraph.Action{navigate(s.URL), wait()}
	if children := s.Children(s.URL); len(children) > 0 {
		first := children[0]
		actions = append(actions, click(first.URL, first.Title), wait(), navigate(s.URL), wait())
	}
	return actions
}

// SynthesizePage returns the test cases scoped to one discovered page. It
// returns an empty list if the page was not discovered.
func SynthesizePage(s *sitegraph.Structure, rawURL string) []*sitegraph.TestCase {
	page, ok := s.Page(rawURL)
	if !ok {
		return []*sitegraph.TestCase{}
	}
	paths := s.PathsTo(page.URL)

	b := &batch{}
	b.add(accessibilityTest(s, page, paths))
	for _, tc := range contentTests(s, page) {
		b.add(tc)
	}
	for i, path := range paths {
		if i == MaxPathTests {
			break
		}
		b.add(pathTest(s, page, path, i+1))
	}
	if tc := outboundTest(s, page); tc != nil {
		b.add(tc)
	}
	return b.cases
}

// accessibilityTest narrates the shortest path from the seed to page.
func accessibilityTest(s *sitegraph.Structure, page *sitegraph.Page, paths [][]string) *sitegraph.TestCase {
	var steps []string
	var actions []sitegraph.Action

	if shortest := structure.ShortestPath(paths); len(shortest) > 0 {
		steps = append(steps, "Navigate to "+s.URL)
		actions = append(actions, navigate(s.URL))
		for i := 1; i < len(shortest)-1; i++ {
			hop := title(s, shortest[i])
			steps = append(steps,
				fmt.Sprintf("Find and click the link to '%s'", hop),
				"Wait for the page to load",
			)
			actions = append(actions, click(shortest[i], hop), wait())
		}
		if len(shortest) > 1 {
			steps = append(steps,
				fmt.Sprintf("Find and click the link to '%s'", page.Title),
				"Wait for the page to load completely",
			)
			actions = append(actions, click(page.URL, page.Title), wait())
		}
	} else {
		steps = []string{
			"Navigate directly to " + page.URL,
			"Wait for the page to load completely",
		}
		actions = []sitegraph.Action{navigate(page.URL), wait()}
	}
	actions = append(actions, assertTitle(page.Title)...)

	return &sitegraph.TestCase{
		Title:       "Accessibility Test for " + page.Title,
		Description: fmt.Sprintf("Verify that the page at %s is accessible and loads correctly", page.URL),
		Steps:       steps,
		ExpectedResults: []string{
			"Page loads without errors",
			"All elements are visible and properly rendered",
			fmt.Sprintf("Page title contains '%s'", page.Title),
		},
		Actions: actions,
	}
}

// pathTest walks one enumerated path, checking each page's title.
func pathTest(s *sitegraph.Structure, page *sitegraph.Page, path []string, n int) *sitegraph.TestCase {
	steps := []string{"Navigate to " + s.URL}
	actions := []sitegraph.Action{navigate(s.URL), wait()}
	for _, url := range path[1:] {
		hop := title(s, url)
		steps = append(steps,
			fmt.Sprintf("Find and click the link to '%s'", hop),
			"Wait for the page to load completely",
			fmt.Sprintf("Verify the page title contains '%s'", hop),
		)
		actions = append(actions, click(url, hop), wait())
		actions = append(actions, assertTitle(hop)...)
	}

	return &sitegraph.TestCase{
		Title:       fmt.Sprintf("Path Navigation Test %d to %s", n, page.Title),
		Description: fmt.Sprintf("Verify navigation through path %d to reach %s", n, page.Title),
		Steps:       steps,
		ExpectedResults: []string{
			"All links in the path are working",
			"Navigation completes successfully",
			fmt.Sprintf("Destination page '%s' loads correctly", page.Title),
		},
		Actions: actions,
	}
}

// outboundTest covers links from page to other discovered pages. It
// returns nil when there are none.
func outboundTest(s *sitegraph.Structure, page *sitegraph.Page) *sitegraph.TestCase {
	var targets []*sitegraph.Page
	for _, l := range page.Links {
		if p, ok := s.Pages[l]; ok {
			targets = append(targets, p)
		}
	}
	if len(targets) == 0 {
		return nil
	}

	actions := []sitegraph.Action{navigate(page.URL), wait()}
	for _, t := range targets {
		actions = append(actions, click(t.URL, t.Title), wait(), navigate(page.URL), wait())
	}
	return &sitegraph.TestCase{
		Title:       "Outbound Links Test for " + page.Title,
		Description: fmt.Sprintf("Verify all outbound links from %s work correctly", page.Title),
		Steps: []string{
			"Navigate to " + page.URL,
			"Identify all outbound links",
			"Click on each link and verify it loads",
			"Return to the original page after testing each link",
		},
		ExpectedResults: []string{
			"All outbound links are clickable",
			"Destination pages load without errors",
			"Navigation back to the original page works",
		},
		Actions: actions,
	}
}

func containsAny(text string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
