package synth_test

import (
	"testing"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/structure"
	"github.com/fwojciec/sitegraph/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "https://example.com/"

type pageOpt func(*sitegraph.Page)

func withCounts(c sitegraph.Counts) pageOpt {
	return func(p *sitegraph.Page) { p.Counts = c }
}

func withText(text string) pageOpt {
	return func(p *sitegraph.Page) { p.Text = text }
}

func withLinks(links ...string) pageOpt {
	return func(p *sitegraph.Page) { p.Links = links }
}

func page(url, parent, title string, opts ...pageOpt) *sitegraph.Page {
	p := &sitegraph.Page{URL: url, Parent: parent, Title: title, Path: sitegraph.URLPath(url)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func derive(t *testing.T, category sitegraph.Category, pages ...*sitegraph.Page) *sitegraph.Structure {
	t.Helper()
	g := sitegraph.NewGraph(root)
	for _, p := range pages {
		require.NoError(t, g.AddPage(p))
	}
	g.Seal()
	return structure.Derive(g, &sitegraph.Classification{Category: category}, structure.Options{}, sitegraph.StopComplete)
}

// twoChains has /target reachable from /a directly and through /b.
func twoChains(t *testing.T, category sitegraph.Category, target ...pageOpt) *sitegraph.Structure {
	t.Helper()
	return derive(t, category,
		page(root, "", "Home", withLinks(root+"a")),
		page(root+"a", root, "A", withLinks(root+"b", root+"target")),
		page(root+"b", root+"a", "B", withLinks(root+"target")),
		page(root+"target", root+"b", "Target", target...),
	)
}

func titles(cases []*sitegraph.TestCase) []string {
	out := make([]string, len(cases))
	for i, tc := range cases {
		out[i] = tc.Title
	}
	return out
}

func TestSynthesizeSite(t *testing.T) {
	t.Parallel()

	t.Run("single page site yields one test", func(t *testing.T) {
		t.Parallel()

		s := derive(t, sitegraph.CategoryECommerce, page(root, "", "Home"))

		cases := synth.SynthesizeSite(s)
		require.Len(t, cases, 1)
		assert.Equal(t, 1, cases[0].ID)
		assert.Equal(t, "Homepage Accessibility Test", cases[0].Title)
		assert.Equal(t, []sitegraph.Action{
			{Kind: sitegraph.ActionNavigate, URL: root},
			{Kind: sitegraph.ActionWait},
		}, cases[0].Actions)
	})

	t.Run("e-commerce site adds search and cart tests", func(t *testing.T) {
		t.Parallel()

		cases := synth.SynthesizeSite(twoChains(t, sitegraph.CategoryECommerce))
		assert.Equal(t, []string{
			"Homepage Accessibility Test",
			"Basic Navigation Path Test",
			"Product Search Test",
			"Add Product to Cart Test",
		}, titles(cases))
		for i, tc := range cases {
			assert.Equal(t, i+1, tc.ID)
		}
	})

	t.Run("navigation test clicks the first child", func(t *testing.T) {
		t.Parallel()

		cases := synth.SynthesizeSite(twoChains(t, sitegraph.CategoryBlog))
		require.GreaterOrEqual(t, len(cases), 2)
		assert.Contains(t, cases[1].Actions, sitegraph.Action{Kind: sitegraph.ActionClick, URL: root + "a", Text: "A"})
	})

	t.Run("unknown category adds menu and form tests", func(t *testing.T) {
		t.Parallel()

		s := derive(t, sitegraph.CategoryUnknown,
			page(root, "", "Home", withLinks(root+"contact")),
			page(root+"contact", root, "Contact", withCounts(sitegraph.Counts{Forms: 1})),
		)
		assert.Equal(t, []string{
			"Homepage Accessibility Test",
			"Basic Navigation Path Test",
			"Main Menu Navigation Test",
			"Form Submission Test",
		}, titles(synth.SynthesizeSite(s)))
	})

	t.Run("unhandled category without forms adds only the menu test", func(t *testing.T) {
		t.Parallel()

		cases := synth.SynthesizeSite(twoChains(t, sitegraph.CategoryBanking))
		assert.Equal(t, "Main Menu Navigation Test", cases[len(cases)-1].Title)
		assert.Len(t, cases, 3)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		s := twoChains(t, sitegraph.CategoryNews)
		assert.Equal(t, synth.SynthesizeSite(s), synth.SynthesizeSite(s))
	})
}

func TestSynthesizePage(t *testing.T) {
	t.Parallel()

	t.Run("unknown page yields nothing", func(t *testing.T) {
		t.Parallel()

		cases := synth.SynthesizePage(twoChains(t, sitegraph.CategoryBlog), root+"missing")
		assert.NotNil(t, cases)
		assert.Empty(t, cases)
	})

	t.Run("accessibility test follows the shortest path", func(t *testing.T) {
		t.Parallel()

		cases := synth.SynthesizePage(twoChains(t, sitegraph.CategoryUnknown), root+"target")
		require.NotEmpty(t, cases)

		acc := cases[0]
		assert.Equal(t, "Accessibility Test for Target", acc.Title)
		assert.Equal(t, []string{
			"Navigate to " + root,
			"Find and click the link to 'A'",
			"Wait for the page to load",
			"Find and click the link to 'Target'",
			"Wait for the page to load completely",
		}, acc.Steps)
		assert.Equal(t, sitegraph.Action{Kind: sitegraph.ActionAssertTitle, Text: "Target"}, acc.Actions[len(acc.Actions)-1])
	})

	t.Run("untitled pages get no title checks", func(t *testing.T) {
		t.Parallel()

		s := derive(t, sitegraph.CategoryUnknown,
			page(root, "", "Home", withLinks(root+"a")),
			page(root+"a", root, sitegraph.DefaultTitle, withLinks(root+"form")),
			page(root+"form", root+"a", sitegraph.DefaultTitle,
				withCounts(sitegraph.Counts{Forms: 1, Inputs: 1})),
		)
		cases := synth.SynthesizePage(s, root+"form")
		require.NotEmpty(t, cases)
		for _, tc := range cases {
			for _, a := range tc.Actions {
				assert.NotEqual(t, sitegraph.ActionAssertTitle, a.Kind, tc.Title)
			}
		}
	})

	t.Run("one path test per enumerated path", func(t *testing.T) {
		t.Parallel()

		cases := synth.SynthesizePage(twoChains(t, sitegraph.CategoryUnknown), root+"target")
		assert.Equal(t, []string{
			"Accessibility Test for Target",
			"Path Navigation Test 1 to Target",
			"Path Navigation Test 2 to Target",
		}, titles(cases))

		assert.Contains(t, cases[1].Steps, "Find and click the link to 'B'")
		assert.NotContains(t, cases[2].Steps, "Find and click the link to 'B'")
	})

	t.Run("caps path tests", func(t *testing.T) {
		t.Parallel()

		s := derive(t, sitegraph.CategoryUnknown,
			page(root, "", "Home", withLinks(root+"a", root+"b", root+"c", root+"t")),
			page(root+"a", root, "A", withLinks(root+"b", root+"c", root+"t")),
			page(root+"b", root+"a", "B", withLinks(root+"c", root+"t")),
			page(root+"c", root+"b", "C", withLinks(root+"t")),
			page(root+"t", root+"c", "T"),
		)
		require.Greater(t, len(s.PathsTo(root+"t")), synth.MaxPathTests)

		var pathTests int
		for _, tc := range synth.SynthesizePage(s, root+"t") {
			if len(tc.Title) > 4 && tc.Title[:4] == "Path" {
				pathTests++
			}
		}
		assert.Equal(t, synth.MaxPathTests, pathTests)
	})

	t.Run("content tests follow page counts", func(t *testing.T) {
		t.Parallel()

		s := derive(t, sitegraph.CategoryUnknown,
			page(root, "", "Home", withLinks(root+"form")),
			page(root+"form", root, "Signup",
				withCounts(sitegraph.Counts{Forms: 1, Inputs: 3, Buttons: 1}),
				withLinks("https://example.com/x", "https://example.com/y", "https://example.com/z", "https://example.com/w"),
			),
		)
		assert.Equal(t, []string{
			"Accessibility Test for Signup",
			"Form Submission Test for Signup",
			"Links Test for Signup",
			"Input Validation Test for Signup",
			"Button Functionality Test for Signup",
			"Path Navigation Test 1 to Signup",
		}, titles(synth.SynthesizePage(s, root+"form")))
	})

	t.Run("e-commerce product page", func(t *testing.T) {
		t.Parallel()

		s := twoChains(t, sitegraph.CategoryECommerce, withText("Blue shirt. Add to cart for $20."))
		assert.Contains(t, titles(synth.SynthesizePage(s, root+"target")), "Product Page Test for Target")
	})

	t.Run("e-commerce checkout page", func(t *testing.T) {
		t.Parallel()

		s := twoChains(t, sitegraph.CategoryECommerce, withText("Your basket. Proceed to checkout."))
		got := titles(synth.SynthesizePage(s, root+"target"))
		assert.Contains(t, got, "Cart/Checkout Test for Target")
		assert.NotContains(t, got, "Product Page Test for Target")
	})

	t.Run("news page gets a content display test", func(t *testing.T) {
		t.Parallel()

		got := titles(synth.SynthesizePage(twoChains(t, sitegraph.CategoryNews), root+"target"))
		assert.Contains(t, got, "Content Display Test for Target")
	})

	t.Run("outbound links to discovered pages", func(t *testing.T) {
		t.Parallel()

		cases := synth.SynthesizePage(twoChains(t, sitegraph.CategoryUnknown), root+"a")
		last := cases[len(cases)-1]
		assert.Equal(t, "Outbound Links Test for A", last.Title)
		assert.Contains(t, last.Actions, sitegraph.Action{Kind: sitegraph.ActionClick, URL: root + "b", Text: "B"})
	})

	t.Run("seed page has no click steps", func(t *testing.T) {
		t.Parallel()

		cases := synth.SynthesizePage(twoChains(t, sitegraph.CategoryUnknown), "https://EXAMPLE.com")
		require.NotEmpty(t, cases)
		assert.Equal(t, []string{"Navigate to " + root}, cases[0].Steps)
	})

	t.Run("ids restart at one", func(t *testing.T) {
		t.Parallel()

		cases := synth.SynthesizePage(twoChains(t, sitegraph.CategoryUnknown), root+"target")
		for i, tc := range cases {
			assert.Equal(t, i+1, tc.ID)
		}
	})
}
