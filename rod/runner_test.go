package rod_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePage struct {
	title  string
	links  map[string]string // url -> title after click
	block  bool
	calls  []string
	closed bool
}

func (p *fakePage) Navigate(url string) error {
	p.calls = append(p.calls, "navigate "+url)
	return nil
}

func (p *fakePage) ClickLink(url, text string) error {
	p.calls = append(p.calls, "click "+url)
	title, ok := p.links[url]
	if !ok {
		return errors.New("no link to " + url)
	}
	p.title = title
	return nil
}

func (p *fakePage) WaitLoad() error {
	p.calls = append(p.calls, "wait")
	if p.block {
		select {}
	}
	return nil
}

func (p *fakePage) Title() (string, error) { return p.title, nil }

func (p *fakePage) Close() error {
	p.closed = true
	return nil
}

type fakeOpener struct {
	page    *fakePage
	openErr error
	closed  bool
}

func (o *fakeOpener) OpenPage(context.Context) (rod.Page, error) {
	if o.openErr != nil {
		return nil, o.openErr
	}
	return o.page, nil
}

func (o *fakeOpener) Close() error {
	o.closed = true
	return nil
}

func pricingTest() *sitegraph.TestCase {
	return &sitegraph.TestCase{
		ID:    4,
		Title: "Navigate to Pricing",
		Actions: []sitegraph.Action{
			{Kind: sitegraph.ActionNavigate, URL: "https://example.com/"},
			{Kind: sitegraph.ActionClick, URL: "https://example.com/pricing", Text: "Pricing"},
			{Kind: sitegraph.ActionWait},
			{Kind: sitegraph.ActionAssertTitle, Text: "Pricing"},
		},
	}
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes when every action succeeds", func(t *testing.T) {
		t.Parallel()

		page := &fakePage{title: "Home", links: map[string]string{"https://example.com/pricing": "Pricing | Example"}}
		runner := rod.NewRunner(&fakeOpener{page: page})

		res, err := runner.Run(context.Background(), pricingTest())

		require.NoError(t, err)
		assert.True(t, res.Passed)
		assert.Equal(t, 4, res.TestCaseID)
		require.Len(t, res.Steps, 4)
		for _, step := range res.Steps {
			assert.Empty(t, step.Err)
		}
		assert.Equal(t, []string{"navigate https://example.com/", "click https://example.com/pricing", "wait"}, page.calls)
		assert.True(t, page.closed)
	})

	t.Run("stops at first failing action", func(t *testing.T) {
		t.Parallel()

		page := &fakePage{title: "Home"}
		runner := rod.NewRunner(&fakeOpener{page: page})

		res, err := runner.Run(context.Background(), pricingTest())

		require.NoError(t, err)
		assert.False(t, res.Passed)
		require.Len(t, res.Steps, 2)
		assert.Empty(t, res.Steps[0].Err)
		assert.Equal(t, sitegraph.ActionClick, res.Steps[1].Action.Kind)
		assert.Contains(t, res.Steps[1].Err, "no link")
	})

	t.Run("title mismatch fails", func(t *testing.T) {
		t.Parallel()

		page := &fakePage{links: map[string]string{"https://example.com/pricing": "Plans"}}
		runner := rod.NewRunner(&fakeOpener{page: page})

		res, err := runner.Run(context.Background(), pricingTest())

		require.NoError(t, err)
		assert.False(t, res.Passed)
		require.Len(t, res.Steps, 4)
		assert.Contains(t, res.Steps[3].Err, "does not contain")
	})

	t.Run("step timeout fails the step", func(t *testing.T) {
		t.Parallel()

		page := &fakePage{block: true, links: map[string]string{"https://example.com/pricing": "Pricing"}}
		runner := rod.NewRunner(&fakeOpener{page: page}, rod.WithStepTimeout(20*time.Millisecond))

		res, err := runner.Run(context.Background(), pricingTest())

		require.NoError(t, err)
		assert.False(t, res.Passed)
		require.Len(t, res.Steps, 3)
		assert.Equal(t, context.DeadlineExceeded.Error(), res.Steps[2].Err)
	})

	t.Run("rejects test case without actions", func(t *testing.T) {
		t.Parallel()

		runner := rod.NewRunner(&fakeOpener{page: &fakePage{}})

		_, err := runner.Run(context.Background(), &sitegraph.TestCase{ID: 1, Steps: []string{"Open the site"}})

		require.Error(t, err)
		assert.Equal(t, sitegraph.EINVALID, sitegraph.ErrorCode(err))
	})

	t.Run("returns open error", func(t *testing.T) {
		t.Parallel()

		runner := rod.NewRunner(&fakeOpener{openErr: errors.New("browser gone")})

		_, err := runner.Run(context.Background(), pricingTest())

		require.EqualError(t, err, "browser gone")
	})
}

func TestRunner_Close(t *testing.T) {
	t.Parallel()

	opener := &fakeOpener{}
	require.NoError(t, rod.NewRunner(opener).Close())
	assert.True(t, opener.closed)
}
