package sitegraph_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/sitegraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "https://example.com/"

func page(url, parent string, links ...string) *sitegraph.Page {
	return &sitegraph.Page{URL: url, Parent: parent, Title: url, Links: links}
}

func TestGraph_AddPage(t *testing.T) {
	t.Parallel()

	t.Run("records discovery parent edge", func(t *testing.T) {
		t.Parallel()

		g := sitegraph.NewGraph(root)
		require.NoError(t, g.AddPage(page(root, "", root+"a")))
		require.NoError(t, g.AddPage(page(root+"a", root)))

		assert.Equal(t, 2, g.Len())
		assert.Equal(t, 1, g.EdgeCount())
		assert.Equal(t, []string{root + "a"}, g.Successors(root))
		assert.Equal(t, []string{root + "a"}, g.Children(root))
	})

	t.Run("keeps links to pages registered earlier", func(t *testing.T) {
		t.Parallel()

		g := sitegraph.NewGraph(root)
		require.NoError(t, g.AddPage(page(root, "", root+"a", root+"b")))
		require.NoError(t, g.AddPage(page(root+"a", root, root+"c")))
		require.NoError(t, g.AddPage(page(root+"c", root+"a")))
		require.NoError(t, g.AddPage(page(root+"b", root, root+"c")))

		assert.Equal(t, 4, g.EdgeCount())
		assert.Equal(t, []string{root + "c"}, g.Successors(root+"b"))
		assert.Equal(t, []string{root + "c"}, g.Children(root+"a"))
		assert.Empty(t, g.Children(root+"b"))
	})

	t.Run("edge from page registered before target", func(t *testing.T) {
		t.Parallel()

		g := sitegraph.NewGraph(root)
		require.NoError(t, g.AddPage(page(root, "", root+"a", root+"b")))
		require.NoError(t, g.AddPage(page(root+"a", root, root+"c")))
		require.NoError(t, g.AddPage(page(root+"b", root, root+"c")))
		require.NoError(t, g.AddPage(page(root+"c", root+"a")))

		assert.Equal(t, []string{root + "c"}, g.Successors(root+"a"))
		assert.Equal(t, []string{root + "c"}, g.Successors(root+"b"))
		assert.Equal(t, []string{root + "c"}, g.Children(root+"a"))
		assert.Empty(t, g.Children(root+"b"))
	})

	t.Run("keeps back links but not self links", func(t *testing.T) {
		t.Parallel()

		g := sitegraph.NewGraph(root)
		require.NoError(t, g.AddPage(page(root, "", root+"a")))
		require.NoError(t, g.AddPage(page(root+"a", root, root, root+"a")))

		assert.Equal(t, 2, g.EdgeCount())
		assert.Equal(t, []string{root}, g.Successors(root+"a"))
		assert.Empty(t, g.Children(root+"a"))
	})

	t.Run("rejects duplicate page", func(t *testing.T) {
		t.Parallel()

		g := sitegraph.NewGraph(root)
		require.NoError(t, g.AddPage(page(root, "")))
		err := g.AddPage(page(root, ""))
		assert.Equal(t, sitegraph.ECONFLICT, sitegraph.ErrorCode(err))
	})

	t.Run("requires root first", func(t *testing.T) {
		t.Parallel()

		g := sitegraph.NewGraph(root)
		err := g.AddPage(page(root+"a", root))
		assert.Equal(t, sitegraph.EINVALID, sitegraph.ErrorCode(err))
	})

	t.Run("requires registered parent", func(t *testing.T) {
		t.Parallel()

		g := sitegraph.NewGraph(root)
		require.NoError(t, g.AddPage(page(root, "")))
		err := g.AddPage(page(root+"b", root+"a"))
		assert.Equal(t, sitegraph.EINVALID, sitegraph.ErrorCode(err))
	})

	t.Run("panics after seal", func(t *testing.T) {
		t.Parallel()

		g := sitegraph.NewGraph(root)
		require.NoError(t, g.AddPage(page(root, "")))
		g.Seal()
		assert.Panics(t, func() { _ = g.AddPage(page(root+"a", root)) })
	})

	t.Run("safe for concurrent writers", func(t *testing.T) {
		t.Parallel()

		var links []string
		for i := range 50 {
			links = append(links, fmt.Sprintf("%sp%d", root, i))
		}
		g := sitegraph.NewGraph(root)
		require.NoError(t, g.AddPage(page(root, "", links...)))

		var wg sync.WaitGroup
		for _, l := range links {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, g.AddPage(page(l, root)))
			}()
		}
		wg.Wait()

		assert.Equal(t, 51, g.Len())
		assert.Equal(t, 50, g.EdgeCount())
	})
}

func TestGraph_Seal(t *testing.T) {
	t.Parallel()

	t.Run("orders successors by link position", func(t *testing.T) {
		t.Parallel()

		g := sitegraph.NewGraph(root)
		require.NoError(t, g.AddPage(page(root, "", root+"a", root+"b")))
		require.NoError(t, g.AddPage(page(root+"b", root)))
		require.NoError(t, g.AddPage(page(root+"a", root)))
		g.Seal()

		assert.True(t, g.Sealed())
		assert.Equal(t, []string{root + "a", root + "b"}, g.Successors(root))
		assert.Equal(t, []string{root + "b", root + "a"}, g.Children(root))
	})
}

func TestGraph_Text(t *testing.T) {
	t.Parallel()

	g := sitegraph.NewGraph(root)
	p := page(root, "", root+"a")
	p.Text = "hello"
	c := page(root+"a", root)
	c.Text = "world"
	require.NoError(t, g.AddPage(p))
	require.NoError(t, g.AddPage(c))

	assert.Equal(t, "hello world", g.Text())
	assert.Equal(t, []sitegraph.Edge{{From: root, To: root + "a"}}, g.Edges())
}
