package main_test

import (
	"testing"

	"github.com/fwojciec/sitegraph"
	main "github.com/fwojciec/sitegraph/cmd/sitegraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints summary, probabilities and hierarchy", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Explorations = explorations(testExploration(t))

		require.NoError(t, (&main.ShowCmd{ID: "exp-1"}).Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "URL:        https://shop.example/")
		assert.Contains(t, output, "Pages:      3 (4 edges, crawl complete)")
		assert.Contains(t, output, "e-commerce (0.80, statistical)")
		assert.Contains(t, output, " 80.0%")
		assert.Contains(t, output, "  Shop  https://shop.example/\n")
		assert.Contains(t, output, "    Products  https://shop.example/products\n")
	})

	t.Run("reports unknown exploration", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Explorations = explorations(testExploration(t))

		err := (&main.ShowCmd{ID: "nope"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, sitegraph.ENOTFOUND, sitegraph.ErrorCode(err))
		assert.Contains(t, stderr.String(), `exploration "nope" not found`)
	})
}

func TestPageCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints page metadata", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Explorations = explorations(testExploration(t))

		require.NoError(t, (&main.PageCmd{ID: "exp-1", URL: "https://shop.example/products?ref=nav"}).Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Title:    Products")
		assert.Contains(t, output, "Parent:   https://shop.example/")
		assert.Contains(t, output, "1 forms, 0 images, 1 buttons, 2 inputs, 2 links")
		assert.Contains(t, output, "Paths:    1 from the seed")
		assert.Contains(t, output, "All products")
	})

	t.Run("lists hierarchy children of the seed", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Explorations = explorations(testExploration(t))

		require.NoError(t, (&main.PageCmd{ID: "exp-1", URL: root}).Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Children:")
		assert.Contains(t, output, "Products  https://shop.example/products")
		assert.Contains(t, output, "About  https://shop.example/about")
	})

	t.Run("reports undiscovered page", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		deps.Explorations = explorations(testExploration(t))

		err := (&main.PageCmd{ID: "exp-1", URL: "https://shop.example/missing"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, sitegraph.ENOTFOUND, sitegraph.ErrorCode(err))
	})
}
