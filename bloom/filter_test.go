package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/sitegraph/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_TestAndAdd(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.MayContain("https://example.com/a"))
	assert.False(t, f.TestAndAdd("https://example.com/a"))
	assert.True(t, f.TestAndAdd("https://example.com/a"))
	assert.True(t, f.MayContain("https://example.com/a"))
	assert.False(t, f.MayContain("https://example.com/b"))
}

func TestFilter_ZeroCapacity(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(0, 0.01)
	f.TestAndAdd("https://example.com/")

	assert.True(t, f.MayContain("https://example.com/"))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)
	for i := range numItems {
		f.TestAndAdd(fmt.Sprintf("https://example.com/crawled/%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.MayContain(fmt.Sprintf("https://example.com/pending/%d", i)) {
			falsePositives++
		}
	}

	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
