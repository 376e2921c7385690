// Package bloom provides a probabilistic pre-check for visited URLs.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a Bloom filter over normalized URLs. A negative answer is
// certain; a positive one must be confirmed against an exact set.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs at the given false
// positive rate. A zero n is treated as one.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(max(n, 1), fpRate),
	}
}

// MayContain reports whether url might have been added.
func (f *Filter) MayContain(url string) bool {
	return f.f.TestString(url)
}

// TestAndAdd adds url and reports whether it might have been present
// before the call.
func (f *Filter) TestAndAdd(url string) bool {
	return f.f.TestAndAddString(url)
}
