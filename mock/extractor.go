package mock

import "github.com/fwojciec/sitegraph"

var _ sitegraph.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitegraph.Extractor.
type Extractor struct {
	ExtractFn func(src sitegraph.PageSource, html string) (*sitegraph.Page, error)
}

func (e *Extractor) Extract(src sitegraph.PageSource, html string) (*sitegraph.Page, error) {
	return e.ExtractFn(src, html)
}
