package crawl

import (
	"sync"

	"github.com/fwojciec/sitegraph/bloom"
)

// Task is one unit of crawl work.
type Task struct {
	URL    string
	Parent string
	Depth  int
}

// Frontier is a LIFO stack of pending tasks. Popping from the top yields
// depth-first traversal in link discovery order.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	stack []Task
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{}
}

// Push adds tasks so that tasks[0] is popped first.
func (f *Frontier) Push(tasks ...Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(tasks) - 1; i >= 0; i-- {
		f.stack = append(f.stack, tasks[i])
	}
}

// Pop removes and returns the top task.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (Task, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.stack)
	if n == 0 {
		return Task{}, false
	}
	t := f.stack[n-1]
	f.stack = f.stack[:n-1]
	return t, true
}

// Len returns the number of pending tasks.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.stack)
}

// VisitedSet records visited URLs exactly. A Bloom filter answers most
// negative lookups before the map is consulted.
// It is safe for concurrent use by multiple goroutines.
type VisitedSet struct {
	mu     sync.Mutex
	filter *bloom.Filter
	exact  map[string]struct{}
}

// NewVisitedSet creates a VisitedSet sized for n expected URLs with the
// given Bloom filter false positive rate.
func NewVisitedSet(n uint, fpRate float64) *VisitedSet {
	return &VisitedSet{
		filter: bloom.NewFilter(n, fpRate),
		exact:  make(map[string]struct{}),
	}
}

// MarkVisited marks url as visited. It returns false if url was already
// visited, so concurrent callers never both win the same URL.
func (v *VisitedSet) MarkVisited(url string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.filter.TestAndAdd(url) {
		if _, ok := v.exact[url]; ok {
			return false
		}
	}
	v.exact[url] = struct{}{}
	return true
}

// Visited reports whether url has been marked.
func (v *VisitedSet) Visited(url string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visited(url)
}

// visited must be called with mu held.
func (v *VisitedSet) visited(url string) bool {
	if !v.filter.MayContain(url) {
		return false
	}
	_, ok := v.exact[url]
	return ok
}

// Len returns the number of visited URLs.
func (v *VisitedSet) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.exact)
}
