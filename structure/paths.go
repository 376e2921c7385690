package structure

import (
	"slices"

	"github.com/fwojciec/sitegraph"
)

// AllPaths enumerates, for every registered page, the simple paths from the
// root over the full edge set. Pages unreachable from the root map to an
// empty list. The graph must be sealed.
func AllPaths(g *sitegraph.Graph, opts Options) map[string][][]string {
	if !g.Sealed() {
		panic("structure: path enumeration on unsealed graph")
	}

	e := newEnumerator(g, opts.MaxPaths)
	paths := make(map[string][][]string, g.Len())
	for _, p := range g.Pages() {
		paths[p.URL] = e.pathsTo(p.URL)
	}
	return paths
}

// ShortestPath returns the shortest of paths, preferring the earliest on
// ties. It returns nil for an empty set.
func ShortestPath(paths [][]string) []string {
	var best []string
	for _, p := range paths {
		if best == nil || len(p) < len(best) {
			best = p
		}
	}
	return best
}

type enumerator struct {
	root  string
	succ  map[string][]string
	pred  map[string][]string
	limit int
}

func newEnumerator(g *sitegraph.Graph, limit int) *enumerator {
	e := &enumerator{
		root:  g.Root(),
		succ:  make(map[string][]string),
		pred:  make(map[string][]string),
		limit: limit,
	}
	for _, p := range g.Pages() {
		e.succ[p.URL] = g.Successors(p.URL)
	}
	for _, edge := range g.Edges() {
		e.pred[edge.To] = append(e.pred[edge.To], edge.From)
	}
	return e
}

// reaching returns the set of nodes with a path to target, target included.
func (e *enumerator) reaching(target string) map[string]bool {
	seen := map[string]bool{target: true}
	queue := []string{target}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, p := range e.pred[n] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	return seen
}

func (e *enumerator) pathsTo(target string) [][]string {
	out := [][]string{}
	live := e.reaching(target)
	if !live[e.root] {
		return out
	}

	onPath := map[string]bool{}
	var path []string
	var visit func(n string) bool
	visit = func(n string) bool {
		path = append(path, n)
		onPath[n] = true
		defer func() {
			path = path[:len(path)-1]
			delete(onPath, n)
		}()

		if n == target {
			out = append(out, slices.Clone(path))
			return e.limit <= 0 || len(out) < e.limit
		}
		for _, next := range e.succ[n] {
			if !live[next] || onPath[next] {
				continue
			}
			if !visit(next) {
				return false
			}
		}
		return true
	}
	visit(e.root)
	return out
}
