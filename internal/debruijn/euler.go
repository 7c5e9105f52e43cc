package debruijn

import "strings"

// EulerianPath walks every edge exactly once starting from start and returns
// the visited nodes in order. The walk is iterative Hierholzer with an
// explicit stack, so path length is bounded by memory rather than call depth.
//
// Edges are consumed as they are walked; this is both the visitation
// mechanism and the exactly-once guarantee, and it makes the graph
// single-use. A second call returns ErrGraphConsumed.
//
// If edges remain after the walk (a disconnected graph whose components are
// individually balanced can pass the degree check), the partial path is
// returned together with ErrIncompleteTraversal so the caller can decide
// whether a partial assembly is acceptable.
func (g *Graph) EulerianPath(start string) ([]string, error) {
	if g.consumed {
		return nil, ErrGraphConsumed
	}
	if !g.HasNode(start) {
		return nil, ErrUnknownStart
	}
	g.consumed = true

	stack := []string{start}
	path := make([]string, 0, g.edges+1)
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		if succ := g.adj[current]; len(succ) > 0 {
			// Consume the most recently inserted edge (LIFO).
			next := succ[len(succ)-1]
			g.adj[current] = succ[:len(succ)-1]
			stack = append(stack, next)
		} else {
			// Fully explored: finalize. Appending here and reversing at the
			// end is the back-to-front construction done iteratively.
			stack = stack[:len(stack)-1]
			path = append(path, current)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	if g.RemainingEdges() > 0 {
		return path, ErrIncompleteTraversal
	}
	return path, nil
}

// Sequence collapses an Eulerian node path into the assembled string: the
// first (k−1)-mer in full, then the last character of every subsequent node,
// since consecutive nodes overlap in all but one character.
func Sequence(path []string) string {
	if len(path) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(path[0]) + len(path) - 1)
	b.WriteString(path[0])
	for _, node := range path[1:] {
		b.WriteByte(node[len(node)-1])
	}
	return b.String()
}
