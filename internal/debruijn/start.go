package debruijn

// StartNode picks the node an Eulerian path must begin at.
//
// A node with out-degree = in-degree+1 is the unique path source and wins as
// soon as it is seen. If no such node exists the graph can only be an
// Eulerian circuit, so the first node (in first-appearance order) that is
// balanced and has at least one outgoing edge is used instead. Scanning in
// first-appearance order keeps the choice deterministic for a given input.
//
// With strict set, more than one source node is reported as
// ErrMultipleSources instead of silently taking the first: a graph with two
// sources admits no Eulerian path at all.
func (g *Graph) StartNode(strict bool) (string, error) {
	source := ""
	balanced := ""
	sources := 0
	for _, node := range g.order {
		switch {
		case g.outDegree[node]-g.inDegree[node] == 1:
			sources++
			if source == "" {
				source = node
			}
			if !strict {
				return source, nil
			}
		case balanced == "" && g.inDegree[node] == g.outDegree[node] && g.outDegree[node] > 0:
			balanced = node
		}
	}
	if sources > 1 {
		return "", ErrMultipleSources
	}
	if source != "" {
		return source, nil
	}
	if balanced != "" {
		return balanced, nil
	}
	return "", ErrNoValidStart
}
