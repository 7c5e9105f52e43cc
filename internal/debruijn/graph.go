package debruijn

import "errors"

// Sentinel errors for graph construction and traversal.
var (
	// ErrNoKmers is returned when Build receives zero k-mers.
	ErrNoKmers = errors.New("debruijn: no k-mers")

	// ErrKmerTooShort is returned when a k-mer has fewer than 2 characters.
	ErrKmerTooShort = errors.New("debruijn: k-mer shorter than 2 characters")

	// ErrKmerLengthMismatch is returned when k-mers disagree on k.
	ErrKmerLengthMismatch = errors.New("debruijn: k-mers have inconsistent length")

	// ErrNoValidStart means no node qualifies as an Eulerian-path start.
	ErrNoValidStart = errors.New("debruijn: no valid start node")

	// ErrMultipleSources means more than one node has out-degree = in-degree+1,
	// which a well-formed Eulerian-path graph never has.
	ErrMultipleSources = errors.New("debruijn: multiple source nodes")

	// ErrUnknownStart means the requested start node is not in the graph.
	ErrUnknownStart = errors.New("debruijn: start node not in graph")

	// ErrGraphConsumed means EulerianPath was already run on this graph.
	ErrGraphConsumed = errors.New("debruijn: graph already consumed")

	// ErrIncompleteTraversal means the walk terminated with edges left over
	// (disconnected graph that passed the degree check).
	ErrIncompleteTraversal = errors.New("debruijn: traversal left unconsumed edges")
)

// Graph is a directed de Bruijn multigraph over (k−1)-mer nodes.
//
// Adjacency lists keep parallel edges (one per k-mer occurrence) in insertion
// order; EulerianPath consumes them LIFO, which pins down the particular path
// found when several exist. Degree counters describe the original graph and
// are never decremented. A Graph is single-use: one traversal empties it.
type Graph struct {
	adj       map[string][]string // node → ordered successors (stack discipline)
	inDegree  map[string]int
	outDegree map[string]int
	nodes     map[string]struct{}
	order     []string // node IDs in first-appearance order
	edges     int
	consumed  bool
}

// NewGraph allocates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		adj:       make(map[string][]string),
		inDegree:  make(map[string]int),
		outDegree: make(map[string]int),
		nodes:     make(map[string]struct{}),
	}
}

// AddEdge records the directed edge from → to, creating either node on first
// sight and keeping the degree counters in step.
func (g *Graph) AddEdge(from, to string) {
	g.touch(from)
	g.touch(to)
	g.adj[from] = append(g.adj[from], to)
	g.outDegree[from]++
	g.inDegree[to]++
	g.edges++
}

func (g *Graph) touch(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.order = append(g.order, id)
}

// HasNode reports whether id appeared as a prefix or suffix of any k-mer.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all node IDs in first-appearance order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// OutDegree returns the original out-degree of id (0 if unknown).
func (g *Graph) OutDegree(id string) int { return g.outDegree[id] }

// InDegree returns the original in-degree of id (0 if unknown).
func (g *Graph) InDegree(id string) int { return g.inDegree[id] }

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the total number of edges ever inserted (one per k-mer).
func (g *Graph) EdgeCount() int { return g.edges }

// RemainingEdges returns how many edges have not been consumed yet.
func (g *Graph) RemainingEdges() int {
	n := 0
	for _, succ := range g.adj {
		n += len(succ)
	}
	return n
}

// Consumed reports whether EulerianPath has already run on this graph.
func (g *Graph) Consumed() bool { return g.consumed }
