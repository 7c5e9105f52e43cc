// Package pipeline wires the assembly stages together: k-mer validation,
// graph construction, start selection, and Eulerian reconstruction, in that
// order with no feedback between stages.
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kmerlab/seqasm/internal/config"
	"github.com/kmerlab/seqasm/internal/debruijn"
	"github.com/kmerlab/seqasm/internal/kmer"
	"github.com/kmerlab/seqasm/internal/metrics"
)

// Report is the outcome of one assembly run.
type Report struct {
	RunID      string `json:"run_id"`
	Sequence   string `json:"sequence"`
	K          int    `json:"k"`
	KmerCount  int    `json:"kmer_count"`
	NodeCount  int    `json:"node_count"`
	EdgeCount  int    `json:"edge_count"`
	StartNode  string `json:"start_node"`
	DurationMs int64  `json:"duration_ms"`
}

// Assembler runs assemblies under a fixed configuration. Each Run builds a
// fresh graph, so an Assembler may be reused; a single run is synchronous
// and single-threaded throughout.
type Assembler struct {
	cfg *config.Config
}

// New creates an Assembler.
func New(cfg *config.Config) *Assembler {
	return &Assembler{cfg: cfg}
}

// Run assembles the sequence underlying an ordered collection of k-mers.
func (a *Assembler) Run(kmers []string) (*Report, error) {
	start := time.Now()
	rep, err := a.run(kmers)
	if err != nil {
		metrics.AssembliesTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	rep.DurationMs = time.Since(start).Milliseconds()
	metrics.AssembliesTotal.WithLabelValues("success").Inc()
	metrics.AssemblyDuration.Observe(float64(rep.DurationMs))
	return rep, nil
}

func (a *Assembler) run(kmers []string) (*Report, error) {
	if err := kmer.Validate(kmers, a.cfg.Input.ValidateAlphabet); err != nil {
		return nil, err
	}
	metrics.KmersProcessed.Add(float64(len(kmers)))

	g, err := debruijn.Build(kmers)
	if err != nil {
		return nil, err
	}
	if err := checkDegreeSums(g, len(kmers)); err != nil {
		return nil, err
	}
	metrics.GraphNodes.Set(float64(g.NodeCount()))
	metrics.GraphEdges.Set(float64(g.EdgeCount()))

	startNode, err := g.StartNode(a.cfg.Strict.SingleSourceEnabled())
	if err != nil {
		return nil, err
	}

	path, err := g.EulerianPath(startNode)
	if err != nil {
		// A traversal that strands edges still produced a (partial) path;
		// surfacing it is configurable, swallowing anything else is not.
		if !errors.Is(err, debruijn.ErrIncompleteTraversal) || a.cfg.Strict.RequireFullTraversalEnabled() {
			return nil, err
		}
	}

	return &Report{
		RunID:     uuid.New().String(),
		Sequence:  debruijn.Sequence(path),
		K:         len(kmers[0]),
		KmerCount: len(kmers),
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
		StartNode: startNode,
	}, nil
}

// RunFile reads a k-mer input file and assembles it.
func (a *Assembler) RunFile(path string) (*Report, error) {
	kmers, err := kmer.ReadFile(path, a.cfg.Input.Delimiter)
	if err != nil {
		return nil, err
	}
	return a.Run(kmers)
}

// checkDegreeSums asserts the construction invariant
// Σ out-degree == Σ in-degree == k-mer count. A violation indicates a bug in
// graph construction, never bad input.
func checkDegreeSums(g *debruijn.Graph, kmerCount int) error {
	sumIn, sumOut := 0, 0
	for _, n := range g.Nodes() {
		sumIn += g.InDegree(n)
		sumOut += g.OutDegree(n)
	}
	if sumIn != kmerCount || sumOut != kmerCount {
		return fmt.Errorf("internal: degree sums in=%d out=%d diverge from k-mer count %d", sumIn, sumOut, kmerCount)
	}
	return nil
}
