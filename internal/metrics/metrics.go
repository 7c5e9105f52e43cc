package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssembliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "seqasm_assemblies_total",
		Help: "Total number of assembly runs, labelled by outcome.",
	}, []string{"status"})

	KmersProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seqasm_kmers_processed_total",
		Help: "Total number of input k-mers fed into graph construction.",
	})

	AssemblyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "seqasm_assembly_duration_ms",
		Help:    "End-to-end assembly latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 10000},
	})

	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "seqasm_graph_nodes",
		Help: "Node count of the most recently built de Bruijn graph.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "seqasm_graph_edges",
		Help: "Edge count of the most recently built de Bruijn graph.",
	})
)
