// SPDX-License-Identifier: MIT
// Package: confgraph/metrics
//
// metrics.go - Prometheus registry for generation statistics.
//
// Each Registry owns a private prometheus.Registry, so tests and parallel
// runs never collide on the global default registerer. Batch runs export a
// node_exporter textfile via WriteTextfile instead of serving /metrics.

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/confgraph/bfs"
	"github.com/katalvlaran/confgraph/core"
)

// Status label values of GraphsGenerated.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Registry holds all confgraph metrics.
type Registry struct {
	GraphsGenerated    *prometheus.CounterVec
	Nodes              prometheus.Histogram
	Edges              prometheus.Histogram
	SelfLoops          prometheus.Counter
	ParallelEdges      prometheus.Counter
	ParityCorrections  prometheus.Counter
	GenerationDuration prometheus.Histogram
	LastMaxDegree      prometheus.Gauge
	LastComponents     prometheus.Gauge
	LastLargest        prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every metric registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initGenerationMetrics()

	return r
}

func (r *Registry) initGenerationMetrics() {
	factory := promauto.With(r.registry)

	r.GraphsGenerated = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confgraph_graphs_generated_total",
			Help: "Total number of graph generations by outcome",
		},
		[]string{"status"},
	)

	r.Nodes = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "confgraph_nodes",
		Help:    "Node count of generated graphs",
		Buckets: prometheus.ExponentialBuckets(1, 10, 7),
	})

	r.Edges = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "confgraph_edges",
		Help:    "Edge count of generated graphs",
		Buckets: prometheus.ExponentialBuckets(1, 10, 8),
	})

	r.SelfLoops = factory.NewCounter(prometheus.CounterOpts{
		Name: "confgraph_self_loops_total",
		Help: "Self-loops produced by stub pairing",
	})

	r.ParallelEdges = factory.NewCounter(prometheus.CounterOpts{
		Name: "confgraph_parallel_edges_total",
		Help: "Parallel edges beyond the first between an endpoint pair",
	})

	r.ParityCorrections = factory.NewCounter(prometheus.CounterOpts{
		Name: "confgraph_parity_corrections_total",
		Help: "Sampled sequences whose last degree was bumped to make the sum even",
	})

	r.GenerationDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "confgraph_generation_duration_seconds",
		Help:    "Wall time of sampling plus pairing",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
	})

	r.LastMaxDegree = factory.NewGauge(prometheus.GaugeOpts{
		Name: "confgraph_last_max_degree",
		Help: "Largest realized degree of the most recent graph",
	})

	r.LastComponents = factory.NewGauge(prometheus.GaugeOpts{
		Name: "confgraph_last_components",
		Help: "Connected components of the most recent graph",
	})

	r.LastLargest = factory.NewGauge(prometheus.GaugeOpts{
		Name: "confgraph_last_largest_component",
		Help: "Vertex count of the largest component of the most recent graph",
	})
}

// RecordGeneration records a successful generation.
func (r *Registry) RecordGeneration(stats *core.GraphStats, duration time.Duration, parityCorrected bool) {
	r.GraphsGenerated.WithLabelValues(StatusOK).Inc()
	r.Nodes.Observe(float64(stats.VertexCount))
	r.Edges.Observe(float64(stats.EdgeCount))
	r.SelfLoops.Add(float64(stats.SelfLoops))
	r.ParallelEdges.Add(float64(stats.ParallelEdges))
	r.GenerationDuration.Observe(duration.Seconds())
	r.LastMaxDegree.Set(float64(stats.MaxDegree))
	if parityCorrected {
		r.ParityCorrections.Inc()
	}
}

// RecordComponents records the component structure of the most recent graph.
func (r *Registry) RecordComponents(sum *bfs.ComponentSummary) {
	r.LastComponents.Set(float64(sum.Count()))
	r.LastLargest.Set(float64(sum.Largest))
}

// RecordFailure records a generation that returned an error.
func (r *Registry) RecordFailure(duration time.Duration) {
	r.GraphsGenerated.WithLabelValues(StatusError).Inc()
	r.GenerationDuration.Observe(duration.Seconds())
}

// Gatherer exposes the underlying registry for scraping or tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile atomically writes all metrics in the text exposition format
// to path, for the node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("WriteTextfile: %w", err)
	}

	return nil
}
