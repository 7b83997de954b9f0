// Package metrics exposes Prometheus instrumentation for graph loads and
// MST runs. A Recorder owns its own registry so several sessions (and
// tests) never collide on the global default registry.
//
// Every Recorder method is safe to call on a nil *Recorder, which lets
// library code record unconditionally.
package metrics

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Load outcomes used as the "result" label of citygraph_loads_total.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Recorder groups the collectors for one application instance.
type Recorder struct {
	registry *prometheus.Registry

	loadsTotal       *prometheus.CounterVec
	edgesLoaded      prometheus.Counter
	recordsSkipped   *prometheus.CounterVec
	graphNodes       prometheus.Gauge
	graphEdges       prometheus.Gauge
	mstRunsTotal     *prometheus.CounterVec
	mstDuration      prometheus.Histogram
	mstTotalDistance prometheus.Gauge
}

// NewRecorder creates a Recorder with all collectors registered on a fresh
// registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		loadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "citygraph_loads_total",
				Help: "Number of graph loads by result.",
			},
			[]string{"result"},
		),
		edgesLoaded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "citygraph_edges_loaded_total",
				Help: "Total number of edges added to graphs by the loader.",
			},
		),
		recordsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "citygraph_records_skipped_total",
				Help: "Number of input records skipped by reason.",
			},
			[]string{"reason"},
		),
		graphNodes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "citygraph_graph_nodes",
				Help: "Number of nodes in the most recently loaded graph.",
			},
		),
		graphEdges: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "citygraph_graph_edges",
				Help: "Number of edges in the most recently loaded graph.",
			},
		),
		mstRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "citygraph_mst_runs_total",
				Help: "Number of MST computations by method and whether the result spans the graph.",
			},
			[]string{"method", "spanning"},
		),
		mstDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "citygraph_mst_duration_seconds",
				Help:    "Time taken to compute an MST.",
				Buckets: prometheus.DefBuckets,
			},
		),
		mstTotalDistance: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "citygraph_mst_total_distance_km",
				Help: "Total distance of the most recent MST.",
			},
		),
	}
	r.registry.MustRegister(
		r.loadsTotal,
		r.edgesLoaded,
		r.recordsSkipped,
		r.graphNodes,
		r.graphEdges,
		r.mstRunsTotal,
		r.mstDuration,
		r.mstTotalDistance,
	)

	return r
}

// Registry returns the registry backing r, e.g. for promhttp.HandlerFor.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// LoadSucceeded records a successful load of a graph with the given size.
func (r *Recorder) LoadSucceeded(nodes, edges int) {
	if r == nil {
		return
	}
	r.loadsTotal.WithLabelValues(ResultOK).Inc()
	r.edgesLoaded.Add(float64(edges))
	r.graphNodes.Set(float64(nodes))
	r.graphEdges.Set(float64(edges))
}

// LoadFailed records a failed load. result is ResultNotFound or ResultError.
func (r *Recorder) LoadFailed(result string) {
	if r == nil {
		return
	}
	r.loadsTotal.WithLabelValues(result).Inc()
}

// RecordSkipped adds n skipped records for reason.
func (r *Recorder) RecordSkipped(reason string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.recordsSkipped.WithLabelValues(reason).Add(float64(n))
}

// ObserveMST records one MST computation.
func (r *Recorder) ObserveMST(method string, spanning bool, total int64, took time.Duration) {
	if r == nil {
		return
	}
	r.mstRunsTotal.WithLabelValues(method, strconv.FormatBool(spanning)).Inc()
	r.mstDuration.Observe(took.Seconds())
	r.mstTotalDistance.Set(float64(total))
}

// WriteText writes every metric in the Prometheus text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
