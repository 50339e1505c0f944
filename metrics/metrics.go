// Package metrics registers the Prometheus collectors shared by the
// streamnet packages. Collectors register on the default registry at
// init, so embedding applications only need to expose promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NodeInserts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "streamnet_node_inserts_total",
		Help: "Total number of nodes inserted into a network.",
	})

	NodeDeletes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "streamnet_node_deletes_total",
		Help: "Total number of nodes deleted from a network.",
	})

	DuplicateIDs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "streamnet_duplicate_ids_total",
		Help: "Total number of node ids auto-suffixed on collision.",
	})

	Rebuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "streamnet_network_rebuilds_total",
		Help: "Total number of successful bulk rebuilds from records.",
	})

	StructuralErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "streamnet_structural_errors_total",
		Help: "Total number of malformed-topology failures detected.",
	})

	LayoutCorrections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "streamnet_layout_corrections_total",
		Help: "Total number of layout position corrections, labelled by kind.",
	}, []string{"kind"})

	NetworkNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "streamnet_network_nodes",
		Help: "Node count of the most recently mutated network.",
	})

	RebuildSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "streamnet_network_rebuild_duration_seconds",
		Help:    "Bulk rebuild latency in seconds.",
		Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	})
)
