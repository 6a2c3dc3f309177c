package layout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// updateTotal counts Root.Update calls that had pending work.
	updateTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spatial_layout_updates_total",
		Help: "Total layout updates that processed pending work",
	})

	// measurePassTotal counts measure policies run from the scheduler,
	// one per dirty subtree top (the recursion below it is not counted).
	measurePassTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spatial_layout_measure_passes_total",
		Help: "Total subtree measure passes run by layout updates",
	})

	// layoutPassTotal counts queued layouts by whether they ran or were
	// covered by an ancestor laid out in the same update.
	layoutPassTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spatial_layout_layout_passes_total",
		Help: "Total queued subtree layouts by result",
	}, []string{"result"})

	// updateDuration tracks how long one update takes.
	updateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "spatial_layout_update_duration_seconds",
		Help:    "Layout update duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10us to ~80ms
	})
)
