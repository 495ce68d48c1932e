// Package metrics exposes the Prometheus collectors the scheduling
// generators report against: how long each algorithm takes and how many
// sessions it leaves unscheduled.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GenerationDuration records wall-clock time per generation run, labeled by
// algorithm (greedy, welsh-powell, dsatur, genetic) so the generators are
// comparable on one graph.
var GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "campus_core_timetable_generation_duration_seconds",
	Help:    "Time spent running a timetable generation algorithm.",
	Buckets: prometheus.DefBuckets,
}, []string{"algorithm"})

// UnscheduledSessions records how many sessions a generation run left
// unplaced, labeled by algorithm.
var UnscheduledSessions = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "campus_core_timetable_unscheduled_sessions",
	Help: "Number of sessions left unscheduled by the most recent generation run.",
}, []string{"algorithm"})

// ObserveGeneration records one generation run's duration and unscheduled
// count against the named algorithm.
func ObserveGeneration(algorithm string, start time.Time, unscheduled int) {
	GenerationDuration.WithLabelValues(algorithm).Observe(time.Since(start).Seconds())
	UnscheduledSessions.WithLabelValues(algorithm).Set(float64(unscheduled))
}
