package scorecardmetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics implements ScorecardMetrics on a Prometheus registry.
type PrometheusMetrics struct {
	operationAttempts  *prometheus.CounterVec
	operationFailures  *prometheus.CounterVec
	operationDurations *prometheus.HistogramVec

	statsComputed   prometheus.Counter
	holesPlayed     prometheus.Histogram
	coursesResolved *prometheus.CounterVec
	roundsSubmitted prometheus.Counter
	courseLookups   prometheus.Counter
	lookupResults   prometheus.Histogram
}

// NewPrometheusMetrics registers the scorecard metric family on the given
// registry and returns the recorder.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorecard_operation_attempts_total",
			Help: "Number of scorecard service operations started.",
		}, []string{"operation"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorecard_operation_failures_total",
			Help: "Number of scorecard service operations that failed.",
		}, []string{"operation"}),
		operationDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scorecard_operation_duration_seconds",
			Help:    "Duration of scorecard service operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		statsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorecard_stats_computed_total",
			Help: "Number of round statistics computations.",
		}),
		holesPlayed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scorecard_holes_played",
			Help:    "Played holes per statistics computation.",
			Buckets: []float64{1, 5, 9, 12, 18, 27, 36},
		}),
		coursesResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorecard_courses_resolved_total",
			Help: "Course resolutions, partitioned by data source.",
		}, []string{"sourced"}),
		roundsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorecard_rounds_submitted_total",
			Help: "Number of rounds submitted to the feed.",
		}),
		courseLookups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorecard_course_lookups_total",
			Help: "Number of course catalog searches.",
		}),
		lookupResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scorecard_course_lookup_results",
			Help:    "Result counts per course catalog search.",
			Buckets: []float64{0, 1, 2, 5, 10, 25},
		}),
	}

	reg.MustRegister(
		m.operationAttempts,
		m.operationFailures,
		m.operationDurations,
		m.statsComputed,
		m.holesPlayed,
		m.coursesResolved,
		m.roundsSubmitted,
		m.courseLookups,
		m.lookupResults,
	)
	return m
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.operationAttempts.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.operationDurations.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.operationFailures.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordStatsComputed(_ context.Context, holesPlayed int) {
	m.statsComputed.Inc()
	m.holesPlayed.Observe(float64(holesPlayed))
}

func (m *PrometheusMetrics) RecordCourseResolved(_ context.Context, sourced bool) {
	label := "synthetic"
	if sourced {
		label = "catalog"
	}
	m.coursesResolved.WithLabelValues(label).Inc()
}

func (m *PrometheusMetrics) RecordRoundSubmitted(_ context.Context, holes int) {
	m.roundsSubmitted.Inc()
}

func (m *PrometheusMetrics) RecordCourseLookup(_ context.Context, results int) {
	m.courseLookups.Inc()
	m.lookupResults.Observe(float64(results))
}
