// Package scorecardmetrics defines the metrics surface of the scorecard
// and course modules, with a Prometheus implementation and a no-op
// implementation for tests.
package scorecardmetrics

import (
	"context"
	"time"
)

// ScorecardMetrics records operation-level and domain-level measurements
// for the scorecard engine and its collaborators.
type ScorecardMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordOperationFailure(ctx context.Context, operation string)

	RecordStatsComputed(ctx context.Context, holesPlayed int)
	RecordCourseResolved(ctx context.Context, sourced bool)
	RecordRoundSubmitted(ctx context.Context, holes int)
	RecordCourseLookup(ctx context.Context, results int)
}
