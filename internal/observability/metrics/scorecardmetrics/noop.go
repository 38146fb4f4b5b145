package scorecardmetrics

import (
	"context"
	"time"
)

// NoOpMetrics satisfies ScorecardMetrics and records nothing.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordStatsComputed(context.Context, int)                       {}
func (NoOpMetrics) RecordCourseResolved(context.Context, bool)                     {}
func (NoOpMetrics) RecordRoundSubmitted(context.Context, int)                      {}
func (NoOpMetrics) RecordCourseLookup(context.Context, int)                        {}
