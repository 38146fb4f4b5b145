package scorecardservice

import (
	"math/rand"

	"go.opentelemetry.io/otel/trace/noop"

	"github.com/strideclub/scorecard/internal/eventbus"
	"github.com/strideclub/scorecard/internal/observability"
	"github.com/strideclub/scorecard/internal/observability/metrics/scorecardmetrics"

	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
)

// newTestService builds a service on no-op observability, a fake bus,
// and a fixed random seed.
func newTestService() (*ScorecardService, *eventbus.FakeEventBus) {
	bus := eventbus.NewFakeEventBus()
	tracer := noop.NewTracerProvider().Tracer("test")
	svc := NewScorecardService(bus, observability.NoOpLogger, scorecardmetrics.NoOpMetrics{}, tracer, rand.New(rand.NewSource(1)))
	return svc, bus
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func fairwayPtr(v scorecardtypes.FairwayResult) *scorecardtypes.FairwayResult { return &v }

// buildHoles zips pars, scores, and putts into a hole array starting at
// startHole. A zero score or negative putts entry leaves that field
// unset.
func buildHoles(startHole int, pars, scores, putts []int) []scorecardtypes.HoleRecord {
	holes := make([]scorecardtypes.HoleRecord, len(pars))
	for i := range pars {
		holes[i] = scorecardtypes.HoleRecord{
			HoleNumber: startHole + i,
			Par:        pars[i],
		}
		if scores != nil && scores[i] > 0 {
			holes[i].Score = intPtr(scores[i])
		}
		if putts != nil && putts[i] >= 0 {
			holes[i].Putts = intPtr(putts[i])
		}
	}
	return holes
}
