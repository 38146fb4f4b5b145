package scorecardservice

import (
	"context"

	coursetypes "github.com/strideclub/scorecard/app/modules/course/domain"
	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
	scorecardevents "github.com/strideclub/scorecard/app/modules/scorecard/events"
)

// Service is the application surface of the scorecard module.
type Service interface {
	// ComputeStats derives the round aggregate from the current hole
	// array. A nil result means no hole has a score yet; that is a
	// normal state, not an error.
	ComputeStats(ctx context.Context, holes []scorecardtypes.HoleRecord, handicap *float64) (*scorecardtypes.RoundStats, error)

	// ResolveCourse merges a catalog course definition into the hole
	// array for the selected tee, preserving anything already entered.
	ResolveCourse(ctx context.Context, course *coursetypes.Course, tee scorecardtypes.TeeColor, unitCount int, segment scorecardtypes.StartSegment, existing []scorecardtypes.HoleRecord) ([]scorecardtypes.HoleRecord, coursetypes.TeeMetadata, error)

	// GenerateHoles produces synthetic placeholder holes for a round
	// with no course selected.
	GenerateHoles(ctx context.Context, unitCount int, segment scorecardtypes.StartSegment) ([]scorecardtypes.HoleRecord, error)

	// SubmitRound validates a finished round, assembles the submission
	// payload, and publishes it for the feed backend.
	SubmitRound(ctx context.Context, input SubmitRoundInput) (*scorecardevents.RoundSubmittedPayloadV1, error)

	// RenderRoundChart draws a PNG score-versus-par chart for feed
	// previews.
	RenderRoundChart(ctx context.Context, holes []scorecardtypes.HoleRecord) ([]byte, error)
}

var _ Service = (*ScorecardService)(nil)
