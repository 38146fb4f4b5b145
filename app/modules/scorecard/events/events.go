package scorecardevents

import (
	"time"

	"github.com/google/uuid"

	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
)

// Subjects for scorecard events on the bus. The feed backend consumes
// RoundSubmittedSubject to create the post for a finished round.
const (
	RoundSubmittedSubject = "scorecard.round.submitted"
)

// RoundSubmittedPayloadV1 is the event body published when a round is
// submitted. It carries the full submission plus the computed aggregate
// so the feed backend never re-runs the engine.
type RoundSubmittedPayloadV1 struct {
	RoundID    uuid.UUID                      `json:"roundId"`
	Date       time.Time                      `json:"date"`
	Submission scorecardtypes.RoundSubmission `json:"submission"`
	Stats      *scorecardtypes.RoundStats     `json:"stats,omitempty"`
}
