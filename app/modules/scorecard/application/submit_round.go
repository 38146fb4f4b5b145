package scorecardservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/strideclub/scorecard/internal/observability/attr"

	coursetypes "github.com/strideclub/scorecard/app/modules/course/domain"
	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
	scorecardevents "github.com/strideclub/scorecard/app/modules/scorecard/events"
)

// SubmitRoundInput carries everything a finished round needs to become a
// feed post: the configuration, the hole array, and the tee metadata
// from course resolution. DateText, when set, is parsed as natural
// language ("yesterday 3pm") and overrides Config.Date.
type SubmitRoundInput struct {
	Config   scorecardtypes.RoundConfiguration
	DateText string
	Holes    []scorecardtypes.HoleRecord
	Meta     coursetypes.TeeMetadata
}

// SubmitRound validates the round, assembles the submission payload, and
// publishes it on the bus for the feed backend. The returned payload is
// what was published.
func (s *ScorecardService) SubmitRound(
	ctx context.Context,
	input SubmitRoundInput,
) (*scorecardevents.RoundSubmittedPayloadV1, error) {
	return withTelemetry(s, ctx, "SubmitRound", func(ctx context.Context) (*scorecardevents.RoundSubmittedPayloadV1, error) {
		if err := s.validateSubmission(&input); err != nil {
			return nil, err
		}

		stats := ComputeRoundStats(input.Holes, input.Config.PlayerHandicap)
		if stats == nil {
			return nil, ErrNoScores
		}

		coursePar := 0
		for i := range input.Holes {
			coursePar += input.Holes[i].Par
		}

		segment := input.Config.StartSegment
		if segment == "" {
			segment = scorecardtypes.StartFront
		}

		payload := &scorecardevents.RoundSubmittedPayloadV1{
			RoundID: uuid.New(),
			Date:    input.Config.Date,
			Submission: scorecardtypes.RoundSubmission{
				CourseName:      input.Config.CourseName,
				CourseLocation:  input.Config.CourseLocation,
				CoursePar:       coursePar,
				CourseRating:    input.Meta.CourseRating,
				CourseSlope:     input.Meta.CourseSlope,
				TeeBox:          input.Config.TeeColor,
				Holes:           len(input.Holes),
				RoundType:       input.Config.Environment,
				StartingHole:    segment,
				Weather:         input.Config.Weather,
				Temperature:     input.Config.Temperature,
				Wind:            input.Config.Wind,
				PlayingPartners: input.Config.PlayingPartners,
				Handicap:        input.Config.PlayerHandicap,
				HolesData:       input.Holes,
			},
			Stats: stats,
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal submission: %w", err)
		}
		if err := s.EventBus.Publish(ctx, scorecardevents.RoundSubmittedSubject, body); err != nil {
			return nil, fmt.Errorf("failed to publish submission: %w", err)
		}

		s.metrics.RecordRoundSubmitted(ctx, len(input.Holes))
		s.logger.InfoContext(ctx, "Round submitted",
			attr.RoundID("round_id", payload.RoundID),
			attr.String("course", input.Config.CourseName),
			attr.Int("holes", len(input.Holes)),
			attr.Int("total_score", stats.TotalScore),
		)
		return payload, nil
	})
}

func (s *ScorecardService) validateSubmission(input *SubmitRoundInput) error {
	if input.Config.CourseName == "" {
		return ErrMissingCourseName
	}
	if !input.Config.TeeColor.IsValid() {
		return ErrInvalidTee
	}
	if len(input.Holes) == 0 {
		return ErrNoHoles
	}

	startHole := scorecardtypes.StartingHole(len(input.Holes), input.Config.StartSegment)
	if err := scorecardtypes.ValidateRound(input.Holes, startHole); err != nil {
		return err
	}

	if input.DateText != "" {
		parsed, err := s.parseRoundDate(input.DateText)
		if err != nil {
			return err
		}
		input.Config.Date = parsed
	}
	if input.Config.Date.IsZero() {
		input.Config.Date = s.now()
	}
	return nil
}

// parseRoundDate turns free text like "yesterday" or "saturday 8am" into
// a concrete time, relative to the service clock.
func (s *ScorecardService) parseRoundDate(text string) (time.Time, error) {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	result, err := w.Parse(text, s.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrUnparseableDate, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, text)
	}
	return result.Time, nil
}
