package scorecardservice

import (
	"context"

	"github.com/strideclub/scorecard/internal/observability/attr"

	coursetypes "github.com/strideclub/scorecard/app/modules/course/domain"
	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
)

// syntheticParPattern is the fixed 18-hole par layout used before any
// course is selected, indexed by (holeNumber - 1) mod 18.
var syntheticParPattern = [18]int{4, 4, 3, 5, 4, 4, 4, 3, 5, 4, 4, 3, 5, 4, 4, 4, 3, 5}

// yardageJitterBound bounds the random offset added to synthetic
// yardages, in yards either way.
const yardageJitterBound = 20

// defaultYardage is the par-dependent base used for synthetic holes and
// as the final fallback when a course publishes no yardage for a hole.
func defaultYardage(par int) int {
	switch par {
	case 3:
		return 150
	case 5:
		return 520
	default:
		return 380
	}
}

// ResolveCourse merges the course definition for the selected tee into
// the hole array. Entered scores, putts, fairway results, and notes are
// preserved by hole number; par and yardage come from the catalog. An
// empty match in the requested range returns the existing holes
// unchanged with Sourced false, never an error.
func (s *ScorecardService) ResolveCourse(
	ctx context.Context,
	course *coursetypes.Course,
	tee scorecardtypes.TeeColor,
	unitCount int,
	segment scorecardtypes.StartSegment,
	existing []scorecardtypes.HoleRecord,
) ([]scorecardtypes.HoleRecord, coursetypes.TeeMetadata, error) {
	type resolved struct {
		holes []scorecardtypes.HoleRecord
		meta  coursetypes.TeeMetadata
	}

	out, err := withTelemetry(s, ctx, "ResolveCourse", func(ctx context.Context) (resolved, error) {
		holes, meta := ResolveHoles(course, tee, unitCount, segment, existing)

		s.metrics.RecordCourseResolved(ctx, meta.Sourced)
		if !meta.Sourced {
			s.logger.WarnContext(ctx, "Course has no holes in the requested range",
				attr.String("course", course.Name),
				attr.Int("unit_count", unitCount),
				attr.String("segment", string(segment)),
			)
		} else {
			s.logger.InfoContext(ctx, "Course resolved onto scorecard",
				attr.String("course", course.Name),
				attr.String("tee", string(tee)),
				attr.Int("holes", len(holes)),
			)
		}
		return resolved{holes: holes, meta: meta}, nil
	})
	return out.holes, out.meta, err
}

// ResolveHoles is the pure resolver. It selects the course holes in
// [startHole, startHole+unitCount-1], applies the selected tee's yardage
// with a white-tee then par-default fallback, and carries over
// previously entered data by hole number.
func ResolveHoles(
	course *coursetypes.Course,
	tee scorecardtypes.TeeColor,
	unitCount int,
	segment scorecardtypes.StartSegment,
	existing []scorecardtypes.HoleRecord,
) ([]scorecardtypes.HoleRecord, coursetypes.TeeMetadata) {
	meta := coursetypes.TeeMetadata{}

	startHole := scorecardtypes.StartingHole(unitCount, segment)
	matched := course.HolesInRange(startHole, unitCount)
	if len(matched) == 0 {
		// Nothing to merge; the caller decides whether to fall back to
		// synthetic generation.
		return existing, meta
	}

	prior := make(map[int]*scorecardtypes.HoleRecord, len(existing))
	for i := range existing {
		prior[existing[i].HoleNumber] = &existing[i]
	}

	holes := make([]scorecardtypes.HoleRecord, 0, len(matched))
	for _, ch := range matched {
		yardage := ch.YardageFor(tee)
		if yardage == 0 {
			yardage = defaultYardage(ch.Par)
		}

		record := scorecardtypes.HoleRecord{
			HoleNumber:     ch.Number,
			Par:            ch.Par,
			Yardage:        &yardage,
			DifficultyRank: ch.DifficultyRank,
		}
		if p, ok := prior[ch.Number]; ok {
			record.Score = p.Score
			record.Putts = p.Putts
			record.FairwayResult = p.FairwayResult
			record.GreenInRegulation = p.GreenInRegulation
			record.Notes = p.Notes
		}
		holes = append(holes, record)
	}

	meta.Sourced = true
	if rating, ok := course.RatingFor(tee); ok {
		r := rating.Rating
		sl := rating.Slope
		meta.CourseRating = &r
		meta.CourseSlope = &sl
	}
	return holes, meta
}

// GenerateHoles produces synthetic placeholder holes for a round with no
// course data. Yardages are jittered from the service's random source;
// the Sourced flag on resolver metadata is what distinguishes these from
// catalog data downstream.
func (s *ScorecardService) GenerateHoles(
	ctx context.Context,
	unitCount int,
	segment scorecardtypes.StartSegment,
) ([]scorecardtypes.HoleRecord, error) {
	return withTelemetry(s, ctx, "GenerateHoles", func(ctx context.Context) ([]scorecardtypes.HoleRecord, error) {
		holes := SyntheticHoles(unitCount, segment, func(par int) int {
			return s.rng.Intn(2*yardageJitterBound+1) - yardageJitterBound
		})
		s.logger.DebugContext(ctx, "Generated synthetic holes",
			attr.Int("unit_count", unitCount),
			attr.String("segment", string(segment)),
		)
		return holes, nil
	})
}

// SyntheticHoles builds placeholder holes from the fixed par pattern.
// jitter receives the hole's par and returns a yardage offset; pass nil
// for reproducible fixtures.
func SyntheticHoles(unitCount int, segment scorecardtypes.StartSegment, jitter func(par int) int) []scorecardtypes.HoleRecord {
	startHole := scorecardtypes.StartingHole(unitCount, segment)

	holes := make([]scorecardtypes.HoleRecord, 0, unitCount)
	for i := 0; i < unitCount; i++ {
		number := startHole + i
		par := syntheticParPattern[(number-1)%18]
		yardage := defaultYardage(par)
		if jitter != nil {
			yardage += jitter(par)
		}
		holes = append(holes, scorecardtypes.HoleRecord{
			HoleNumber: number,
			Par:        par,
			Yardage:    &yardage,
		})
	}
	return holes
}
