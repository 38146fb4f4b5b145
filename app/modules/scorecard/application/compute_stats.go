package scorecardservice

import (
	"context"
	"math"

	"github.com/strideclub/scorecard/internal/observability/attr"

	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
)

// ComputeStats derives the aggregate statistics for the round. It wraps
// the pure engine with telemetry; the engine never mutates the input.
func (s *ScorecardService) ComputeStats(
	ctx context.Context,
	holes []scorecardtypes.HoleRecord,
	handicap *float64,
) (*scorecardtypes.RoundStats, error) {
	return withTelemetry(s, ctx, "ComputeStats", func(ctx context.Context) (*scorecardtypes.RoundStats, error) {
		stats := ComputeRoundStats(holes, handicap)
		if stats == nil {
			s.logger.DebugContext(ctx, "No played holes, no stats to compute",
				attr.Int("holes", len(holes)),
			)
			return nil, nil
		}

		s.metrics.RecordStatsComputed(ctx, stats.HolesPlayed)
		s.logger.InfoContext(ctx, "Round statistics computed",
			attr.Int("holes_played", stats.HolesPlayed),
			attr.Int("total_score", stats.TotalScore),
			attr.String("differential", scorecardtypes.FormatDifferential(stats.Differential)),
		)
		return stats, nil
	})
}

// ComputeRoundStats is the statistics engine: a pure function over the
// hole array. It returns nil when no hole has a score. Holes without a
// score are excluded from every aggregate.
func ComputeRoundStats(holes []scorecardtypes.HoleRecord, handicap *float64) *scorecardtypes.RoundStats {
	stats := &scorecardtypes.RoundStats{}

	for i := range holes {
		h := &holes[i]
		if !h.Played() {
			continue
		}
		stats.HolesPlayed++
		stats.TotalScore += *h.Score
		stats.TotalPar += h.Par

		if h.Putts != nil {
			stats.TotalPutts += *h.Putts
		}

		// Fairway stats cover driving holes only: par 3s are
		// categorically excluded, not merely skipped when marked
		// not-applicable.
		if h.Par > 3 {
			stats.FairwayEligible++
			if h.FairwayResult != nil && *h.FairwayResult == scorecardtypes.FairwayHit {
				stats.FairwaysHit++
			}
		}

		if gir := h.EffectiveGIR(); gir != nil && *gir {
			stats.GreensInRegulation++
		}

		classify(*h.Score-h.Par, &stats.Breakdown)
	}

	if stats.HolesPlayed == 0 {
		return nil
	}

	stats.Differential = stats.TotalScore - stats.TotalPar
	stats.PuttsPerHole = float64(stats.TotalPutts) / float64(stats.HolesPlayed)
	stats.FairwayPercentage = percentage(stats.FairwaysHit, stats.FairwayEligible)
	stats.GIRPercentage = percentage(stats.GreensInRegulation, stats.HolesPlayed)

	if handicap != nil {
		net := float64(stats.TotalScore) - *handicap
		stats.NetScore = &net
	}

	return stats
}

// classify buckets one played hole by its score-to-par differential.
// Eagle absorbs anything better than -2; double-or-worse absorbs
// anything beyond +2.
func classify(diff int, breakdown *scorecardtypes.ScoreBreakdown) {
	switch {
	case diff <= -2:
		breakdown.Eagles++
	case diff == -1:
		breakdown.Birdies++
	case diff == 0:
		breakdown.Pars++
	case diff == 1:
		breakdown.Bogeys++
	default:
		breakdown.DoubleOrWorse++
	}
}

// percentage converts hit/eligible into a whole-number percentage,
// returning 0 rather than NaN when nothing is eligible.
func percentage(hit, eligible int) int {
	if eligible == 0 {
		return 0
	}
	return int(math.Round(float64(hit) / float64(eligible) * 100))
}
