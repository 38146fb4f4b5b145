package scorecardservice

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/strideclub/scorecard/testutils"

	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
)

func TestComputeRoundStats_NoScoresReturnsNil(t *testing.T) {
	holes := buildHoles(1, []int{4, 4, 3, 5}, nil, nil)
	if got := ComputeRoundStats(holes, nil); got != nil {
		t.Errorf("ComputeRoundStats() = %+v, want nil", got)
	}

	if got := ComputeRoundStats(nil, nil); got != nil {
		t.Errorf("ComputeRoundStats(nil) = %+v, want nil", got)
	}
}

func TestComputeRoundStats_FrontNineScenario(t *testing.T) {
	pars := []int{4, 4, 3, 5, 4, 4, 4, 3, 5}
	scores := []int{5, 4, 3, 6, 4, 5, 4, 4, 6}
	putts := []int{2, 2, 1, 2, 2, 2, 2, 1, 3}
	holes := buildHoles(1, pars, scores, putts)

	got := ComputeRoundStats(holes, nil)
	if got == nil {
		t.Fatal("ComputeRoundStats() = nil, want stats")
	}

	want := &scorecardtypes.RoundStats{
		HolesPlayed:     9,
		TotalScore:      41,
		TotalPar:        36,
		Differential:    5,
		TotalPutts:      17,
		PuttsPerHole:    17.0 / 9.0,
		FairwayEligible: 7,
		Breakdown: scorecardtypes.ScoreBreakdown{
			Pars:   4,
			Bogeys: 5,
		},
	}

	if got.TotalScore != want.TotalScore || got.TotalPar != want.TotalPar {
		t.Errorf("totals = %d/%d, want %d/%d", got.TotalScore, got.TotalPar, want.TotalScore, want.TotalPar)
	}
	if got.Differential != want.Differential {
		t.Errorf("Differential = %d, want %d", got.Differential, want.Differential)
	}
	if s := scorecardtypes.FormatDifferential(got.Differential); s != "+5" {
		t.Errorf("FormatDifferential = %q, want +5", s)
	}
	if got.TotalPutts != want.TotalPutts {
		t.Errorf("TotalPutts = %d, want %d", got.TotalPutts, want.TotalPutts)
	}
	if math.Abs(got.PuttsPerHole-want.PuttsPerHole) > 1e-9 {
		t.Errorf("PuttsPerHole = %v, want %v", got.PuttsPerHole, want.PuttsPerHole)
	}
	if got.FairwayEligible != want.FairwayEligible {
		t.Errorf("FairwayEligible = %d, want %d", got.FairwayEligible, want.FairwayEligible)
	}
	if diff := cmp.Diff(want.Breakdown, got.Breakdown); diff != "" {
		t.Errorf("Breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeRoundStats_FairwayExcludesParThrees(t *testing.T) {
	// All par 3s: no hole is fairway-eligible, percentage must be 0,
	// never NaN.
	holes := buildHoles(1, []int{3, 3, 3}, []int{3, 4, 2}, nil)
	na := scorecardtypes.FairwayNotApplicable
	for i := range holes {
		holes[i].FairwayResult = &na
	}

	got := ComputeRoundStats(holes, nil)
	if got == nil {
		t.Fatal("ComputeRoundStats() = nil, want stats")
	}
	if got.FairwayEligible != 0 {
		t.Errorf("FairwayEligible = %d, want 0", got.FairwayEligible)
	}
	if got.FairwayPercentage != 0 {
		t.Errorf("FairwayPercentage = %d, want 0", got.FairwayPercentage)
	}
}

func TestComputeRoundStats_FairwayPercentage(t *testing.T) {
	holes := buildHoles(1, []int{4, 4, 5, 3}, []int{4, 5, 5, 3}, nil)
	holes[0].FairwayResult = fairwayPtr(scorecardtypes.FairwayHit)
	holes[1].FairwayResult = fairwayPtr(scorecardtypes.FairwayLeft)
	holes[2].FairwayResult = fairwayPtr(scorecardtypes.FairwayHit)
	holes[3].FairwayResult = fairwayPtr(scorecardtypes.FairwayNotApplicable)

	got := ComputeRoundStats(holes, nil)
	if got == nil {
		t.Fatal("ComputeRoundStats() = nil, want stats")
	}
	if got.FairwaysHit != 2 || got.FairwayEligible != 3 {
		t.Fatalf("fairways = %d/%d, want 2/3", got.FairwaysHit, got.FairwayEligible)
	}
	if got.FairwayPercentage != 67 {
		t.Errorf("FairwayPercentage = %d, want 67", got.FairwayPercentage)
	}
}

func TestComputeRoundStats_GIRDerivation(t *testing.T) {
	// Hole 1: 4 strokes, 2 putts on a par 4 reaches the green in 2 ==
	// par-2, GIR true. Hole 2: 5 strokes, 2 putts misses regulation.
	holes := buildHoles(1, []int{4, 4}, []int{4, 5}, []int{2, 2})

	got := ComputeRoundStats(holes, nil)
	if got == nil {
		t.Fatal("ComputeRoundStats() = nil, want stats")
	}
	if got.GreensInRegulation != 1 {
		t.Errorf("GreensInRegulation = %d, want 1", got.GreensInRegulation)
	}
	if got.GIRPercentage != 50 {
		t.Errorf("GIRPercentage = %d, want 50", got.GIRPercentage)
	}
}

func TestComputeRoundStats_GIRStaleValueHonored(t *testing.T) {
	// No putts recorded: the explicitly set GIR flag is used as-is
	// rather than being reset.
	holes := buildHoles(1, []int{4, 4}, []int{5, 5}, nil)
	holes[0].GreenInRegulation = boolPtr(true)

	got := ComputeRoundStats(holes, nil)
	if got == nil {
		t.Fatal("ComputeRoundStats() = nil, want stats")
	}
	if got.GreensInRegulation != 1 {
		t.Errorf("GreensInRegulation = %d, want 1 (stale value kept)", got.GreensInRegulation)
	}
}

func TestComputeRoundStats_ClassifierBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		par   int
		score int
		want  func(b scorecardtypes.ScoreBreakdown) bool
	}{
		{"two under is eagle", 5, 3, func(b scorecardtypes.ScoreBreakdown) bool { return b.Eagles == 1 }},
		{"three under is still eagle", 5, 2, func(b scorecardtypes.ScoreBreakdown) bool { return b.Eagles == 1 }},
		{"one under is birdie", 4, 3, func(b scorecardtypes.ScoreBreakdown) bool { return b.Birdies == 1 }},
		{"even is par", 4, 4, func(b scorecardtypes.ScoreBreakdown) bool { return b.Pars == 1 }},
		{"one over is bogey", 4, 5, func(b scorecardtypes.ScoreBreakdown) bool { return b.Bogeys == 1 }},
		{"two over is double or worse", 4, 6, func(b scorecardtypes.ScoreBreakdown) bool { return b.DoubleOrWorse == 1 }},
		{"five over is double or worse", 3, 8, func(b scorecardtypes.ScoreBreakdown) bool { return b.DoubleOrWorse == 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			holes := buildHoles(1, []int{tt.par}, []int{tt.score}, nil)
			got := ComputeRoundStats(holes, nil)
			if got == nil {
				t.Fatal("ComputeRoundStats() = nil, want stats")
			}
			if !tt.want(got.Breakdown) {
				t.Errorf("Breakdown = %+v for par %d score %d", got.Breakdown, tt.par, tt.score)
			}
		})
	}
}

func TestComputeRoundStats_NetScore(t *testing.T) {
	holes := buildHoles(1, []int{4, 4}, []int{5, 5}, nil)

	got := ComputeRoundStats(holes, floatPtr(8.5))
	if got == nil {
		t.Fatal("ComputeRoundStats() = nil, want stats")
	}
	if got.NetScore == nil || *got.NetScore != 1.5 {
		t.Errorf("NetScore = %v, want 1.5", got.NetScore)
	}

	noHandicap := ComputeRoundStats(holes, nil)
	if noHandicap.NetScore != nil {
		t.Errorf("NetScore = %v, want nil without handicap", noHandicap.NetScore)
	}
}

func TestComputeRoundStats_PartialRound(t *testing.T) {
	// Only two of five holes played; unplayed holes contribute to no
	// aggregate.
	holes := buildHoles(1, []int{4, 4, 3, 5, 4}, []int{5, 0, 0, 0, 4}, nil)

	got := ComputeRoundStats(holes, nil)
	if got == nil {
		t.Fatal("ComputeRoundStats() = nil, want stats")
	}
	if got.HolesPlayed != 2 {
		t.Errorf("HolesPlayed = %d, want 2", got.HolesPlayed)
	}
	if got.TotalScore != 9 || got.TotalPar != 8 {
		t.Errorf("totals = %d/%d, want 9/8", got.TotalScore, got.TotalPar)
	}
}

func TestComputeRoundStats_DoesNotMutateInput(t *testing.T) {
	holes := buildHoles(1, []int{4}, []int{4}, []int{2})

	_ = ComputeRoundStats(holes, nil)
	if holes[0].GreenInRegulation != nil {
		t.Error("engine mutated GreenInRegulation on the input array")
	}
}

func TestScorecardService_ComputeStats(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	holes := buildHoles(1, []int{4, 4}, []int{4, 5}, []int{2, 2})
	stats, err := svc.ComputeStats(ctx, holes, nil)
	if err != nil {
		t.Fatalf("ComputeStats() error = %v", err)
	}
	if stats == nil || stats.TotalScore != 9 {
		t.Errorf("ComputeStats() = %+v, want TotalScore 9", stats)
	}

	empty, err := svc.ComputeStats(ctx, buildHoles(1, []int{4}, nil, nil), nil)
	if err != nil {
		t.Fatalf("ComputeStats() error = %v", err)
	}
	if empty != nil {
		t.Errorf("ComputeStats() = %+v, want nil for unplayed round", empty)
	}
}

func TestComputeRoundStats_GeneratedRoundInvariants(t *testing.T) {
	gen := testutils.NewTestDataGenerator(42)

	for _, count := range []int{9, 18, 5} {
		holes := gen.GenerateHoles(count, 1)

		got := ComputeRoundStats(holes, nil)
		if got == nil {
			t.Fatalf("ComputeRoundStats() = nil for %d generated holes", count)
		}
		if got.HolesPlayed != count {
			t.Errorf("HolesPlayed = %d, want %d", got.HolesPlayed, count)
		}

		b := got.Breakdown
		if sum := b.Eagles + b.Birdies + b.Pars + b.Bogeys + b.DoubleOrWorse; sum != count {
			t.Errorf("breakdown sums to %d, want %d", sum, count)
		}
		if got.FairwaysHit > got.FairwayEligible {
			t.Errorf("FairwaysHit %d exceeds eligible %d", got.FairwaysHit, got.FairwayEligible)
		}
		if got.FairwayPercentage < 0 || got.FairwayPercentage > 100 {
			t.Errorf("FairwayPercentage = %d out of range", got.FairwayPercentage)
		}
		if got.GIRPercentage < 0 || got.GIRPercentage > 100 {
			t.Errorf("GIRPercentage = %d out of range", got.GIRPercentage)
		}
		if got.Differential != got.TotalScore-got.TotalPar {
			t.Errorf("Differential = %d, want %d", got.Differential, got.TotalScore-got.TotalPar)
		}
	}
}
