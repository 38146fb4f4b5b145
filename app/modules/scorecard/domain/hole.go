package scorecardtypes

import "fmt"

// TeeColor identifies the tee box a round is played from.
type TeeColor string

const (
	TeeBlack TeeColor = "black"
	TeeBlue  TeeColor = "blue"
	TeeWhite TeeColor = "white"
	TeeGold  TeeColor = "gold"
	TeeRed   TeeColor = "red"
)

// IsValid reports whether the tee color is one of the known tee boxes.
func (t TeeColor) IsValid() bool {
	switch t {
	case TeeBlack, TeeBlue, TeeWhite, TeeGold, TeeRed:
		return true
	}
	return false
}

// FairwayResult records where the tee shot finished on a driving hole.
type FairwayResult string

const (
	FairwayHit   FairwayResult = "hit"
	FairwayLeft  FairwayResult = "left"
	FairwayRight FairwayResult = "right"
	// FairwayNotApplicable is the only legal value on a par 3, where there
	// is no fairway to hit.
	FairwayNotApplicable FairwayResult = "na"
)

// HoleRecord is the atomic unit of recorded performance for one hole.
// Optional fields are pointers; absence of Score excludes the hole from
// every aggregate.
type HoleRecord struct {
	HoleNumber        int            `json:"holeNumber"`
	Par               int            `json:"par"`
	Yardage           *int           `json:"yardage,omitempty"`
	Score             *int           `json:"score,omitempty"`
	Putts             *int           `json:"putts,omitempty"`
	FairwayResult     *FairwayResult `json:"fairwayResult,omitempty"`
	GreenInRegulation *bool          `json:"greenInRegulation,omitempty"`
	DifficultyRank    *int           `json:"difficultyRank,omitempty"`
	Notes             string         `json:"notes,omitempty"`
}

// Played reports whether a score has been entered for the hole.
func (h *HoleRecord) Played() bool {
	return h.Score != nil
}

// Validate checks the field-level invariants of a single hole.
// It does not enforce any relationship between putts and score; the data
// model is deliberately permissive there.
func (h *HoleRecord) Validate() error {
	if h.HoleNumber < 1 {
		return fmt.Errorf("hole number must be positive, got %d", h.HoleNumber)
	}
	if h.Par < 3 || h.Par > 5 {
		return fmt.Errorf("hole %d: par must be 3, 4, or 5, got %d", h.HoleNumber, h.Par)
	}
	if h.Yardage != nil && *h.Yardage < 1 {
		return fmt.Errorf("hole %d: yardage must be positive", h.HoleNumber)
	}
	if h.Score != nil && *h.Score < 1 {
		return fmt.Errorf("hole %d: score must be positive", h.HoleNumber)
	}
	if h.Putts != nil && *h.Putts < 0 {
		return fmt.Errorf("hole %d: putts cannot be negative", h.HoleNumber)
	}
	if h.FairwayResult != nil {
		switch *h.FairwayResult {
		case FairwayHit, FairwayLeft, FairwayRight, FairwayNotApplicable:
		default:
			return fmt.Errorf("hole %d: unknown fairway result %q", h.HoleNumber, *h.FairwayResult)
		}
		if h.Par == 3 && *h.FairwayResult != FairwayNotApplicable {
			return fmt.Errorf("hole %d: fairway result %q is not valid on a par 3", h.HoleNumber, *h.FairwayResult)
		}
	}
	return nil
}

// RecomputeGIR re-derives green-in-regulation from score and putts.
// The derivation only applies when both inputs are present: strokes to
// reach the green (score - putts) must be at most par - 2. When either
// input is missing the previously stored value is kept, stale but not
// invalidated.
func (h *HoleRecord) RecomputeGIR() {
	if h.Score == nil || h.Putts == nil {
		return
	}
	gir := (*h.Score - *h.Putts) <= (h.Par - 2)
	h.GreenInRegulation = &gir
}

// EffectiveGIR returns the green-in-regulation value the aggregates should
// use: the derived value when both score and putts are known, otherwise
// whatever was last stored. The hole itself is not mutated.
func (h *HoleRecord) EffectiveGIR() *bool {
	if h.Score != nil && h.Putts != nil {
		gir := (*h.Score - *h.Putts) <= (h.Par - 2)
		return &gir
	}
	return h.GreenInRegulation
}

// ValidateRound checks that hole numbers form the exact contiguous range
// expected for the round and that each hole is individually valid.
func ValidateRound(holes []HoleRecord, startHole int) error {
	for i := range holes {
		if err := holes[i].Validate(); err != nil {
			return err
		}
		if want := startHole + i; holes[i].HoleNumber != want {
			return fmt.Errorf("hole numbering gap: position %d has hole %d, want %d", i, holes[i].HoleNumber, want)
		}
	}
	return nil
}
