package scorecardtypes

import "fmt"

// ScoreBreakdown counts played holes per scoring bucket. The engine keeps
// counts only; which holes landed in which bucket is recoverable by
// re-filtering the hole array.
type ScoreBreakdown struct {
	Eagles        int `json:"eagles"`
	Birdies       int `json:"birdies"`
	Pars          int `json:"pars"`
	Bogeys        int `json:"bogeys"`
	DoubleOrWorse int `json:"doubleOrWorse"`
}

// RoundStats is the aggregate produced by the statistics engine over the
// played holes of a round. Percentages are whole numbers; PuttsPerHole is
// left unrounded and only trimmed at display time.
type RoundStats struct {
	HolesPlayed        int            `json:"holesPlayed"`
	TotalScore         int            `json:"totalScore"`
	TotalPar           int            `json:"totalPar"`
	Differential       int            `json:"differential"`
	TotalPutts         int            `json:"totalPutts"`
	PuttsPerHole       float64        `json:"puttsPerHole"`
	FairwaysHit        int            `json:"fairwaysHit"`
	FairwayEligible    int            `json:"fairwayEligible"`
	FairwayPercentage  int            `json:"fairwayPercentage"`
	GreensInRegulation int            `json:"greensInRegulation"`
	GIRPercentage      int            `json:"girPercentage"`
	NetScore           *float64       `json:"netScore,omitempty"`
	Breakdown          ScoreBreakdown `json:"breakdown"`
}

// FormatDifferential renders a differential with an explicit sign for
// zero and positive values: "+0", "+5", "-2". Rendering "Even" for zero
// is a consumer choice, not done here.
func FormatDifferential(d int) string {
	if d >= 0 {
		return fmt.Sprintf("+%d", d)
	}
	return fmt.Sprintf("%d", d)
}
