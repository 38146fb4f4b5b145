package coursetypes

import (
	"github.com/google/uuid"

	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
)

// TeeRating is the course rating and slope published for one tee box.
type TeeRating struct {
	Rating float64 `json:"rating"`
	Slope  int     `json:"slope"`
}

// CourseHole is one hole of a course definition, with yardages keyed by
// tee color. Not every tee has a yardage for every hole; consumers fall
// back to the white tee, then to a par-based default.
type CourseHole struct {
	Number         int                             `json:"number"`
	Par            int                             `json:"par"`
	Yardage        map[scorecardtypes.TeeColor]int `json:"yardage"`
	DifficultyRank *int                            `json:"difficultyRank,omitempty"`
}

// YardageFor resolves the yardage for a tee with the documented fallback
// chain: requested tee, white tee, zero (caller substitutes a default).
func (ch *CourseHole) YardageFor(tee scorecardtypes.TeeColor) int {
	if y, ok := ch.Yardage[tee]; ok && y > 0 {
		return y
	}
	if y, ok := ch.Yardage[scorecardtypes.TeeWhite]; ok && y > 0 {
		return y
	}
	return 0
}

// Course is a course-catalog entry: identity, total par, per-tee ratings,
// and the per-hole definitions the resolver consumes.
type Course struct {
	ID       uuid.UUID                             `json:"id"`
	Name     string                                `json:"name"`
	Location string                                `json:"location"`
	TotalPar int                                   `json:"totalPar"`
	Ratings  map[scorecardtypes.TeeColor]TeeRating `json:"ratings"`
	Holes    []CourseHole                          `json:"holes"`
}

// HolesInRange returns the course holes whose number falls within
// [startHole, startHole+count-1], in hole-number order.
func (c *Course) HolesInRange(startHole, count int) []CourseHole {
	var out []CourseHole
	for _, h := range c.Holes {
		if h.Number >= startHole && h.Number <= startHole+count-1 {
			out = append(out, h)
		}
	}
	return out
}

// RatingFor returns the rating/slope for a tee, if the course publishes one.
func (c *Course) RatingFor(tee scorecardtypes.TeeColor) (TeeRating, bool) {
	r, ok := c.Ratings[tee]
	return r, ok
}

// TeeMetadata is the round-level context produced by course resolution.
// Sourced distinguishes authoritative catalog data from synthetic
// placeholder holes.
type TeeMetadata struct {
	CourseRating *float64 `json:"courseRating,omitempty"`
	CourseSlope  *int     `json:"courseSlope,omitempty"`
	Sourced      bool     `json:"sourced"`
}
