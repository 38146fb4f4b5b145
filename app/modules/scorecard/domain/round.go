package scorecardtypes

import "time"

// StartSegment selects which half of an 18-hole course a 9-hole round
// starts on. It is only meaningful when the round is exactly 9 holes.
type StartSegment string

const (
	StartFront StartSegment = "front"
	StartBack  StartSegment = "back"
)

// Environment distinguishes outdoor rounds from simulator rounds. Weather
// and playing-partner context is only collected outdoors; the statistics
// engine does not care either way.
type Environment string

const (
	EnvironmentOutdoor Environment = "outdoor"
	EnvironmentIndoor  Environment = "indoor"
)

// RoundConfiguration is the round-level context for a scorecard. A round
// is not constrained to 9 or 18 holes; partial rounds (5, 12, ...) are
// supported.
type RoundConfiguration struct {
	Date            time.Time    `json:"date"`
	CourseName      string       `json:"courseName"`
	CourseLocation  string       `json:"courseLocation,omitempty"`
	TeeColor        TeeColor     `json:"teeColor"`
	UnitCount       int          `json:"unitCount"`
	StartSegment    StartSegment `json:"startSegment,omitempty"`
	Environment     Environment  `json:"environment"`
	PlayerHandicap  *float64     `json:"playerHandicap,omitempty"`
	Weather         string       `json:"weather,omitempty"`
	Temperature     *int         `json:"temperature,omitempty"`
	Wind            string       `json:"wind,omitempty"`
	PlayingPartners []string     `json:"playingPartners,omitempty"`
}

// StartingHole returns the first hole number for the round: 10 for a
// back-nine start, 1 otherwise.
func (rc *RoundConfiguration) StartingHole() int {
	return StartingHole(rc.UnitCount, rc.StartSegment)
}

// StartingHole returns the first hole number for a round of the given
// length. A back-nine start only applies to 9-hole rounds.
func StartingHole(unitCount int, segment StartSegment) int {
	if unitCount == 9 && segment == StartBack {
		return 10
	}
	return 1
}
