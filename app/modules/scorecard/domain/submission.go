package scorecardtypes

// RoundSubmission is the payload handed to the post-creation API when a
// finished round is submitted. It is assembled from the round
// configuration plus the current hole array; the engine never serializes
// it on its own.
type RoundSubmission struct {
	CourseName      string       `json:"courseName"`
	CourseLocation  string       `json:"courseLocation,omitempty"`
	CoursePar       int          `json:"coursePar"`
	CourseRating    *float64     `json:"courseRating,omitempty"`
	CourseSlope     *int         `json:"courseSlope,omitempty"`
	TeeBox          TeeColor     `json:"teeBox"`
	Holes           int          `json:"holes"`
	RoundType       Environment  `json:"roundType"`
	StartingHole    StartSegment `json:"startingHole"`
	Weather         string       `json:"weather,omitempty"`
	Temperature     *int         `json:"temperature,omitempty"`
	Wind            string       `json:"wind,omitempty"`
	PlayingPartners []string     `json:"playingPartners,omitempty"`
	Handicap        *float64     `json:"handicap,omitempty"`
	HolesData       []HoleRecord `json:"holesData"`
}
