package scorecardservice

import "errors"

// Validation errors surfaced by round submission. Input-boundary checks
// (non-numeric scores, out-of-range unit counts) belong to the callers;
// these cover what must hold before a round can be published.
var (
	ErrMissingCourseName = errors.New("course name is required")
	ErrInvalidTee        = errors.New("unknown tee color")
	ErrNoHoles           = errors.New("round has no holes")
	ErrNoScores          = errors.New("round has no scores entered")
	ErrUnparseableDate   = errors.New("could not parse round date")
	ErrNothingToChart    = errors.New("no played holes to chart")
)
