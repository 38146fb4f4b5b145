package summarytypes

// SummaryLines is the two-line text summary consumed by feed cards and
// post thumbnails. SecondaryLine may be empty; a nil *SummaryLines means
// there was nothing renderable and callers show their own fallback.
type SummaryLines struct {
	PrimaryLine   string `json:"primaryLine"`
	SecondaryLine string `json:"secondaryLine,omitempty"`
}

// GolfStatsPayload is what a finished golf round exposes to the
// formatter. Optional fields are omitted from the secondary line.
type GolfStatsPayload struct {
	TotalScore        int    `json:"totalScore"`
	CourseName        string `json:"courseName,omitempty"`
	FairwayPercentage *int   `json:"fairwayPercentage,omitempty"`
	GIRPercentage     *int   `json:"girPercentage,omitempty"`
	TotalPutts        *int   `json:"totalPutts,omitempty"`
}

// GenericStatsPayload is an arbitrary key-to-value mapping from a
// non-golf sport. The formatter picks out the first two non-empty
// scalar entries.
type GenericStatsPayload map[string]any
