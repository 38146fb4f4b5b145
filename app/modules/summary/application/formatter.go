// Package summaryservice renders the two-line stats summary reused
// outside the scorecard: feed previews, post thumbnails, profile cards.
package summaryservice

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
	summarytypes "github.com/strideclub/scorecard/app/modules/summary/domain"
)

// FormatSportStats renders any supported stats payload. It returns nil
// when there is nothing to show; callers treat that as "use fallback
// text", not as an error.
func FormatSportStats(payload any) *summarytypes.SummaryLines {
	switch p := payload.(type) {
	case *summarytypes.GolfStatsPayload:
		if p == nil {
			return nil
		}
		return FormatGolfStats(*p)
	case summarytypes.GolfStatsPayload:
		return FormatGolfStats(p)
	case summarytypes.GenericStatsPayload:
		return FormatGenericStats(p)
	case map[string]any:
		return FormatGenericStats(p)
	default:
		return nil
	}
}

// FormatGolfStats renders a golf round: total score plus course name on
// the primary line, then whichever of FIR, GIR, and putts are present,
// pipe-separated. The secondary line is omitted entirely when none are.
func FormatGolfStats(p summarytypes.GolfStatsPayload) *summarytypes.SummaryLines {
	if p.TotalScore <= 0 {
		return nil
	}

	primary := strconv.Itoa(p.TotalScore)
	if p.CourseName != "" {
		primary = fmt.Sprintf("%d at %s", p.TotalScore, p.CourseName)
	}

	var parts []string
	if p.FairwayPercentage != nil {
		parts = append(parts, fmt.Sprintf("FIR %d%%", *p.FairwayPercentage))
	}
	if p.GIRPercentage != nil {
		parts = append(parts, fmt.Sprintf("GIR %d%%", *p.GIRPercentage))
	}
	if p.TotalPutts != nil {
		parts = append(parts, fmt.Sprintf("%d putts", *p.TotalPutts))
	}

	return &summarytypes.SummaryLines{
		PrimaryLine:   primary,
		SecondaryLine: strings.Join(parts, " | "),
	}
}

// GolfPayloadFromStats adapts the engine aggregate for the formatter.
// Fairway percentage only counts as present when the round had driving
// holes; putts only when any were recorded.
func GolfPayloadFromStats(stats *scorecardtypes.RoundStats, courseName string) *summarytypes.GolfStatsPayload {
	if stats == nil {
		return nil
	}
	p := &summarytypes.GolfStatsPayload{
		TotalScore: stats.TotalScore,
		CourseName: courseName,
	}
	if stats.FairwayEligible > 0 {
		fir := stats.FairwayPercentage
		p.FairwayPercentage = &fir
	}
	gir := stats.GIRPercentage
	p.GIRPercentage = &gir
	if stats.TotalPutts > 0 {
		putts := stats.TotalPutts
		p.TotalPutts = &putts
	}
	return p
}

// FormatGenericStats picks the first two non-empty scalar entries and
// renders one per line. Map iteration order is not stable in Go, so
// entries are taken in sorted-key order to keep the output
// deterministic.
func FormatGenericStats(payload map[string]any) *summarytypes.SummaryLines {
	if len(payload) == 0 {
		return nil
	}

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	for _, k := range keys {
		value, ok := renderScalar(payload[k])
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", k, value))
		if len(lines) == 2 {
			break
		}
	}

	if len(lines) == 0 {
		return nil
	}
	out := &summarytypes.SummaryLines{PrimaryLine: lines[0]}
	if len(lines) > 1 {
		out.SecondaryLine = lines[1]
	}
	return out
}

// renderScalar formats a scalar stat value; non-scalars and empty
// strings are skipped.
func renderScalar(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		if val == "" {
			return "", false
		}
		return val, true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return "", false
	}
}
