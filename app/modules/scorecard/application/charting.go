package scorecardservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/strideclub/scorecard/internal/observability/attr"

	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
)

// Feed preview palette.
var (
	scoreLineColor  = drawing.Color{R: 0x1b, G: 0x5e, B: 0x20, A: 0xff}
	parLineColor    = drawing.Color{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}
	chartBackground = drawing.Color{R: 0xfa, G: 0xfa, B: 0xf5, A: 0xff}
)

// RenderRoundChart draws a PNG line chart of score versus par by hole,
// over the played holes only. Feed cards use it as the round's preview
// image.
func (s *ScorecardService) RenderRoundChart(
	ctx context.Context,
	holes []scorecardtypes.HoleRecord,
) ([]byte, error) {
	return withTelemetry(s, ctx, "RenderRoundChart", func(ctx context.Context) ([]byte, error) {
		png, err := RenderScoreChart(holes)
		if err != nil {
			return nil, err
		}
		s.logger.DebugContext(ctx, "Rendered round preview chart",
			attr.Int("bytes", len(png)),
		)
		return png, nil
	})
}

// RenderScoreChart renders the score and par series for the played holes.
func RenderScoreChart(holes []scorecardtypes.HoleRecord) ([]byte, error) {
	var xValues, scoreValues, parValues []float64
	for i := range holes {
		if !holes[i].Played() {
			continue
		}
		xValues = append(xValues, float64(holes[i].HoleNumber))
		scoreValues = append(scoreValues, float64(*holes[i].Score))
		parValues = append(parValues, float64(holes[i].Par))
	}
	if len(xValues) == 0 {
		return nil, ErrNothingToChart
	}

	graph := chart.Chart{
		Width:  800,
		Height: 300,
		Background: chart.Style{
			FillColor: chartBackground,
		},
		Canvas: chart.Style{
			FillColor: chartBackground,
		},
		XAxis: chart.XAxis{
			Name: "Hole",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Par",
				XValues: xValues,
				YValues: parValues,
				Style: chart.Style{
					StrokeColor:     parLineColor,
					StrokeWidth:     2,
					StrokeDashArray: []float64{4, 4},
				},
			},
			chart.ContinuousSeries{
				Name:    "Score",
				XValues: xValues,
				YValues: scoreValues,
				Style: chart.Style{
					StrokeColor: scoreLineColor,
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    scoreLineColor,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
