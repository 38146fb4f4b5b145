package scorecardservice

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestRenderScoreChart_ProducesPNG(t *testing.T) {
	holes := buildHoles(1,
		[]int{4, 4, 3, 5, 4, 4, 4, 3, 5},
		[]int{5, 4, 3, 6, 4, 5, 4, 4, 6},
		nil,
	)

	png, err := RenderScoreChart(holes)
	if err != nil {
		t.Fatalf("RenderScoreChart() error = %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Errorf("output does not start with a PNG signature: % x", png[:minInt(8, len(png))])
	}
}

func TestRenderScoreChart_SkipsUnplayedHoles(t *testing.T) {
	// Holes 3 and 4 have no score; the chart should render from the
	// remaining points without error.
	holes := buildHoles(1, []int{4, 4, 3, 5, 4}, []int{5, 4, 0, 0, 4}, nil)

	png, err := RenderScoreChart(holes)
	if err != nil {
		t.Fatalf("RenderScoreChart() error = %v", err)
	}
	if len(png) == 0 {
		t.Error("RenderScoreChart() returned empty image")
	}
}

func TestRenderScoreChart_NothingToChart(t *testing.T) {
	holes := buildHoles(1, []int{4, 4, 3}, nil, nil)

	_, err := RenderScoreChart(holes)
	if !errors.Is(err, ErrNothingToChart) {
		t.Errorf("RenderScoreChart() error = %v, want %v", err, ErrNothingToChart)
	}
}

func TestRenderRoundChart_ServiceWrapsErrors(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RenderRoundChart(context.Background(), nil)
	if !errors.Is(err, ErrNothingToChart) {
		t.Errorf("RenderRoundChart() error = %v, want %v", err, ErrNothingToChart)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
