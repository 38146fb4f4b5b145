package parsers

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
)

const exportSheet = "Scorecard"

// ExportScorecard writes the round to an XLSX workbook in the same
// layout ParseScorecard reads, plus a totals row over the played holes.
func ExportScorecard(holes []scorecardtypes.HoleRecord, stats *scorecardtypes.RoundStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, label := range scorecardColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheet, cell, label); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i := range holes {
		h := &holes[i]
		rowNum := i + 2
		values := []any{h.HoleNumber, h.Par, nil, nil, "", h.Notes}
		if h.Score != nil {
			values[2] = *h.Score
		}
		if h.Putts != nil {
			values[3] = *h.Putts
		}
		if h.FairwayResult != nil {
			values[4] = string(*h.FairwayResult)
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write hole %d: %w", h.HoleNumber, err)
			}
		}
	}

	if stats != nil {
		rowNum := len(holes) + 2
		totals := map[int]any{
			1: "Total",
			2: stats.TotalPar,
			3: stats.TotalScore,
			4: stats.TotalPutts,
		}
		for col, v := range totals {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write totals: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
