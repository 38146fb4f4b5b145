// Package parsers reads and writes XLSX scorecards. The workbook layout
// is one row per hole with Hole / Par / Score / Putts / Fairway / Notes
// columns; exports add a totals row the importer skips.
package parsers

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	scorecardtypes "github.com/strideclub/scorecard/app/modules/scorecard/domain"
)

// column order for both import and export.
var scorecardColumns = []string{"Hole", "Par", "Score", "Putts", "Fairway", "Notes"}

// ParseScorecard reads hole records from an uploaded XLSX workbook. Only
// the first sheet is considered. Cells left blank stay unset on the
// record; a blank Score keeps the hole out of the aggregates.
func ParseScorecard(data []byte) ([]scorecardtypes.HoleRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	headerIdx, colIdx, err := findHeaderRow(rows)
	if err != nil {
		return nil, err
	}

	var holes []scorecardtypes.HoleRecord
	for _, row := range rows[headerIdx+1:] {
		record, ok, err := parseHoleRow(row, colIdx)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		holes = append(holes, record)
	}

	if len(holes) == 0 {
		return nil, fmt.Errorf("no hole rows found in scorecard")
	}
	return holes, nil
}

// findHeaderRow locates the row carrying the column labels and maps each
// known label to its column index.
func findHeaderRow(rows [][]string) (int, map[string]int, error) {
	for i, row := range rows {
		colIdx := map[string]int{}
		for j, cell := range row {
			label := strings.TrimSpace(cell)
			for _, want := range scorecardColumns {
				if strings.EqualFold(label, want) {
					colIdx[want] = j
				}
			}
		}
		if _, haveHole := colIdx["Hole"]; haveHole {
			if _, havePar := colIdx["Par"]; havePar {
				return i, colIdx, nil
			}
		}
	}
	return 0, nil, fmt.Errorf("no header row with Hole and Par columns found")
}

// parseHoleRow converts one data row. Rows whose Hole cell is not a
// number (totals rows, blank padding) are skipped, not errors.
func parseHoleRow(row []string, colIdx map[string]int) (scorecardtypes.HoleRecord, bool, error) {
	var record scorecardtypes.HoleRecord

	holeCell := cellAt(row, colIdx, "Hole")
	holeNumber, err := strconv.Atoi(strings.TrimSpace(holeCell))
	if err != nil {
		return record, false, nil
	}
	record.HoleNumber = holeNumber

	par, err := strconv.Atoi(strings.TrimSpace(cellAt(row, colIdx, "Par")))
	if err != nil {
		return record, false, fmt.Errorf("hole %d: invalid par %q", holeNumber, cellAt(row, colIdx, "Par"))
	}
	record.Par = par

	if v, ok, err := optionalInt(row, colIdx, "Score"); err != nil {
		return record, false, fmt.Errorf("hole %d: %w", holeNumber, err)
	} else if ok {
		record.Score = &v
	}
	if v, ok, err := optionalInt(row, colIdx, "Putts"); err != nil {
		return record, false, fmt.Errorf("hole %d: %w", holeNumber, err)
	} else if ok {
		record.Putts = &v
	}

	if fairway := strings.TrimSpace(cellAt(row, colIdx, "Fairway")); fairway != "" {
		result := scorecardtypes.FairwayResult(strings.ToLower(fairway))
		record.FairwayResult = &result
	}
	record.Notes = strings.TrimSpace(cellAt(row, colIdx, "Notes"))

	if err := record.Validate(); err != nil {
		return record, false, err
	}
	return record, true, nil
}

func cellAt(row []string, colIdx map[string]int, name string) string {
	idx, ok := colIdx[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func optionalInt(row []string, colIdx map[string]int, name string) (int, bool, error) {
	cell := strings.TrimSpace(cellAt(row, colIdx, name))
	if cell == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(cell)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s %q", strings.ToLower(name), cell)
	}
	return v, true, nil
}
