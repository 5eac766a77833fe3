package usecase

import (
	"strconv"
	"strings"
)

// Resolve looks up the price cell for (widthLabel, heightLabel) in a
// grid whose row 0 holds width labels and whose first column holds
// height labels. Header cells are compared after TrimSpace, exact
// string match only. Returns false when either label is missing or
// the cell body does not parse as a number; never an error.
func Resolve(grid [][]string, widthLabel, heightLabel string) (float64, bool) {
	if len(grid) == 0 {
		return 0, false
	}

	wIdx := -1
	for i, cell := range grid[0] {
		if i == 0 {
			// corner cell is not a width label
			continue
		}
		if strings.TrimSpace(cell) == widthLabel {
			wIdx = i
			break
		}
	}
	if wIdx < 0 {
		return 0, false
	}

	hIdx := -1
	for i, row := range grid {
		if len(row) == 0 {
			continue
		}
		if strings.TrimSpace(row[0]) == heightLabel {
			hIdx = i
			break
		}
	}
	if hIdx < 0 || wIdx >= len(grid[hIdx]) {
		return 0, false
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(grid[hIdx][wIdx]), 64)
	if err != nil {
		return 0, false
	}
	return price, true
}
