package pipeline

import (
	"math"
	"slices"
	"sort"

	"github.com/ppiankov/cardex/internal/model"
)

// SortLayout orders OCR lines top-to-bottom, then left-to-right. Lines whose
// vertical position is within tolerance of a row's first line share the row.
func SortLayout(ocr []model.OCRLine, tolerance float64) []model.OCRLine {
	byY := slices.Clone(ocr)
	sort.SliceStable(byY, func(i, j int) bool { return byY[i].Box.Y < byY[j].Box.Y })

	var rows [][]model.OCRLine
	for _, l := range byY {
		if n := len(rows); n > 0 && math.Abs(l.Box.Y-rows[n-1][0].Box.Y) <= tolerance {
			rows[n-1] = append(rows[n-1], l)
			continue
		}
		rows = append(rows, []model.OCRLine{l})
	}

	out := make([]model.OCRLine, 0, len(ocr))
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].Box.X < row[j].Box.X })
		out = append(out, row...)
	}
	return out
}

// HeaderCount returns how many leading lines of a sorted layout lie in the
// top fraction of its vertical extent
func HeaderCount(sorted []model.OCRLine, fraction float64) int {
	if len(sorted) == 0 {
		return 0
	}
	top, bottom := math.Inf(1), math.Inf(-1)
	for _, l := range sorted {
		top = min(top, l.Box.Y)
		bottom = max(bottom, l.Box.Y+l.Box.H)
	}
	cutoff := top + fraction*(bottom-top)

	n := 0
	for _, l := range sorted {
		if l.Box.Y > cutoff {
			break
		}
		n++
	}
	return n
}
