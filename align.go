package textable

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// columnAlignments returns the alignment of every rendered column, the index
// column first when present.
func columnAlignments(cfg Config, cols int) []Alignment {
	aligns := make([]Alignment, 0, cols+1)
	if cfg.IncludeIndex {
		aligns = append(aligns, AlignLeft)
	}
	if cfg.Alignments != nil {
		return append(aligns, cfg.Alignments...)
	}
	for range cols {
		aligns = append(aligns, AlignRight)
	}
	return aligns
}

// padRows pads every cell to its column's display width.
func padRows(rows [][]string, aligns []Alignment) {
	widths := computeWidths(len(aligns), rows)
	for _, row := range rows {
		for i, cell := range row {
			if i < len(aligns) {
				row[i] = alignCell(cell, widths[i], aligns[i])
			}
		}
	}
}

func computeWidths(numCols int, rows [][]string) []int {
	widths := make([]int, numCols)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
