package textable

import "strings"

const endTabular = `\end{tabular}`

// writeBody appends one line per data row in input order, then the bottom
// rule and the end of the tabular environment.
func writeBody(out Lines, t *table) Lines {
	rows := make([][]string, t.rows)
	for i := range rows {
		rows[i] = rowCells(t, i)
	}
	if t.cfg.AlignSource {
		padRows(rows, columnAlignments(t.cfg, t.cols))
	}
	for _, cells := range rows {
		out = append(out, strings.Join(cells, " & ")+" "+rowEnd)
	}
	return append(out, bottomRule, endTabular)
}

func rowCells(t *table, row int) []string {
	cells := make([]string, 0, t.cols+1)
	if t.cfg.IncludeIndex {
		cells = append(cells, `\textbf{`+t.index[row]+"}")
	}
	for col := range t.cols {
		v := t.data.Cell(row, col)
		s := FormatValue(v, t.cfg.Precision, t.cfg.MissingFill)
		if t.cfg.Escape && v.kind == kindString {
			s = Escape(s)
		}
		cells = append(cells, s)
	}
	return cells
}
