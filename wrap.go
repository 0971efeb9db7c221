package textable

import (
	"fmt"
	"strings"
)

const (
	beginTable      = `\begin{table}[H]`
	endTable        = `\end{table}`
	beginSideways   = `\begin{sidewaystable}`
	endSideways     = `\end{sidewaystable}`
	centering       = `\centering`
	beginScale      = `\scalebox{0.6}{`
	endScale        = `}`
	beginThreePart  = `\begin{threeparttable}`
	endThreePart    = `\end{threeparttable}`
	beginTableNotes = `\begin{tablenotes}`
	endTableNotes   = `\end{tablenotes}`
	noteItem        = `\item`
)

// openTable appends the float environment, the optional wrappers, the
// caption and the start of the tabular environment. The threeparttable
// nests inside the rotation scale box.
func openTable(out Lines, cfg Config, cols int) Lines {
	if cfg.Sideways {
		out = append(out, beginSideways, centering, beginScale)
	} else {
		out = append(out, beginTable, centering)
	}
	if cfg.ThreePartTable {
		out = append(out, beginThreePart)
	}
	out = append(out, fmt.Sprintf(`\caption{%s} \label{%s}`, cfg.Caption, cfg.Label))
	return append(out, `\begin{tabular}{`+alignSpec(cfg, cols)+"}")
}

// closeTable closes what openTable opened, innermost first. The tabular
// environment itself is closed by writeBody.
func closeTable(out Lines, cfg Config) Lines {
	if cfg.ThreePartTable {
		out = append(out, beginTableNotes)
		if len(cfg.Notes) == 0 {
			out = append(out, noteItem)
		}
		for _, note := range cfg.Notes {
			out = append(out, noteItem+" "+note)
		}
		out = append(out, endTableNotes, endThreePart)
	}
	if cfg.Sideways {
		return append(out, endScale, endSideways)
	}
	return append(out, endTable)
}

func alignSpec(cfg Config, cols int) string {
	var sb strings.Builder
	for _, a := range columnAlignments(cfg, cols) {
		sb.WriteString(a.Token())
	}
	return sb.String()
}
