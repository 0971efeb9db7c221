package textable

import (
	"fmt"
	"strings"
)

const (
	topRule    = `\toprule`
	midRule    = `\midrule`
	bottomRule = `\bottomrule`
	rowEnd     = `\\`
)

// writeHeader appends the top rule, the header line(s) and the mid rule.
func writeHeader(out Lines, columns ColumnSpec, cfg Config) Lines {
	out = append(out, topRule)
	if columns.IsHierarchical() {
		out = append(out, multiHeader(columns, cfg.IncludeIndex, cfg.IndexTitle)...)
	} else {
		out = append(out, flatHeader(columns.Labels(), cfg.IncludeIndex, cfg.IndexTitle))
	}
	return append(out, midRule)
}

func flatHeader(labels []string, withIndex bool, title string) string {
	cells := make([]string, len(labels))
	for i, label := range labels {
		cells[i] = "{" + label + "}"
	}
	line := strings.Join(cells, " & ") + " "
	if withIndex {
		line = indexCell(title) + line
	}
	return line + rowEnd
}

func indexCell(title string) string {
	if title == "" {
		return "&"
	}
	return "{" + title + "} &"
}

// multiHeader renders one line per label level, each followed by partial
// rules under its spans. The rules after the innermost level are left out
// unless it is also the outermost.
func multiHeader(columns ColumnSpec, withIndex bool, title string) []string {
	lead, first := "", 1
	if withIndex {
		lead, first = "&", 2
	}

	levels := spanLevels(columns.Spans())
	var out []string
	for l, spans := range levels {
		cells := make([]string, len(spans))
		widths := make([]int, len(spans))
		for i, g := range spans {
			label := g.Label
			if l == 0 {
				label = `\textbf{` + label + "}"
			}
			cells[i] = fmt.Sprintf(`\multicolumn{%d}{c}{%s}`, g.Width(), label)
			widths[i] = g.Width()
		}
		out = append(out, lead+strings.Join(cells, "&")+rowEnd)
		if l == 0 || l < len(levels)-1 {
			out = append(out, partialRules(widths, first))
		}
	}

	if withIndex && title != "" && len(out) > 0 {
		out[0] = indexCell(title) + strings.TrimPrefix(out[0], "&")
	}
	return out
}

// partialRules tiles one \cmidrule per width, left to right, starting at
// column first (1-based).
func partialRules(widths []int, first int) string {
	var sb strings.Builder
	start := first
	for _, w := range widths {
		end := start + w - 1
		fmt.Fprintf(&sb, `\cmidrule(lr){%d-%d}`, start, end)
		start = end + 1
	}
	return sb.String()
}
