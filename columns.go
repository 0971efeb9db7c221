package textable

import (
	"fmt"
	"slices"
)

// ColumnSpec describes the column labels of a table: either one flat label
// per column, or several levels of labels, outermost first, each with one
// label per column.
type ColumnSpec struct {
	labels []string
	levels [][]string
}

// Flat returns a single-level column spec.
func Flat(labels []string) ColumnSpec {
	return ColumnSpec{labels: slices.Clone(labels)}
}

// Hierarchical returns a multi-level column spec from one label tuple per
// column. Every tuple must have the same non-zero length.
func Hierarchical(tuples [][]string, cols int) (ColumnSpec, error) {
	if len(tuples) != cols {
		return ColumnSpec{}, fmt.Errorf("%w: %d column tuples for %d columns", ErrStructure, len(tuples), cols)
	}
	if cols == 0 {
		return ColumnSpec{}, nil
	}
	depth := len(tuples[0])
	if depth == 0 {
		return ColumnSpec{}, fmt.Errorf("%w: empty column tuple", ErrStructure)
	}
	levels := make([][]string, depth)
	for l := range levels {
		levels[l] = make([]string, cols)
	}
	for c, tuple := range tuples {
		if len(tuple) != depth {
			return ColumnSpec{}, fmt.Errorf("%w: column %d has %d levels, want %d", ErrStructure, c, len(tuple), depth)
		}
		for l, label := range tuple {
			levels[l][c] = label
		}
	}
	return ColumnSpec{levels: levels}, nil
}

// IsHierarchical reports whether the spec has label levels.
func (s ColumnSpec) IsHierarchical() bool { return len(s.levels) > 0 }

// Len returns the number of columns.
func (s ColumnSpec) Len() int {
	if s.IsHierarchical() {
		return len(s.levels[0])
	}
	return len(s.labels)
}

// Depth returns the number of label levels. Flat specs have depth 1.
func (s ColumnSpec) Depth() int {
	if s.IsHierarchical() {
		return len(s.levels)
	}
	return 1
}

// Labels returns the flat labels, or the innermost level of a hierarchical
// spec.
func (s ColumnSpec) Labels() []string {
	if s.IsHierarchical() {
		return slices.Clone(s.levels[len(s.levels)-1])
	}
	return slices.Clone(s.labels)
}

// Level returns the labels at level l, outermost first.
func (s ColumnSpec) Level(l int) []string {
	if !s.IsHierarchical() {
		if l == 0 {
			return slices.Clone(s.labels)
		}
		return nil
	}
	if l < 0 || l >= len(s.levels) {
		return nil
	}
	return slices.Clone(s.levels[l])
}

// Distinct returns the distinct labels at level l in first-occurrence order.
func (s ColumnSpec) Distinct(l int) []string {
	var out []string
	seen := make(map[string]bool)
	for _, label := range s.Level(l) {
		if !seen[label] {
			seen[label] = true
			out = append(out, label)
		}
	}
	return out
}

func (s ColumnSpec) escaped() ColumnSpec {
	if !s.IsHierarchical() {
		return ColumnSpec{labels: escapeAll(s.labels)}
	}
	levels := make([][]string, len(s.levels))
	for i, level := range s.levels {
		levels[i] = escapeAll(level)
	}
	return ColumnSpec{levels: levels}
}

// GroupSpan is a header cell covering the columns that share a label within
// one parent group.
type GroupSpan struct {
	Label    string
	Columns  []int
	Children []GroupSpan
}

// Width returns the number of columns the span covers.
func (g GroupSpan) Width() int { return len(g.Columns) }

// Spans groups the columns of a hierarchical spec into a tree, one tree
// level per label level. Flat specs have no spans.
func (s ColumnSpec) Spans() []GroupSpan {
	if !s.IsHierarchical() {
		return nil
	}
	all := make([]int, s.Len())
	for i := range all {
		all[i] = i
	}
	return groupSpans(s.levels, 0, all)
}

// groupSpans groups cols by their label at level, in order of first
// appearance, then groups each group's columns at the next level. Spans of a
// level never cross a parent boundary.
func groupSpans(levels [][]string, level int, cols []int) []GroupSpan {
	if level >= len(levels) || len(cols) == 0 {
		return nil
	}
	var groups []GroupSpan
	at := make(map[string]int)
	for _, c := range cols {
		label := levels[level][c]
		if i, ok := at[label]; ok {
			groups[i].Columns = append(groups[i].Columns, c)
			continue
		}
		at[label] = len(groups)
		groups = append(groups, GroupSpan{Label: label, Columns: []int{c}})
	}
	for i := range groups {
		groups[i].Children = groupSpans(levels, level+1, groups[i].Columns)
	}
	return groups
}

// spanLevels flattens a span tree breadth-first: element l holds the spans
// of level l, left to right across all parents.
func spanLevels(roots []GroupSpan) [][]GroupSpan {
	var out [][]GroupSpan
	for level := roots; len(level) > 0; {
		out = append(out, level)
		var next []GroupSpan
		for _, g := range level {
			next = append(next, g.Children...)
		}
		level = next
	}
	return out
}
