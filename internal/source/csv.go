package source

import (
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/bjaus/textable"
)

// CSVOptions controls how delimited text is read.
type CSVOptions struct {
	// Delimiter separates fields. Default: comma.
	Delimiter rune

	// HeaderRows is the number of header lines. More than one makes the
	// columns hierarchical, one level per line. Default: 1.
	HeaderRows int

	// IndexCol takes the first column as the row labels and its header cell
	// as their heading.
	IndexCol bool

	// Missing lists the cell texts read as missing. Default: MissingTokens.
	Missing []string
}

// ReadCSV reads a table from delimited text. A UTF-8 or UTF-16 byte order
// mark is honoured and stripped.
func ReadCSV(r io.Reader, opts CSVOptions) (*Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(decoded)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	headerRows := opts.HeaderRows
	if headerRows <= 0 {
		headerRows = 1
	}
	if len(records) < headerRows {
		return nil, fmt.Errorf("%w: csv has %d lines, want at least %d header lines", textable.ErrStructure, len(records), headerRows)
	}
	missing := opts.Missing
	if missing == nil {
		missing = MissingTokens
	}
	tokens := tokenSet(missing)

	first := 0
	if opts.IndexCol {
		first = 1
	}
	header := records[:headerRows]
	if len(header[0]) < first {
		return nil, fmt.Errorf("%w: csv has no index column", textable.ErrStructure)
	}

	t := &Table{Frame: &textable.Frame{}}
	if headerRows == 1 {
		t.Columns = header[0][first:]
	} else {
		t.MultiColumns = headerTuples(header, first)
	}
	if opts.IndexCol {
		t.IndexName = indexName(header)
	}

	body := records[headerRows:]
	t.Rows = make([][]textable.Value, len(body))
	if opts.IndexCol {
		t.RowIndex = make([]string, len(body))
	}
	for i, rec := range body {
		if opts.IndexCol {
			t.RowIndex[i] = rec[0]
		}
		row := make([]textable.Value, len(rec)-first)
		for j, cell := range rec[first:] {
			row[j] = ParseCell(cell, tokens)
		}
		t.Rows[i] = row
	}
	return t, nil
}

// headerTuples turns header lines into one tuple per column. A blank cell on
// an outer level repeats the label to its left, as spreadsheets leave merged
// cells.
func headerTuples(header [][]string, first int) [][]string {
	var tuples [][]string
	for c := first; c < len(header[0]); c++ {
		tuple := make([]string, len(header))
		for l, line := range header {
			tuple[l] = line[c]
			if tuple[l] == "" && l < len(header)-1 && len(tuples) > 0 {
				tuple[l] = tuples[len(tuples)-1][l]
			}
		}
		tuples = append(tuples, tuple)
	}
	return tuples
}

// indexName is the innermost non-blank header cell above the index column.
func indexName(header [][]string) string {
	for l := len(header) - 1; l >= 0; l-- {
		if len(header[l]) > 0 && header[l][0] != "" {
			return header[l][0]
		}
	}
	return ""
}
