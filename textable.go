package textable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrConfig           = errors.New("invalid table config")
	ErrStructure        = errors.New("invalid table structure")
	ErrIO               = errors.New("table export failed")
	ErrMissingInterface = errors.New("missing required interface")
)

// --- Core Interfaces ---

// Data provides the cells of a table. Required by [Build].
type Data interface {
	Shape() (rows, cols int)
	Cell(row, col int) Value
}

// --- Optional Interfaces ---

// Headed provides flat column labels.
// Default: the column positions "0", "1", ...
type Headed interface {
	Header() []string
}

// MultiHeaded provides hierarchical column labels: one tuple per column,
// outermost level first. A non-empty result takes precedence over [Headed].
type MultiHeaded interface {
	MultiHeader() [][]string
}

// Indexed provides one label per row.
// Default: the row positions "0", "1", ...
type Indexed interface {
	Index() []string
}

// Lines is a generated table fragment, one markup line per element.
type Lines []string

// String returns the lines joined by newlines, without a trailing newline.
func (l Lines) String() string { return strings.Join(l, "\n") }

// WriteTo writes every line followed by a newline.
func (l Lines) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, line := range l {
		m, err := io.WriteString(w, line+"\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Export writes the lines to path. See [Export].
func (l Lines) Export(path string) (string, error) { return Export(l, path) }

// table is everything a build reads from its inputs, resolved and validated
// up front so no component has to go back to the Data.
type table struct {
	data    Data
	cfg     Config
	rows    int
	cols    int
	columns ColumnSpec
	index   []string
}

// Build renders data as a table fragment. The config is validated and the
// data's shape checked before any line is produced; a failed build returns
// no lines.
func Build(data Data, cfg Config) (Lines, error) {
	t, err := resolve(data, cfg)
	if err != nil {
		return nil, err
	}

	var out Lines
	out = openTable(out, t.cfg, t.cols)
	out = writeHeader(out, t.columns, t.cfg)
	out = writeBody(out, t)
	out = closeTable(out, t.cfg)
	return out, nil
}

// Write builds the table and writes it to w.
func Write(w io.Writer, data Data, cfg Config) error {
	lines, err := Build(data, cfg)
	if err != nil {
		return err
	}
	_, err = lines.WriteTo(w)
	return err
}

// Marshal builds the table and returns the bytes.
func Marshal(data Data, cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, data, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func resolve(data Data, cfg Config) (*table, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: Build requires Data, got nil", ErrMissingInterface)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rows, cols := data.Shape()
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative shape (%d, %d)", ErrStructure, rows, cols)
	}

	columns, err := columnSpec(data, cols)
	if err != nil {
		return nil, err
	}
	if cfg.Columns != nil {
		if len(cfg.Columns) != cols {
			return nil, fmt.Errorf("%w: %d column labels for %d columns", ErrConfig, len(cfg.Columns), cols)
		}
		columns = Flat(cfg.Columns)
	}
	if cfg.Alignments != nil && len(cfg.Alignments) != cols {
		return nil, fmt.Errorf("%w: %d alignments for %d columns", ErrConfig, len(cfg.Alignments), cols)
	}

	var index []string
	if cfg.IncludeIndex {
		index = positions(rows)
		if ix, ok := data.(Indexed); ok {
			index = ix.Index()
		}
		if rows == 0 && len(index) == 0 {
			return nil, fmt.Errorf("%w: index requested for empty data without index labels", ErrStructure)
		}
		if len(index) != rows {
			return nil, fmt.Errorf("%w: %d index labels for %d rows", ErrStructure, len(index), rows)
		}
	}

	if cfg.Escape {
		columns = columns.escaped()
		index = escapeAll(index)
	}

	return &table{
		data:    data,
		cfg:     cfg,
		rows:    rows,
		cols:    cols,
		columns: columns,
		index:   index,
	}, nil
}

// columnSpec classifies the data's column labels as flat or hierarchical.
func columnSpec(data Data, cols int) (ColumnSpec, error) {
	if m, ok := data.(MultiHeaded); ok {
		if tuples := m.MultiHeader(); len(tuples) > 0 {
			return Hierarchical(tuples, cols)
		}
	}
	labels := positions(cols)
	if h, ok := data.(Headed); ok {
		if hdr := h.Header(); hdr != nil {
			labels = hdr
		}
	}
	if len(labels) != cols {
		return ColumnSpec{}, fmt.Errorf("%w: %d column labels for %d columns", ErrStructure, len(labels), cols)
	}
	return Flat(labels), nil
}

func positions(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}
