package source

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/textable"
)

// DecodeJSON reads one JSON document. Integral numbers decode as int and
// the rest as float64, so "2" and "2.0" stay distinct.
func DecodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return normalize(doc), nil
}

// DecodeYAML reads one YAML document.
func DecodeYAML(r io.Reader) (any, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return normalize(doc), nil
}

// normalize converts json.Number and uint64 to the number types jq
// programs accept.
func normalize(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i)
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case uint64:
		if x <= math.MaxInt64 {
			return int(x)
		}
		return float64(x)
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = normalize(e)
		}
		return x
	default:
		return v
	}
}

// FromDocument converts a decoded document into a table. Two layouts are
// accepted: an object with "columns", "data" and optionally "index" and
// "index_names", where a column may be a list of labels (one per level),
// or an array of records keyed by column name.
func FromDocument(doc any) (*Table, error) {
	switch v := doc.(type) {
	case map[string]any:
		return fromSplit(v)
	case []any:
		return fromRecords(v)
	default:
		return nil, fmt.Errorf("%w: document is %T, want object or array", textable.ErrStructure, doc)
	}
}

func fromSplit(doc map[string]any) (*Table, error) {
	columns, ok := doc["columns"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: document has no \"columns\" list", textable.ErrStructure)
	}
	data, _ := doc["data"].([]any)

	t := &Table{Frame: &textable.Frame{}}
	if err := setColumns(t.Frame, columns); err != nil {
		return nil, err
	}

	t.Rows = make([][]textable.Value, len(data))
	for i, raw := range data {
		row, ok := raw.([]any)
		if !ok || len(row) != len(columns) {
			return nil, fmt.Errorf("%w: data row %d does not have %d values", textable.ErrStructure, i, len(columns))
		}
		values := make([]textable.Value, len(row))
		for j, cell := range row {
			values[j] = toValue(cell)
		}
		t.Rows[i] = values
	}

	if index, ok := doc["index"].([]any); ok {
		labels := make([]string, len(index))
		for i, l := range index {
			labels[i] = label(l)
		}
		if err := t.SetIndex(labels); err != nil {
			return nil, err
		}
	}
	if names, ok := doc["index_names"].([]any); ok && len(names) > 0 && names[0] != nil {
		t.IndexName = label(names[0])
	}
	return t, nil
}

func setColumns(f *textable.Frame, columns []any) error {
	var flat []string
	var tuples [][]string
	for i, c := range columns {
		switch v := c.(type) {
		case []any:
			tuple := make([]string, len(v))
			for l, part := range v {
				tuple[l] = label(part)
			}
			tuples = append(tuples, tuple)
		default:
			flat = append(flat, label(v))
		}
		if flat != nil && tuples != nil {
			return fmt.Errorf("%w: column %d mixes flat and hierarchical labels", textable.ErrStructure, i)
		}
	}
	if tuples != nil {
		f.MultiColumns = tuples
		return nil
	}
	if flat == nil {
		flat = []string{}
	}
	f.Columns = flat
	return nil
}

func fromRecords(records []any) (*Table, error) {
	seen := make(map[string]bool)
	var columns []string
	objs := make([]map[string]any, len(records))
	for i, r := range records {
		obj, ok := r.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: record %d is %T, want object", textable.ErrStructure, i, r)
		}
		objs[i] = obj
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	slices.Sort(columns)
	if columns == nil {
		columns = []string{}
	}

	rows := make([][]textable.Value, len(objs))
	for i, obj := range objs {
		row := make([]textable.Value, len(columns))
		for j, c := range columns {
			row[j] = toValue(obj[c])
		}
		rows[i] = row
	}
	return &Table{Frame: &textable.Frame{Columns: columns, Rows: rows}}, nil
}
