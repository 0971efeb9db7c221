// Package source reads tables from files, documents and databases.
//
// Every reader returns a [Table]: a [textable.Frame] plus the heading of
// its row labels when the source carries one. Cells are converted to
// [textable.Value]s so integers, floats, text and missing values keep their
// identity through rendering.
package source

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bjaus/textable"
)

// Table is a frame read from an external source.
type Table struct {
	*textable.Frame

	// IndexName is the heading of the row labels, if the source has one.
	IndexName string
}

// MissingTokens are the cell texts read as missing by default.
var MissingTokens = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "None", "<NA>"}

// numericRegex matches integers, decimals and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseCell converts CSV text to a value: missing tokens, then integers,
// then floats, then text.
func ParseCell(s string, missing map[string]bool) textable.Value {
	t := strings.TrimSpace(s)
	if missing[t] {
		return textable.Missing()
	}
	if numericRegex.MatchString(t) {
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return textable.Int(i)
		}
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return textable.Float(f)
		}
	}
	return textable.String(s)
}

func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// toValue converts a decoded JSON, YAML or jq value.
func toValue(v any) textable.Value {
	switch x := v.(type) {
	case nil:
		return textable.Missing()
	case bool:
		return textable.Bool(x)
	case int:
		return textable.Int(int64(x))
	case int64:
		return textable.Int(x)
	case uint64:
		if x <= math.MaxInt64 {
			return textable.Int(int64(x))
		}
		return textable.Float(float64(x))
	case float64:
		return textable.Float(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return textable.Int(i)
		}
		if f, err := x.Float64(); err == nil {
			return textable.Float(f)
		}
		return textable.String(x.String())
	case *big.Int:
		if x.IsInt64() {
			return textable.Int(x.Int64())
		}
		f, _ := new(big.Float).SetInt(x).Float64()
		return textable.Float(f)
	case string:
		return textable.String(x)
	case time.Time:
		return textable.String(formatTime(x))
	default:
		return textable.String(fmt.Sprint(x))
	}
}

// label renders a column or row label.
func label(v any) string { return toValue(v).String() }

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}
