package textable

import (
	"math"
	"strconv"
	"strings"
)

type valueKind int

const (
	kindMissing valueKind = iota
	kindInt
	kindFloat
	kindString
	kindBool
)

// Value is a single table cell. The zero Value is missing.
type Value struct {
	kind valueKind
	i    int64
	f    float64
	s    string
	b    bool
}

// Missing returns a missing cell.
func Missing() Value { return Value{} }

// Int returns an integer cell.
func Int(i int64) Value { return Value{kind: kindInt, i: i} }

// Float returns a floating-point cell. NaN is reported as missing.
func Float(f float64) Value { return Value{kind: kindFloat, f: f} }

// String returns a text cell.
func String(s string) Value { return Value{kind: kindString, s: s} }

// Bool returns a boolean cell.
func Bool(b bool) Value { return Value{kind: kindBool, b: b} }

// IsMissing reports whether the cell has no value.
func (v Value) IsMissing() bool {
	return v.kind == kindMissing || (v.kind == kindFloat && math.IsNaN(v.f))
}

// IsNumeric reports whether the cell holds an integer or a float.
func (v Value) IsNumeric() bool { return v.kind == kindInt || v.kind == kindFloat }

// Float64 returns the numeric value of the cell and whether it has one.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case kindInt:
		return float64(v.i), true
	case kindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// String returns the natural representation of the cell: integers as
// written, floats in their shortest round-trip form with a ".0" suffix when
// integral. A missing cell renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return formatFloat(v.f)
	case kindString:
		return v.s
	case kindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Round returns the cell rounded to digits decimal places, ties to even on
// the exact binary value. Non-float cells are returned unchanged.
func (v Value) Round(digits int) Value {
	if v.kind != kindFloat || math.IsNaN(v.f) || math.IsInf(v.f, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v.f, 'f', digits, 64), 64)
	if err != nil {
		return v
	}
	return Float(r)
}

// FormatValue renders one cell. Missing cells render as fill verbatim; a nil
// precision leaves numbers unrounded.
func FormatValue(v Value, precision *int, fill string) string {
	if v.IsMissing() {
		return fill
	}
	if precision != nil {
		v = v.Round(*precision)
	}
	return v.String()
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
