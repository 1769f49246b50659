// Package stat implements the missing-value numeric semantics used by
// the batting pipeline. A Value is an explicit optional float64; any
// arithmetic touching a missing operand, and any division whose result
// is not finite, yields missing. Division by zero is data, not an error.
package stat

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is an optional float64. The zero value is missing.
type Value struct {
	v  float64
	ok bool
}

// Of wraps a float64. Non-finite inputs coerce to missing.
func Of(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}
	return Value{v: v, ok: true}
}

// OfInt wraps an integer counting statistic.
func OfInt(n int) Value {
	return Value{v: float64(n), ok: true}
}

// Missing returns the missing marker.
func Missing() Value {
	return Value{}
}

// Parse converts a raw cell into a Value. Blank and unparseable input
// coerce to missing rather than erroring.
func Parse(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "nan") {
		return Value{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}
	}
	return Of(f)
}

// Float returns the underlying float64 and whether it is present.
func (x Value) Float() (float64, bool) {
	return x.v, x.ok
}

// IsMissing reports whether the value is absent.
func (x Value) IsMissing() bool {
	return !x.ok
}

// OrNaN returns the value, or NaN when missing. Used at boundaries that
// contractually speak in floats.
func (x Value) OrNaN() float64 {
	if !x.ok {
		return math.NaN()
	}
	return x.v
}

// Add sums the operands; missing if any operand is missing.
func Add(xs ...Value) Value {
	var sum float64
	for _, x := range xs {
		if !x.ok {
			return Value{}
		}
		sum += x.v
	}
	return Of(sum)
}

// Div divides num by den. The result is missing when either operand is
// missing or the quotient is not finite (zero or indeterminate
// denominators included). No error, no panic.
func Div(num, den Value) Value {
	if !num.ok || !den.ok {
		return Value{}
	}
	return Of(num.v / den.v)
}

// SafeDiv divides elementwise. The slices must have equal length; a
// mismatch is a programmer error and panics like an index out of range.
func SafeDiv(num, den []Value) []Value {
	if len(num) != len(den) {
		panic("stat: SafeDiv length mismatch")
	}
	out := make([]Value, len(num))
	for i := range num {
		out[i] = Div(num[i], den[i])
	}
	return out
}

// MarshalJSON encodes missing as null, present as a plain number.
func (x Value) MarshalJSON() ([]byte, error) {
	if !x.ok {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, x.v, 'g', -1, 64), nil
}

// UnmarshalJSON decodes null as missing and numbers as present.
func (x *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*x = Value{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*x = Of(f)
	return nil
}
