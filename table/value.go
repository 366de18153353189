package table

import (
	"math"
	"strconv"
)

// Kind identifies which field of a Value is meaningful.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
)

// String returns the kind name used in logs and error messages
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a single cell (or filter operand). Only the field matching Kind
// is meaningful.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Str   string
}

// Null returns the missing value.
func Null() Value { return Value{Kind: KindNull} }

// IntValue wraps an integer.
func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatValue wraps a floating-point number.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IsNull reports whether v is the missing value
func (v Value) IsNull() bool { return v.Kind == KindNull }

// IsNumeric reports whether v is an Int or a Float
func (v Value) IsNumeric() bool { return v.Kind == KindInt || v.Kind == KindFloat }

// toFloat64 converts a numeric value to float64
func (v Value) toFloat64() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

// Equal reports whether two values are equal.
//
// Numbers compare numerically across Int and Float, strings compare exactly,
// and a number never equals a string. Null equals nothing, not even Null.
func (v Value) Equal(other Value) bool {
	if v.Kind == KindNull || other.Kind == KindNull {
		return false
	}
	if v.Kind == KindInt && other.Kind == KindInt {
		return v.Int == other.Int
	}
	if v.IsNumeric() && other.IsNumeric() {
		left, _ := v.toFloat64()
		right, _ := other.toFloat64()
		return left == right
	}
	if v.Kind == KindString && other.Kind == KindString {
		return v.Str == other.Str
	}
	return false
}

// Compare orders two values. It returns -1, 0 or +1 and true when the values
// are ordered with respect to each other, or false when they are not: mixed
// number/string pairs, Null, and NaN are unordered.
func (v Value) Compare(other Value) (int, bool) {
	if v.Kind == KindInt && other.Kind == KindInt {
		switch {
		case v.Int < other.Int:
			return -1, true
		case v.Int > other.Int:
			return 1, true
		default:
			return 0, true
		}
	}

	if v.IsNumeric() && other.IsNumeric() {
		left, _ := v.toFloat64()
		right, _ := other.toFloat64()
		switch {
		case left < right:
			return -1, true
		case left > right:
			return 1, true
		case left == right:
			return 0, true
		default:
			return 0, false
		}
	}

	if v.Kind == KindString && other.Kind == KindString {
		switch {
		case v.Str < other.Str:
			return -1, true
		case v.Str > other.Str:
			return 1, true
		default:
			return 0, true
		}
	}

	return 0, false
}

// String renders the value the way it is written to CSV output.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return formatFloat(v.Float)
	case KindString:
		return v.Str
	default:
		return ""
	}
}

// formatFloat keeps a trailing ".0" on integral floats so a float column
// stays recognisable as one when the output is read back.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ""
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == math.Trunc(f) && math.Abs(f) < 1e16:
		return strconv.FormatFloat(f, 'f', 1, 64)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
