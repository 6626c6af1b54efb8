package proto

import "strconv"

// Kind distinguishes integer-typed from float-typed values.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
)

// String returns the kind name as it appears in registration dumps.
func (k Kind) String() string {
	if k == KindFloat {
		return "float"
	}
	return "int"
}

// Value is a tagged numeric: either an int64 or a float64. Keeping the
// tag exact (rather than widening everything through a float) makes the
// integer/float type check precise and preserves large integers.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

// Int returns an integer-typed value.
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Float returns a float-typed value.
func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// Kind returns the value's type tag.
func (v Value) Kind() Kind { return v.kind }

// IsInt reports whether the value is integer-typed.
func (v Value) IsInt() bool { return v.kind == KindInt }

// Int64 returns the value as an int64, truncating a float value.
func (v Value) Int64() int64 {
	if v.kind == KindInt {
		return v.i
	}
	return int64(v.f)
}

// Float64 returns the value as a float64, widening an integer value.
func (v Value) Float64() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// String renders the value the way the state dump reports it: integers
// without a decimal point, floats in shortest round-trip form.
func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatInt(v.i, 10)
	}
	return strconv.FormatFloat(v.f, 'g', -1, 64)
}

// ParseValue coerces an argument value substring into a Value. The
// integer parse is attempted first and wins when it consumes the whole
// substring, so "5" is integer-typed while "5.0" is float-typed. Both
// parses must consume the entire substring; anything else is non-numeric
// and ok is false.
func ParseValue(s string) (Value, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f), true
	}
	return Value{}, false
}
