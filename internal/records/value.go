package records

import (
	"encoding/json"
	"math"
	"strconv"
)

// NotUsedText is how a slot that a product variant leaves empty is rendered.
const NotUsedText = "Not used"

// Kind tags the payload carried by a Value.
type Kind uint8

const (
	KindNotUsed Kind = iota
	KindUint
	KindInt
	KindFloat
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return "not_used"
	}
}

// Value is a decoded field value: an unsigned or signed integer, a float,
// a text label, or the "Not used" marker.
type Value struct {
	kind Kind
	u    uint64
	i    int64
	f    float64
	s    string
}

func Uint(v uint64) Value { return Value{kind: KindUint, u: v} }
func Int(v int64) Value { return Value{kind: KindInt, i: v} }
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }
func Text(v string) Value { return Value{kind: KindText, s: v} }
func NotUsed() Value { return Value{kind: KindNotUsed} }

func (v Value) Kind() Kind { return v.kind }

// IsNotUsed reports whether the slot was left empty by the variant policy.
func (v Value) IsNotUsed() bool { return v.kind == KindNotUsed }

// IsNumeric reports whether the value carries a number.
func (v Value) IsNumeric() bool {
	return v.kind == KindUint || v.kind == KindInt || v.kind == KindFloat
}

// Float64 returns numeric values widened to float64.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindUint:
		return float64(v.u), true
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Int64 returns integer values; floats are not converted.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindUint:
		return int64(v.u), true
	case KindInt:
		return v.i, true
	default:
		return 0, false
	}
}

// Text returns the label carried by text values.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.s, true
}

// Interface returns the value as uint64, int64, float64 or string.
func (v Value) Interface() any {
	switch v.kind {
	case KindUint:
		return v.u
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	default:
		return NotUsedText
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindText:
		return v.s
	default:
		return NotUsedText
	}
}

// MarshalJSON renders numbers as JSON numbers and everything else as
// strings. Non-finite floats are rendered as strings since JSON has no
// literal for them.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindUint, KindInt:
		return []byte(v.String()), nil
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return json.Marshal(formatFloat(v.f))
		}
		return []byte(formatFloat(v.f)), nil
	default:
		return json.Marshal(v.String())
	}
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
