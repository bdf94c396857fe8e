package hostapi

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the dynamic type of a host return value.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	default:
		return "other"
	}
}

// Value is a host return value: a string, a number, a boolean, null,
// undefined, or some other object known only by its display form. The zero
// Value is undefined.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

func Undefined() Value { return Value{kind: KindUndefined} }
func Null() Value { return Value{kind: KindNull} }
func String(s string) Value { return Value{kind: KindString, str: s} }
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func Other(repr string) Value { return Value{kind: KindOther, str: repr} }

// Of classifies an arbitrary Go value. A nil interface becomes null;
// unsupported types become KindOther carrying their fmt representation.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case float32:
		return Number(float64(x))
	case float64:
		return Number(x)
	default:
		return Other(fmt.Sprintf("%v", x))
	}
}

// Kind returns the dynamic type of v.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether the host returned nothing.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// String returns the display form of v. Undefined and null render as the
// empty string; numbers use the shortest decimal form.
func (v Value) String() string {
	switch v.kind {
	case KindString, KindOther:
		return v.str
	case KindNumber:
		switch {
		case math.IsNaN(v.num):
			return "NaN"
		case math.IsInf(v.num, 1):
			return "Infinity"
		case math.IsInf(v.num, -1):
			return "-Infinity"
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// GoString renders v with its kind, for log attributes and test failures.
func (v Value) GoString() string {
	switch v.kind {
	case KindUndefined, KindNull:
		return v.kind.String()
	case KindString:
		return strconv.Quote(v.str)
	default:
		return v.kind.String() + "(" + v.String() + ")"
	}
}
