package yini

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which variant a [Value] holds.
type Kind int8

// The possible kinds of a YINI value.
const (
	KindString = Kind(iota)
	KindInt
	KindFloat
	KindBool
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	default:
		panic("unknown Kind")
	}
}

func (k Kind) GoString() string {
	return k.String()
}

// A Value holds exactly one YINI value: a string, an int64, a float64,
// a bool, or an ordered array of Values. Array elements are
// independently typed, so heterogeneous arrays are legal.
//
// The zero Value is the empty string.
type Value struct {
	kind Kind
	str  string
	num  int64
	real float64
	flag bool
	arr  []Value
}

// String returns a Value holding s.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int returns a Value holding n.
func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Float returns a Value holding f.
func Float(f float64) Value { return Value{kind: KindFloat, real: f} }

// Bool returns a Value holding b.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Array returns a Value holding the given elements.
func Array(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsInt() bool    { return v.kind == KindInt }
func (v Value) IsFloat() bool  { return v.kind == KindFloat }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsArray() bool  { return v.kind == KindArray }

// boolKeyword matches the literal keyword spellings of a boolean,
// case-insensitively. It does not accept "1"/"0"; those are only
// recognized by [Value.AsBool].
func boolKeyword(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true, true
	case "false", "no", "off":
		return false, true
	}
	return false, false
}

// formatFloat renders f in decimal form, always including a decimal
// point so that re-parsing the result yields a float, not an int.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// AsString renders the value as text. Strings return themselves,
// numbers render in decimal, and booleans render as "true"/"false".
// Arrays cannot be converted and return a [TypeError].
func (v Value) AsString() (string, error) {
	switch v.kind {
	case KindString:
		return v.str, nil
	case KindInt:
		return strconv.FormatInt(v.num, 10), nil
	case KindFloat:
		return formatFloat(v.real), nil
	case KindBool:
		if v.flag {
			return "true", nil
		}
		return "false", nil
	default:
		return "", &TypeError{Want: KindString, Got: v.kind}
	}
}

// AsInt coerces the value to an integer. Floats truncate toward zero
// and strings are parsed as decimal integers; booleans and arrays
// return a [TypeError].
func (v Value) AsInt() (int64, error) {
	switch v.kind {
	case KindInt:
		return v.num, nil
	case KindFloat:
		return int64(v.real), nil
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.str), 10, 64)
		if err != nil {
			return 0, &TypeError{Want: KindInt, Got: KindString, Text: v.str}
		}
		return n, nil
	default:
		return 0, &TypeError{Want: KindInt, Got: v.kind}
	}
}

// AsFloat coerces the value to a float. Ints widen and strings are
// parsed; booleans and arrays return a [TypeError].
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.real, nil
	case KindInt:
		return float64(v.num), nil
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, &TypeError{Want: KindFloat, Got: KindString, Text: v.str}
		}
		return f, nil
	default:
		return 0, &TypeError{Want: KindFloat, Got: v.kind}
	}
}

// AsBool coerces the value to a boolean. Strings match the keyword
// sets true/yes/on and false/no/off (any letter case) plus the
// literals "1" and "0"; anything else returns a [TypeError]. Ints are
// true iff nonzero. Floats and arrays cannot be converted.
func (v Value) AsBool() (bool, error) {
	switch v.kind {
	case KindBool:
		return v.flag, nil
	case KindString:
		if b, ok := boolKeyword(v.str); ok {
			return b, nil
		}
		switch strings.TrimSpace(v.str) {
		case "1":
			return true, nil
		case "0":
			return false, nil
		}
		return false, &TypeError{Want: KindBool, Got: KindString, Text: v.str}
	case KindInt:
		return v.num != 0, nil
	default:
		return false, &TypeError{Want: KindBool, Got: v.kind}
	}
}

// AsArray returns the element sequence of an array value. Any other
// variant returns a [TypeError].
func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, &TypeError{Want: KindArray, Got: v.kind}
	}
	return v.arr, nil
}

// Interface returns the value as a plain Go value: string, int64,
// float64, bool, or []any for arrays.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.real
	case KindBool:
		return v.flag
	default:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	}
}

// ValueOf converts a plain Go value into a Value. Supported inputs are
// strings, signed and unsigned integers, floats, booleans, and slices
// of supported values.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return Int(int64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case []string:
		elems := make([]Value, len(x))
		for i, s := range x {
			elems[i] = String(s)
		}
		return Array(elems...), nil
	case []any:
		elems := make([]Value, len(x))
		for i, e := range x {
			ev, err := ValueOf(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = ev
		}
		return Array(elems...), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type: %T", v)
	}
}

// Equal reports whether two values hold the same variant with equal
// contents. Arrays compare element-wise.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.num == other.num
	case KindFloat:
		return v.real == other.real
	case KindBool:
		return v.flag == other.flag
	default:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	}
}
