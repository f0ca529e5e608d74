package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is a scalar carried through from the source document.
// The zero Value is invalid and marshals to null.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

func StringValue(s string) Value  { return Value{kind: KindString, str: s} }
func NumberValue(n float64) Value { return Value{kind: KindNumber, num: n} }
func BoolValue(b bool) Value      { return Value{kind: KindBool, b: b} }

// ValueOf converts a decoded JSON scalar. Objects, arrays and null are rejected.
func ValueOf(v any) (Value, error) {
	switch t := v.(type) {
	case string:
		return StringValue(t), nil
	case float64:
		return NumberValue(t), nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedValue, t)
		}
		return NumberValue(n), nil
	case bool:
		return BoolValue(t), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload and whether the value is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Number returns the numeric payload and whether the value is a number.
func (v Value) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Bool returns the boolean payload and whether the value is a bool.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// String formats the value for display regardless of its kind.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ValueOf(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
