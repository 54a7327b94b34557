package geolib

import (
	"encoding/json"
	"strconv"
)

// ValueKind defines which scalar is stored in Value.
type ValueKind uint8

const (
	ValueNull ValueKind = iota
	ValueString
	ValueFloat
	ValueInt
)

// Value is an optional scalar: a cell of the output column. Zero value
// is null.
type Value struct {
	kind  ValueKind
	str   string
	num   float64
	integ int64
}

func Null() Value {
	return Value{}
}

func NewString(s string) Value {
	return Value{kind: ValueString, str: s}
}

func NewFloat(f float64) Value {
	return Value{kind: ValueFloat, num: f}
}

func NewInt(i int64) Value {
	return Value{kind: ValueInt, integ: i}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == ValueNull
}

// Str returns a string and true if value is a string.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == ValueString
}

// Float returns a float and true if value is a float.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == ValueFloat
}

// Int returns an integer and true if value is an integer.
func (v Value) Int() (int64, bool) {
	return v.integ, v.kind == ValueInt
}

// Interface returns nil, string, float64 or int64.
func (v Value) Interface() interface{} {
	switch v.kind {
	case ValueString:
		return v.str
	case ValueFloat:
		return v.num
	case ValueInt:
		return v.integ
	}

	return nil
}

// String renders a value for text outputs. Null is an empty string,
// floats are rendered in the shortest form which parses back to the
// same number.
func (v Value) String() string {
	switch v.kind {
	case ValueString:
		return v.str
	case ValueFloat:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case ValueInt:
		return strconv.FormatInt(v.integ, 10)
	}

	return ""
}

// MarshalJSON is to conform json.Marshaller interface.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
