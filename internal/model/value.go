package model

import (
	"strconv"

	"notify-generator/internal/common"
)

// ValueKind is the kind of a typed attribute constant.
type ValueKind int

const (
	ValueString ValueKind = iota + 1
	ValueBool
)

// String returns a human-readable kind name.
func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	case ValueBool:
		return "bool"
	default:
		return common.UnknownStr
	}
}

// Value is a typed constant taken from an attribute argument.
// The zero Value has no kind and is never stored in Attributes.
type Value struct {
	kind ValueKind
	str  string
	b    bool
}

// StringValue returns a string constant.
func StringValue(s string) Value {
	return Value{kind: ValueString, str: s}
}

// BoolValue returns a bool constant.
func BoolValue(b bool) Value {
	return Value{kind: ValueBool, b: b}
}

// Kind returns the kind of the constant.
func (v Value) Kind() ValueKind {
	return v.kind
}

// AsString returns the string payload and whether v is a string.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == ValueString
}

// AsBool returns the bool payload and whether v is a bool.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == ValueBool
}

// String formats the constant for messages.
func (v Value) String() string {
	switch v.kind {
	case ValueString:
		return strconv.Quote(v.str)
	case ValueBool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}

// Attributes maps attribute argument names to their constants.
// A missing key means the argument was not supplied.
type Attributes map[string]Value

// Lookup returns the constant for key, if present.
func (a Attributes) Lookup(key string) (Value, bool) {
	v, ok := a[key]
	return v, ok
}
