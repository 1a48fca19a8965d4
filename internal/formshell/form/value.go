package form

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind enumerates the shapes a field value can take.
type Kind int

const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
)

// Value is the tagged union held by a field: a string, a number, a bool,
// a list of strings, or absent.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	list []string
}

// Absent returns the absent value.
func Absent() Value { return Value{} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue wraps a number.
func NumberValue(n float64) Value { return Value{kind: KindNumber, num: n} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// ListValue wraps a list of strings. The slice is copied.
func ListValue(items []string) Value {
	out := make([]string, len(items))
	copy(out, items)
	return Value{kind: KindList, list: out}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the value is absent.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Str returns the string payload. ok is false for other kinds.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Num returns the numeric payload. ok is false for other kinds.
func (v Value) Num() (float64, bool) { return v.num, v.kind == KindNumber }

// Bool returns the boolean payload. ok is false for other kinds.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// List returns a copy of the list payload. ok is false for other kinds.
func (v Value) List() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out, true
}

// Text renders the value as a plain string for condition comparison.
// Absent renders as "".
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindList:
		return strings.Join(v.list, ",")
	default:
		return ""
	}
}

// Truthy reports whether the value counts as "set": absent, "", false and
// an empty list are falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindString:
		return strings.TrimSpace(v.str) != ""
	case KindNumber:
		return true
	case KindBool:
		return v.b
	case KindList:
		return len(v.list) > 0
	default:
		return false
	}
}

// MarshalJSON serializes the payload; absent serializes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindList:
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

// FormData maps field ids to their current values. It is derived on demand
// from the session's steps, never stored.
type FormData map[string]Value
