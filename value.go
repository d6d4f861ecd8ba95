package formdoc

import (
	"strconv"
	"time"
)

// Value is a tagged variant holding one field value.
//
// Two special forms exist besides ordinary values:
//
//   - the nil marker (IsNil), returned for slots explicitly set to nil;
//   - null (IsNull), the default returned for absent date, datetime, enum
//     and node fields.
//
// Absent int, float, string and bool fields read as ordinary zero values.
type Value struct {
	kind   Kind
	isNil  bool
	isNull bool
	i      int64
	f      float64
	s      string
	b      bool
	t      time.Time
	n      *Node
}

func IntValue(v int64) Value     { return Value{kind: KindInt, i: v} }
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }
func StringValue(v string) Value { return Value{kind: KindString, s: v} }
func BoolValue(v bool) Value     { return Value{kind: KindBool, b: v} }
func EnumValue(tok string) Value { return Value{kind: KindEnum, s: tok} }

// DateValue keeps only the calendar date of t (in t's location).
func DateValue(t time.Time) Value {
	return Value{kind: KindDate, t: truncateToDate(t)}
}

func DateTimeValue(t time.Time) Value {
	return Value{kind: KindDateTime, t: t}
}

func nodeValue(n *Node) Value {
	return Value{kind: KindNode, n: n}
}

// NilValue returns the nil marker for the given kind.
func NilValue(kind Kind) Value {
	return Value{kind: kind, isNil: true}
}

// Zero returns the value an absent field of the given kind reads as.
func Zero(kind Kind) Value {
	return Value{kind: kind, isNull: kind.IsNullable()}
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNil() bool  { return v.isNil }
func (v Value) IsNull() bool { return v.isNull }

// IsValue reports whether v carries an actual value (neither nil nor null).
func (v Value) IsValue() bool {
	return v.kind != KindInvalid && !v.isNil && !v.isNull
}

func (v Value) Int() int64      { return v.i }
func (v Value) Float() float64  { return v.f }
func (v Value) Bool() bool      { return v.b }
func (v Value) Time() time.Time { return v.t }
func (v Value) Node() *Node     { return v.n }

// Text returns the string of a string value or the token of an enum value.
func (v Value) Text() string { return v.s }

func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.isNil != o.isNil || v.isNull != o.isNull {
		return false
	}
	if v.isNil || v.isNull {
		return true
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f || (v.f != v.f && o.f != o.f) // NaN
	case KindString, KindEnum:
		return v.s == o.s
	case KindBool:
		return v.b == o.b
	case KindDate, KindDateTime:
		return v.t.Equal(o.t)
	case KindNode:
		return Equal(v.n, o.n)
	default:
		return true
	}
}

// Lexical returns the XML text of a scalar value, or "" for nil, null and
// node values.
func (v Value) Lexical() string {
	if v.isNil || v.isNull || v.kind == KindNode || v.kind == KindInvalid {
		return ""
	}
	return formatLexical(v)
}

// String formats the value for debugging output.
func (v Value) String() string {
	if v.isNil {
		return "nil"
	}
	if v.isNull {
		return "null"
	}
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return strconv.Quote(v.s)
	case KindEnum:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return formatDate(v.t)
	case KindDateTime:
		return formatDateTime(v.t)
	case KindNode:
		if v.n == nil {
			return "null"
		}
		return "<" + v.n.model.name + ">"
	default:
		return "<invalid>"
	}
}
