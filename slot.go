package formdoc

import (
	"math"
	"time"
)

// Slot is a handle to one field of a node. It is a small value and can be
// copied freely; all reads and writes go through the owning node's mutex.
//
// Reads never fail: an absent field reads as 0, "", false, or null depending
// on its kind. Writes are validated and either succeed or leave the field
// untouched.
//
// For repeated fields the slot only reports presence (any children or none)
// and supports Unset, which removes all children; use the node's repeated
// child operations for everything else.
type Slot struct {
	node *Node
	prop *Prop
}

func (s Slot) Name() string             { return s.prop.name }
func (s Slot) Prop() *Prop              { return s.prop }
func (s Slot) Kind() Kind               { return s.prop.kind }
func (s Slot) Cardinality() Cardinality { return s.prop.card }

func (s Slot) State() State {
	s.node.mu.Lock()
	defer s.node.mu.Unlock()
	if f := s.node.lookup(s.prop); f != nil {
		return f.state
	}
	return Absent
}

func (s Slot) IsPresent() bool { return s.State() == Present }
func (s Slot) IsNil() bool     { return s.State() == Nil }
func (s Slot) IsAbsent() bool  { return s.State() == Absent }

// Get returns the stored value when present, the nil marker when nil, and
// Zero(kind) when absent.
func (s Slot) Get() Value {
	s.node.mu.Lock()
	defer s.node.mu.Unlock()
	f := s.node.lookup(s.prop)
	if f == nil || s.prop.card == Repeated {
		return Zero(s.prop.kind)
	}
	switch f.state {
	case Present:
		return f.val
	case Nil:
		return NilValue(s.prop.kind)
	default:
		return Zero(s.prop.kind)
	}
}

func (s Slot) Int() int64      { return s.Get().Int() }
func (s Slot) Float() float64  { return s.Get().Float() }
func (s Slot) Text() string    { return s.Get().Text() }
func (s Slot) Bool() bool      { return s.Get().Bool() }
func (s Slot) Time() time.Time { return s.Get().Time() }
func (s Slot) Node() *Node     { return s.Get().Node() }

// Enum returns the enum token, or "" when the field holds no token. Use
// IsPresent to tell an absent field from a declared empty token.
func (s Slot) Enum() string { return s.Get().Text() }

// Set validates v against the field and stores it. A nil marker is the same
// as SetNil. Node values are rejected; use Node.AddChild or Node.SetChild.
func (s Slot) Set(v Value) error {
	if err := s.validate(v); err != nil {
		return err
	}
	if v.isNil {
		s.SetNil()
		return nil
	}
	if v.kind == KindDate {
		v.t = truncateToDate(v.t)
	}
	s.node.mu.Lock()
	defer s.node.mu.Unlock()
	f := s.node.ensure(s.prop)
	f.state, f.val = Present, v
	return nil
}

func (s Slot) validate(v Value) error {
	prop := s.prop
	if prop.card == Repeated {
		return fieldErrf(prop, v, ErrTypeMismatch, "repeated element cannot be assigned a value")
	}
	if v.kind != prop.kind {
		return fieldErrf(prop, v, ErrTypeMismatch, "got %s value, wanted %s", v.kind, prop.typeName())
	}
	if v.isNil {
		return nil
	}
	if v.isNull {
		return fieldErrf(prop, v, ErrTypeMismatch, "cannot assign null, use Unset")
	}
	switch prop.kind {
	case KindNode:
		return fieldErrf(prop, v, ErrTypeMismatch, "child elements are assigned with AddChild or SetChild")
	case KindInt:
		if v.i < math.MinInt32 || v.i > math.MaxInt32 {
			return fieldErrf(prop, v, ErrTypeMismatch, "%d is out of xs:int range", v.i)
		}
	case KindString:
		if !isXMLText(v.s) {
			return fieldErrf(prop, v, ErrTypeMismatch, "text is not valid UTF-8 or contains characters XML cannot hold")
		}
	case KindEnum:
		if !prop.enum.Contains(v.s) {
			return fieldErrf(prop, v, ErrInvalidEnum, "%q not in %s", v.s, prop.enum.describe())
		}
	case KindDate, KindDateTime:
		if !inYearRange(v.t) {
			return fieldErrf(prop, v, ErrTypeMismatch, "year %d is outside %04d..%04d", v.t.Year(), minYear, maxYear)
		}
		if prop.kind == KindDateTime && !wholeMinuteZone(v.t) {
			return fieldErrf(prop, v, ErrTypeMismatch, "zone offset is not a whole number of minutes")
		}
	}
	return nil
}

func (s Slot) SetInt(v int64) error     { return s.Set(IntValue(v)) }
func (s Slot) SetFloat(v float64) error { return s.Set(FloatValue(v)) }
func (s Slot) SetText(v string) error   { return s.Set(StringValue(v)) }
func (s Slot) SetBool(v bool) error     { return s.Set(BoolValue(v)) }
func (s Slot) SetEnum(tok string) error { return s.Set(EnumValue(tok)) }

// SetTime stores t into a date or datetime field.
func (s Slot) SetTime(t time.Time) error {
	if s.prop.kind == KindDate {
		return s.Set(DateValue(t))
	}
	return s.Set(DateTimeValue(t))
}

// SetNil marks the field as explicitly having no value, which is different
// from the field being absent. Setting a child element to nil drops the
// child. Panics for repeated fields.
func (s Slot) SetNil() {
	if s.prop.card == Repeated {
		panic(s.prop.String() + ": repeated element cannot be nil")
	}
	s.node.mu.Lock()
	defer s.node.mu.Unlock()
	f := s.node.ensure(s.prop)
	f.state, f.val = Nil, Value{}
}

// Unset returns the field to the Absent state, discarding any value or
// children.
func (s Slot) Unset() {
	s.node.mu.Lock()
	defer s.node.mu.Unlock()
	if f := s.node.lookup(s.prop); f != nil {
		*f = field{}
	}
}
