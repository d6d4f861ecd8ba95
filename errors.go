package formdoc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidEnum     = errors.New("invalid enum token")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrMalformedInput  = errors.New("malformed input")
	ErrSchemaViolation = errors.New("schema violation")
	ErrTypeMismatch    = errors.New("type mismatch")
)

// FieldError reports a rejected write to a field. Err is one of the Err*
// sentinels above.
type FieldError struct {
	Prop  *Prop
	Value Value
	Err   error
	Msg   string
}

func fieldErrf(prop *Prop, value Value, err error, format string, args ...any) error {
	return &FieldError{prop, value, err, fmt.Sprintf(format, args...)}
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func (e *FieldError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Prop.String())
	buf.WriteString(": ")
	buf.WriteString(e.Err.Error())
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
	}
	return buf.String()
}

// IndexError reports an index outside the valid range of a repeated field.
// The valid range is [0, Count) for access, replace and remove, and
// [0, Count] for insert.
type IndexError struct {
	Prop  *Prop
	Op    string
	Index int
	Count int
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s at %d: %v (count %d)", e.Prop.String(), e.Op, e.Index, ErrIndexOutOfRange, e.Count)
}

// ParseError reports why input could not be loaded as a document. Kind is
// ErrMalformedInput or ErrSchemaViolation; errors.Is matches both Kind and
// the underlying cause.
type ParseError struct {
	Kind   error
	Line   int
	Column int
	Path   string
	Msg    string
	Err    error
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func (e *ParseError) Error() string {
	var buf strings.Builder
	buf.WriteString("formdoc: ")
	buf.WriteString(e.Kind.Error())
	if e.Line > 0 {
		fmt.Fprintf(&buf, " at line %d, column %d", e.Line, e.Column)
	}
	if e.Path != "" {
		buf.WriteString(" (")
		buf.WriteString(e.Path)
		buf.WriteByte(')')
	}
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
	}
	if e.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(e.Err.Error())
	}
	return buf.String()
}
