package formdoc

import (
	"errors"
	"testing"
)

func TestParseError_message(t *testing.T) {
	cause := errors.New("boom")
	err := &ParseError{
		Kind:   ErrSchemaViolation,
		Line:   3,
		Column: 7,
		Path:   "/form/id",
		Msg:    "bad",
		Err:    cause,
	}
	eq(t, err.Error(), "formdoc: schema violation at line 3, column 7 (/form/id): bad: boom")
	eq(t, errors.Is(err, ErrSchemaViolation), true)
	eq(t, errors.Is(err, cause), true)
	eq(t, errors.Is(err, ErrMalformedInput), false)

	err = &ParseError{Kind: ErrMalformedInput}
	eq(t, err.Error(), "formdoc: malformed input")
}

func TestFieldError_message(t *testing.T) {
	prop := formModel.MustProp("id")
	err := fieldErrf(prop, StringValue("x"), ErrTypeMismatch, "got %s value, wanted %s", KindString, prop.typeName())
	eq(t, err.Error(), "Form.id: type mismatch: got string value, wanted int")

	var ferr *FieldError
	if !errors.As(err, &ferr) {
		t.Fatalf("** errors.As failed for %T", err)
	}
	eq(t, ferr.Prop, prop)
	eq(t, ferr.Value.Text(), "x")
}

func TestIndexError_message(t *testing.T) {
	err := &IndexError{formModel.MustProp("visit"), "insert", 4, 2}
	eq(t, err.Error(), "Form.visit: insert at 4: index out of range (count 2)")
	eq(t, errors.Is(err, ErrIndexOutOfRange), true)
}
