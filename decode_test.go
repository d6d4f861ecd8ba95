package formdoc

import (
	"errors"
	"strings"
	"testing"
)

func parseForm(body string, opts ...Option) (*Document, error) {
	return Parse([]byte(`<?xml version="1.0"?>`+"\n"+`<form xmlns="`+testNS+`" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`+body+`</form>`), formSchema, opts...)
}

func TestDecode_fields(t *testing.T) {
	doc, err := parseForm(`
		<id> 12 </id>
		<bloodGroup xsi:nil="true"/>
		<edited>2024-01-02T03:04:05</edited>
		<lab><hb>1<!-- c -->20</hb><done>1</done></lab>
		<visit><date>2024-02-03Z</date></visit>
		<visit/>
	`)
	ok(t, err)
	r := doc.Root()
	eq(t, r.Field("id").Int(), int64(12))
	eq(t, r.Field("bloodGroup").IsNil(), true)
	eq(t, r.Field("providerNo").IsAbsent(), true)
	eq(t, r.Field("edited").Time().Hour(), 3)
	eq(t, r.Child("lab").Field("hb").Text(), "120")
	eq(t, r.Child("lab").Field("done").Bool(), true)
	eq(t, r.CountRepeatedChildren("visit"), 2)
	v, err := r.RepeatedChild("visit", 0)
	ok(t, err)
	eq(t, v.Field("date").Time().Day(), 3)
}

func TestDecode_errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind error
		msg  string
	}{
		{"unknown element", `<nope/>`, ErrSchemaViolation, "unexpected element"},
		{"out of order", `<providerNo>x</providerNo><id>1</id>`, ErrSchemaViolation, "out of order"},
		{"single repeated", `<id>1</id><id>2</id>`, ErrSchemaViolation, "repeated in Form"},
		{"bad int", `<id>12x</id>`, ErrSchemaViolation, "not a valid int"},
		{"int overflow", `<id>99999999999999999999</id>`, ErrSchemaViolation, "not a valid int"},
		{"int beyond xs:int", `<id>2147483648</id>`, ErrSchemaViolation, "not a valid int"},
		{"bad float", `<visit><weight>0x10</weight></visit>`, ErrSchemaViolation, "not a valid float"},
		{"bad bool", `<lab><done>yes</done></lab>`, ErrSchemaViolation, "not a valid bool"},
		{"bad date", `<visit><date>2024-13-01</date></visit>`, ErrSchemaViolation, "not a valid date"},
		{"bad enum", `<bloodGroup>Z</bloodGroup>`, ErrSchemaViolation, `"Z" not in BloodGroup`},
		{"nil repeated", `<visit xsi:nil="true"/>`, ErrSchemaViolation, "cannot be nil"},
		{"nil with content", `<id xsi:nil="true">5</id>`, ErrSchemaViolation, "nil element has content"},
		{"element in scalar", `<id><x/></id>`, ErrSchemaViolation, "simple content"},
		{"text in complex", `<lab>oops</lab>`, ErrSchemaViolation, "unexpected text"},
		{"unknown attribute", `<id foo="1">1</id>`, ErrSchemaViolation, "unexpected attribute"},
		{"foreign namespace", `<id xmlns="urn:other">1</id>`, ErrSchemaViolation, "unexpected element"},
		{"unclosed", `<id>1`, ErrMalformedInput, ""},
		{"mismatched", `<id>1</providerNo>`, ErrMalformedInput, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseForm(tt.body)
			isErr(t, err, tt.kind)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("** got %T, wanted *ParseError", err)
			}
			if perr.Line < 1 {
				t.Errorf("** Line = %d, wanted positive", perr.Line)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("** error %q does not mention %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestDecode_enum_error_cause(t *testing.T) {
	_, err := parseForm(`<bloodGroup>Z</bloodGroup>`)
	isErr(t, err, ErrSchemaViolation)
	isErr(t, err, ErrInvalidEnum)

	var perr *ParseError
	if errors.As(err, &perr) {
		eq(t, perr.Path, "/form/bloodGroup")
		eq(t, perr.Line, 2)
	}
}

func TestDecode_document_level_errors(t *testing.T) {
	for name, input := range map[string]string{
		"empty":      ``,
		"blank":      "  \n ",
		"text":       `hello`,
		"two roots":  `<form xmlns="` + testNS + `"/><form xmlns="` + testNS + `"/>`,
		"trailing":   `<form xmlns="` + testNS + `"/>junk`,
		"not closed": `<form xmlns="` + testNS + `">`,
	} {
		_, err := Parse([]byte(input), formSchema)
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("%s: got %v, wanted malformed input", name, err)
		}
	}

	for name, input := range map[string]string{
		"wrong root":      `<other xmlns="` + testNS + `"/>`,
		"wrong namespace": `<form xmlns="urn:other"/>`,
		"no namespace":    `<form/>`,
	} {
		_, err := Parse([]byte(input), formSchema)
		if !errors.Is(err, ErrSchemaViolation) {
			t.Errorf("%s: got %v, wanted schema violation", name, err)
		}
	}
}

func TestDecode_enum_whitespace_collapsed(t *testing.T) {
	doc, err := parseForm("<bloodGroup>\n  AB \t</bloodGroup><lab><cigs>   </cigs></lab>")
	ok(t, err)
	eq(t, doc.Root().Field("bloodGroup").Enum(), "AB")
	eq(t, doc.Root().Child("lab").Field("cigs").IsPresent(), true)
	eq(t, doc.Root().Child("lab").Field("cigs").Enum(), "")
}

func TestDecode_skip_unknown(t *testing.T) {
	doc, err := parseForm(`<id>1</id><extra><deep>x</deep></extra><providerNo foo="bar">P</providerNo>`, SkipUnknown())
	ok(t, err)
	eq(t, doc.Root().Field("id").Int(), int64(1))
	eq(t, doc.Root().Field("providerNo").Text(), "P")
}

func TestDecode_max_depth(t *testing.T) {
	_, err := parseForm(`<lab><hb>x</hb></lab>`, MaxDepth(1))
	isErr(t, err, ErrSchemaViolation)

	_, err = parseForm(`<lab><hb>x</hb></lab>`, MaxDepth(2))
	ok(t, err)
}

func TestDecode_prefixed_namespace(t *testing.T) {
	doc, err := Parse([]byte(`<f:form xmlns:f="`+testNS+`"><f:id>3</f:id></f:form>`), formSchema)
	ok(t, err)
	eq(t, doc.Root().Field("id").Int(), int64(3))
}
