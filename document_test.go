package formdoc

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestDocument_concrete_scenario(t *testing.T) {
	doc := NewDocument(formSchema)
	root := doc.Root()
	ok(t, root.Field("id").SetInt(12345))
	ok(t, root.Field("providerNo").SetText("P001"))
	ok(t, root.Field("bloodGroup").SetEnum("A"))
	ok(t, root.AppendRepeatedChild("visit").Field("weight").SetFloat(70.5))
	ok(t, root.AppendRepeatedChild("visit").Field("weight").SetFloat(72.0))

	data, err := doc.Serialize()
	ok(t, err)

	parsed, err := Parse(data, formSchema)
	ok(t, err)
	r := parsed.Root()
	eq(t, r.Field("id").Int(), int64(12345))
	eq(t, r.Field("providerNo").Text(), "P001")
	eq(t, r.Field("bloodGroup").Enum(), "A")
	eq(t, r.CountRepeatedChildren("visit"), 2)
	v1, err := r.RepeatedChild("visit", 1)
	ok(t, err)
	eq(t, v1.Field("weight").Float(), 72.0)
	eq(t, parsed.Equal(doc), true)
}

func TestDocument_serialize_format(t *testing.T) {
	doc := NewDocument(formSchema)
	root := doc.Root()
	ok(t, root.Field("id").SetInt(7))
	root.Field("bloodGroup").SetNil()
	ok(t, root.AppendRepeatedChild("visit").Field("date").SetTime(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	ok(t, root.Field("comments").SetText("a < b & c"))

	data, err := doc.Serialize(OmitHeader())
	ok(t, err)
	eq(t, string(data), `<form xmlns="`+testNS+`" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`+
		`<id>7</id><bloodGroup xsi:nil="true"></bloodGroup><visit><date>2024-01-02</date></visit>`+
		`<comments>a &lt; b &amp; c</comments></form>`+"\n")

	data, err = NewDocument(formSchema).Serialize()
	ok(t, err)
	eq(t, string(data), `<?xml version="1.0" encoding="UTF-8"?>`+"\n"+`<form xmlns="`+testNS+`"></form>`+"\n")
}

func TestDocument_indent(t *testing.T) {
	doc := NewDocument(formSchema)
	ok(t, doc.Root().Field("id").SetInt(1))
	ok(t, doc.Root().AddChild("lab").Field("hb").SetText("120"))

	data, err := doc.Serialize(OmitHeader(), Indent("", "  "))
	ok(t, err)
	eq(t, string(data), `<form xmlns="`+testNS+`">
  <id>1</id>
  <lab>
    <hb>120</hb>
  </lab>
</form>
`)
}

func TestDocument_round_trip(t *testing.T) {
	doc := NewDocument(formSchema)
	root := doc.Root()
	ok(t, root.Field("id").SetInt(-42))
	root.Field("providerNo").SetNil()
	ok(t, root.Field("bloodGroup").SetEnum("AB"))
	ok(t, root.Field("edited").SetTime(time.Date(2024, 5, 6, 7, 8, 9, 123000000, time.FixedZone("", -7*3600))))
	lab := root.AddChild("lab")
	ok(t, lab.Field("hb").SetText("  spaced  "))
	ok(t, lab.Field("done").SetBool(false))
	ok(t, lab.Field("cigs").SetEnum(""))
	for _, w := range []float64{70.5, math.Inf(1), math.NaN(), 0} {
		ok(t, root.AppendRepeatedChild("visit").Field("weight").SetFloat(w))
	}
	v, err := root.RepeatedChild("visit", 3)
	ok(t, err)
	v.Field("date").SetNil()
	ok(t, root.Field("comments").SetText(""))

	for _, opts := range [][]Option{nil, {Indent("", "\t")}, {OmitHeader()}} {
		data, err := doc.Serialize(opts...)
		ok(t, err)
		parsed, err := Parse(data, formSchema)
		ok(t, err)
		if !parsed.Equal(doc) {
			t.Fatalf("** round trip mismatch:\n%s\n%s\n%s", data, root.Dump(), parsed.Root().Dump())
		}
		eq(t, parsed.Root().Field("comments").IsPresent(), true)
		eq(t, parsed.Root().Field("providerNo").IsNil(), true)
		eq(t, parsed.Root().Child("lab").Field("cigs").IsPresent(), true)
	}
}

func TestDocument_round_trip_edges(t *testing.T) {
	text := func(s string) func(*Node) error {
		return func(r *Node) error { return r.Field("providerNo").SetText(s) }
	}
	edited := func(tm time.Time) func(*Node) error {
		return func(r *Node) error { return r.Field("edited").SetTime(tm) }
	}
	visitDate := func(tm time.Time) func(*Node) error {
		return func(r *Node) error { return r.AppendRepeatedChild("visit").Field("date").SetTime(tm) }
	}
	id := func(i int64) func(*Node) error {
		return func(r *Node) error { return r.Field("id").SetInt(i) }
	}
	tests := []struct {
		name   string
		set    func(*Node) error
		reject bool
	}{
		{"whitespace controls", text("a\tb\nc\r\nd\r"), false},
		{"markup characters", text(`<a & "b">`), false},
		{"astral plane", text("clef \U0001D11E"), false},
		{"control character", text("P\x01"), true},
		{"invalid utf8", text("P\xff1"), true},
		{"noncharacter", text("P\uFFFE"), true},
		{"date year 0", visitDate(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)), false},
		{"date year 9999", visitDate(time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)), false},
		{"date year 10000", visitDate(time.Date(10000, 1, 2, 0, 0, 0, 0, time.UTC)), true},
		{"date year -1", visitDate(time.Date(-1, 1, 2, 0, 0, 0, 0, time.UTC)), true},
		{"datetime year 0", edited(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)), false},
		{"datetime year 9999", edited(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.FixedZone("", 14*3600))), false},
		{"datetime year 10000", edited(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)), true},
		{"datetime half-hour zone", edited(time.Date(2024, 3, 4, 5, 6, 7, 0, time.FixedZone("", -(9*3600+30*60)))), false},
		{"datetime sub-minute zone", edited(time.Date(2024, 3, 4, 5, 6, 7, 0, time.FixedZone("", 3600+30))), true},
		{"int max", id(math.MaxInt32), false},
		{"int min", id(math.MinInt32), false},
		{"int above xs:int", id(math.MaxInt32 + 1), true},
		{"int below xs:int", id(math.MinInt32 - 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument(formSchema)
			err := tt.set(doc.Root())
			if tt.reject {
				isErr(t, err, ErrTypeMismatch)
				eq(t, doc.Root().Field("providerNo").IsAbsent(), true)
				eq(t, doc.Root().Field("edited").IsAbsent(), true)
				eq(t, doc.Root().Field("id").IsAbsent(), true)
				return
			}
			ok(t, err)
			data, err := doc.Serialize()
			ok(t, err)
			parsed, err := Parse(data, formSchema)
			ok(t, err)
			if !parsed.Equal(doc) {
				t.Fatalf("** round trip mismatch:\n%s\n%s\n%s", data, doc.Root().Dump(), parsed.Root().Dump())
			}
		})
	}
}

func TestDocument_clone(t *testing.T) {
	doc := NewDocument(formSchema)
	ok(t, doc.Root().Field("id").SetInt(1))
	c := doc.Clone()
	eq(t, c.Equal(doc), true)
	ok(t, c.Root().Field("id").SetInt(2))
	eq(t, doc.Root().Field("id").Int(), int64(1))
	eq(t, c.Equal(doc), false)
	eq(t, c.Schema(), formSchema)
}

func TestDocument_encode_decode_stream(t *testing.T) {
	doc := NewDocument(formSchema)
	ok(t, doc.Root().Field("providerNo").SetText("P9"))
	var buf bytes.Buffer
	ok(t, doc.Encode(&buf))
	parsed, err := Decode(strings.NewReader(buf.String()), formSchema)
	ok(t, err)
	eq(t, parsed.Root().Field("providerNo").Text(), "P9")
}

func TestOptions_invalid(t *testing.T) {
	_, err := Parse([]byte("<form/>"), formSchema, MaxDepth(0))
	eq(t, err != nil, true)
	_, err = NewDocument(formSchema).Serialize(MaxDepth(-1))
	eq(t, err != nil, true)
}
