package formdoc

import (
	"errors"
	"testing"
)

const testNS = "http://example.com/form"

var (
	bloodGroupEnum = NewEnum("BloodGroup", "A", "B", "AB", "O")
	cigsEnum       = NewEnum("CigsPerDay", "", "LESS10", "OVER20")

	visitModel = NewModel("Visit", func(b *ModelBuilder) {
		b.Date("date")
		b.Float("weight")
	})
	labModel = NewModel("Lab", func(b *ModelBuilder) {
		b.String("hb")
		b.Bool("done")
		b.Enum("cigs", cigsEnum)
	})
	formModel = NewModel("Form", func(b *ModelBuilder) {
		b.Int("id")
		b.String("providerNo")
		b.Enum("bloodGroup", bloodGroupEnum)
		b.DateTime("edited")
		b.Node("lab", labModel)
		b.Repeated("visit", visitModel)
		b.String("comments")
	})
	formSchema = NewSchema(testNS, "form", formModel)
)

func eq[T comparable](t testing.TB, a, e T) {
	if a != e {
		t.Helper()
		t.Fatalf("** got %v, wanted %v", a, e)
	}
}

func isErr(t testing.TB, err, target error) {
	if !errors.Is(err, target) {
		t.Helper()
		t.Fatalf("** got error %v, wanted %v", err, target)
	}
}

func ok(t testing.TB, err error) {
	if err != nil {
		t.Helper()
		t.Fatalf("** unexpected error: %v", err)
	}
}

func mustPanic(t testing.TB, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("** did not panic")
		}
	}()
	f()
}
