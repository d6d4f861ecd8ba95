package formdoc

import (
	"strings"
	"testing"
)

func TestSchema_models(t *testing.T) {
	eq(t, formSchema.String(), "{"+testNS+"}form")
	eq(t, formSchema.Root(), formModel)
	eq(t, formSchema.Model("Visit"), visitModel)
	eq(t, formSchema.Model("Lab"), labModel)
	eq(t, formSchema.Model("Nope") == nil, true)

	models := formSchema.Models()
	eq(t, len(models), 3)
	eq(t, models[0], formModel)
}

func TestModel_props(t *testing.T) {
	eq(t, formModel.NumProps(), 7)
	p := formModel.MustProp("visit")
	eq(t, p.Kind(), KindNode)
	eq(t, p.IsRepeated(), true)
	eq(t, p.Model(), visitModel)
	eq(t, p.Index(), 5)
	eq(t, p.String(), "Form.visit")
	eq(t, p.typeName(), "Visit*")

	p = formModel.MustProp("bloodGroup")
	eq(t, p.Kind(), KindEnum)
	eq(t, p.Enum(), bloodGroupEnum)
	eq(t, p.typeName(), "BloodGroup")

	eq(t, formModel.Prop("nope") == nil, true)
	mustPanic(t, func() { formModel.MustProp("nope") })
}

func TestModel_duplicate_field(t *testing.T) {
	mustPanic(t, func() {
		NewModel("Dup", func(b *ModelBuilder) {
			b.Int("a")
			b.String("a")
		})
	})
}

func TestSchema_conflicting_model_names(t *testing.T) {
	a := NewModel("Same", func(b *ModelBuilder) { b.Int("x") })
	b := NewModel("Same", func(b *ModelBuilder) { b.Int("y") })
	root := NewModel("Root", func(mb *ModelBuilder) {
		mb.Node("a", a)
		mb.Node("b", b)
	})
	mustPanic(t, func() { NewSchema("", "root", root) })
}

func TestModel_duplicate_field_message(t *testing.T) {
	defer func() {
		msg, isString := recover().(string)
		eq(t, isString, true)
		eq(t, strings.Contains(msg, "already has field a"), true)
	}()
	NewModel("Dup", func(b *ModelBuilder) {
		b.Int("a")
		b.Int("a")
	})
}

func TestSchema_shared_model(t *testing.T) {
	shared := NewModel("Sig", func(b *ModelBuilder) { b.String("signature") })
	root := NewModel("Root", func(mb *ModelBuilder) {
		mb.Node("s1", shared)
		mb.Node("s2", shared)
	})
	sch := NewSchema("", "root", root)
	eq(t, len(sch.Models()), 2)
}

func TestEnum(t *testing.T) {
	eq(t, bloodGroupEnum.Contains("AB"), true)
	eq(t, bloodGroupEnum.Contains("Z"), false)
	eq(t, bloodGroupEnum.Contains(""), false)
	eq(t, bloodGroupEnum.Ordinal("A"), 1)
	eq(t, bloodGroupEnum.Ordinal("O"), 4)
	eq(t, bloodGroupEnum.Ordinal("Z"), 0)
	eq(t, cigsEnum.Contains(""), true)
	eq(t, bloodGroupEnum.describe(), `BloodGroup{"A", "B", "AB", "O"}`)

	toks := bloodGroupEnum.Tokens()
	toks[0] = "X"
	eq(t, bloodGroupEnum.Contains("A"), true)

	mustPanic(t, func() { NewEnum("Dup", "A", "A") })
	mustPanic(t, func() { NewEnum("Empty") })
	mustPanic(t, func() { NewEnum("Padded", " A") })
	mustPanic(t, func() { NewEnum("Control", "A\x01") })
}

func TestKind_strings(t *testing.T) {
	eq(t, KindDateTime.String(), "datetime")
	eq(t, Kind(99).String(), "invalid")
	eq(t, Nil.String(), "nil")
	eq(t, Repeated.String(), "repeated")
	eq(t, KindEnum.IsNullable(), true)
	eq(t, KindFloat.IsNullable(), false)
}
