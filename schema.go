package formdoc

import (
	"fmt"
)

// Schema describes one document type: the namespace shared by all elements,
// the root element name, and the model of the root element.
type Schema struct {
	namespace string
	rootName  string
	root      *Model

	modelsByName map[string]*Model
	models       []*Model
}

func NewSchema(namespace, rootName string, root *Model) *Schema {
	if rootName == "" {
		panic("schema root element name missing")
	}
	if root == nil {
		panic(fmt.Sprintf("schema %s: root model missing", rootName))
	}
	sch := &Schema{
		namespace:    namespace,
		rootName:     rootName,
		root:         root,
		modelsByName: make(map[string]*Model),
	}
	sch.addModel(root)
	return sch
}

func (sch *Schema) addModel(model *Model) {
	if prior := sch.modelsByName[model.name]; prior != nil {
		if prior != model {
			panic(fmt.Sprintf("schema %s: two different models named %s", sch.rootName, model.name))
		}
		return
	}
	sch.modelsByName[model.name] = model
	sch.models = append(sch.models, model)
	for _, prop := range model.props {
		if prop.model != nil {
			sch.addModel(prop.model)
		}
	}
}

func (sch *Schema) Namespace() string { return sch.namespace }
func (sch *Schema) RootName() string  { return sch.rootName }
func (sch *Schema) Root() *Model      { return sch.root }

func (sch *Schema) String() string {
	if sch.namespace == "" {
		return sch.rootName
	}
	return "{" + sch.namespace + "}" + sch.rootName
}

// Model returns the model with the given name reachable from the root, or nil.
func (sch *Schema) Model(name string) *Model {
	return sch.modelsByName[name]
}

// Models returns all models reachable from the root, root first.
func (sch *Schema) Models() []*Model {
	return append([]*Model(nil), sch.models...)
}

// Model is a complex type: an ordered list of props. Declaration order is the
// element order used for serialization and enforced on parse.
type Model struct {
	name        string
	props       []*Prop
	propsByName map[string]*Prop
}

func NewModel(name string, build func(b *ModelBuilder)) *Model {
	if name == "" {
		panic("model name missing")
	}
	model := &Model{
		name:        name,
		propsByName: make(map[string]*Prop),
	}
	if build != nil {
		b := ModelBuilder{model: model}
		build(&b)
	}
	return model
}

func (model *Model) Name() string   { return model.name }
func (model *Model) String() string { return model.name }
func (model *Model) NumProps() int  { return len(model.props) }

func (model *Model) Props() []*Prop {
	return append([]*Prop(nil), model.props...)
}

func (model *Model) Prop(name string) *Prop {
	return model.propsByName[name]
}

func (model *Model) MustProp(name string) *Prop {
	prop := model.propsByName[name]
	if prop == nil {
		panic(fmt.Sprintf("%s does not have field %s", model.name, name))
	}
	return prop
}

// Prop is a named field of a model.
type Prop struct {
	owner *Model
	name  string
	kind  Kind
	card  Cardinality
	enum  *EnumType
	model *Model
	index int
}

func (p *Prop) Name() string             { return p.name }
func (p *Prop) Kind() Kind               { return p.kind }
func (p *Prop) Cardinality() Cardinality { return p.card }
func (p *Prop) IsRepeated() bool         { return p.card == Repeated }
func (p *Prop) Enum() *EnumType          { return p.enum }
func (p *Prop) Owner() *Model            { return p.owner }

// Index is the declaration position of the prop within its model.
func (p *Prop) Index() int { return p.index }

// Model returns the child model of a node prop, nil for scalar props.
func (p *Prop) Model() *Model { return p.model }

func (p *Prop) String() string {
	return p.owner.name + "." + p.name
}

func (p *Prop) typeName() string {
	switch p.kind {
	case KindEnum:
		return p.enum.name
	case KindNode:
		if p.card == Repeated {
			return p.model.name + "*"
		}
		return p.model.name
	default:
		return p.kind.String()
	}
}

type ModelBuilder struct {
	model *Model
}

func (b *ModelBuilder) add(name string, kind Kind, card Cardinality, enum *EnumType, child *Model) {
	if name == "" {
		panic(fmt.Sprintf("model %s: field name missing", b.model.name))
	}
	if prior := b.model.propsByName[name]; prior != nil {
		panic(fmt.Sprintf("model %s already has field %s", b.model.name, name))
	}
	p := &Prop{
		owner: b.model,
		name:  name,
		kind:  kind,
		card:  card,
		enum:  enum,
		model: child,
		index: len(b.model.props),
	}
	b.model.props = append(b.model.props, p)
	b.model.propsByName[name] = p
}

func (b *ModelBuilder) Int(name string)      { b.add(name, KindInt, Single, nil, nil) }
func (b *ModelBuilder) Float(name string)    { b.add(name, KindFloat, Single, nil, nil) }
func (b *ModelBuilder) String(name string)   { b.add(name, KindString, Single, nil, nil) }
func (b *ModelBuilder) Bool(name string)     { b.add(name, KindBool, Single, nil, nil) }
func (b *ModelBuilder) Date(name string)     { b.add(name, KindDate, Single, nil, nil) }
func (b *ModelBuilder) DateTime(name string) { b.add(name, KindDateTime, Single, nil, nil) }

func (b *ModelBuilder) Enum(name string, enum *EnumType) {
	if enum == nil {
		panic(fmt.Sprintf("model %s: field %s: enum type missing", b.model.name, name))
	}
	b.add(name, KindEnum, Single, enum, nil)
}

// Node declares a singular nested element.
func (b *ModelBuilder) Node(name string, child *Model) {
	if child == nil {
		panic(fmt.Sprintf("model %s: field %s: child model missing", b.model.name, name))
	}
	b.add(name, KindNode, Single, nil, child)
}

// Repeated declares an ordered list of nested elements sharing one name.
func (b *ModelBuilder) Repeated(name string, child *Model) {
	if child == nil {
		panic(fmt.Sprintf("model %s: field %s: child model missing", b.model.name, name))
	}
	b.add(name, KindNode, Repeated, nil, child)
}
