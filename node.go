package formdoc

import (
	"fmt"
	"slices"
	"sync"
)

// Node is an element of a document: a set of fields laid out by its Model.
//
// Every operation on a node, including operations on the slots returned by
// Field, holds the node's mutex for the duration of the call. Child nodes
// have their own mutexes, and no operation holds two node mutexes at once.
// Sequences of calls are not atomic; callers that need that must coordinate
// themselves.
type Node struct {
	mu     sync.Mutex
	model  *Model
	fields []*field
}

type field struct {
	state State
	val   Value   // scalar value or singular child node
	items []*Node // repeated children
}

// NewNode returns an empty detached node. Detached nodes are useful as
// templates for SetChild and ReplaceRepeatedChild, which copy them.
func NewNode(model *Model) *Node {
	if model == nil {
		panic("NewNode: nil model")
	}
	return &Node{
		model:  model,
		fields: make([]*field, len(model.props)),
	}
}

func (n *Node) Model() *Model {
	return n.model
}

// lookup must be called with n.mu held.
func (n *Node) lookup(prop *Prop) *field {
	return n.fields[prop.index]
}

// ensure must be called with n.mu held.
func (n *Node) ensure(prop *Prop) *field {
	f := n.fields[prop.index]
	if f == nil {
		f = &field{}
		n.fields[prop.index] = f
	}
	return f
}

func (n *Node) singleNodeProp(name string) *Prop {
	prop := n.model.MustProp(name)
	if prop.kind != KindNode || prop.card != Single {
		panic(fmt.Sprintf("%s is not a single child element", prop))
	}
	return prop
}

func (n *Node) repeatedProp(name string) *Prop {
	prop := n.model.MustProp(name)
	if prop.card != Repeated {
		panic(fmt.Sprintf("%s is not a repeated element", prop))
	}
	return prop
}

// Field returns the slot of the named field. Obtaining a slot does not
// change the node. Panics if the model has no such field.
func (n *Node) Field(name string) Slot {
	return Slot{node: n, prop: n.model.MustProp(name)}
}

// Child returns the singular child node, or nil if it is absent or nil.
func (n *Node) Child(name string) *Node {
	prop := n.singleNodeProp(name)
	n.mu.Lock()
	defer n.mu.Unlock()
	if f := n.lookup(prop); f != nil && f.state == Present {
		return f.val.n
	}
	return nil
}

// AddChild attaches a new empty child node, replacing any existing one.
func (n *Node) AddChild(name string) *Node {
	prop := n.singleNodeProp(name)
	child := NewNode(prop.model)
	n.mu.Lock()
	defer n.mu.Unlock()
	f := n.ensure(prop)
	f.state, f.val = Present, nodeValue(child)
	return child
}

// SetChild attaches a deep copy of src as the singular child and returns the
// copy. src must be of the field's model.
func (n *Node) SetChild(name string, src *Node) (*Node, error) {
	prop := n.singleNodeProp(name)
	if src == nil {
		return nil, fieldErrf(prop, Zero(KindNode), ErrTypeMismatch, "nil node")
	}
	if src.model != prop.model {
		return nil, fieldErrf(prop, nodeValue(src), ErrTypeMismatch, "got %s node, wanted %s", src.model.name, prop.model.name)
	}
	child := src.Clone()
	n.mu.Lock()
	defer n.mu.Unlock()
	f := n.ensure(prop)
	f.state, f.val = Present, nodeValue(child)
	return child, nil
}

// RepeatedChildren returns a snapshot of the repeated children.
func (n *Node) RepeatedChildren(name string) []*Node {
	prop := n.repeatedProp(name)
	n.mu.Lock()
	defer n.mu.Unlock()
	if f := n.lookup(prop); f != nil {
		return slices.Clone(f.items)
	}
	return nil
}

func (n *Node) CountRepeatedChildren(name string) int {
	prop := n.repeatedProp(name)
	n.mu.Lock()
	defer n.mu.Unlock()
	if f := n.lookup(prop); f != nil {
		return len(f.items)
	}
	return 0
}

func (n *Node) RepeatedChild(name string, index int) (*Node, error) {
	prop := n.repeatedProp(name)
	n.mu.Lock()
	defer n.mu.Unlock()
	f := n.lookup(prop)
	count := f.count()
	if index < 0 || index >= count {
		return nil, &IndexError{prop, "get", index, count}
	}
	return f.items[index], nil
}

// InsertRepeatedChild creates a new child at index, shifting later children
// up. index == count appends.
func (n *Node) InsertRepeatedChild(name string, index int) (*Node, error) {
	prop := n.repeatedProp(name)
	n.mu.Lock()
	defer n.mu.Unlock()
	f := n.ensure(prop)
	count := len(f.items)
	if index < 0 || index > count {
		return nil, &IndexError{prop, "insert", index, count}
	}
	child := NewNode(prop.model)
	f.items = slices.Insert(f.items, index, child)
	f.state = Present
	return child, nil
}

func (n *Node) AppendRepeatedChild(name string) *Node {
	prop := n.repeatedProp(name)
	child := NewNode(prop.model)
	n.mu.Lock()
	defer n.mu.Unlock()
	f := n.ensure(prop)
	f.items = append(f.items, child)
	f.state = Present
	return child
}

// ReplaceRepeatedChild puts a deep copy of src at index.
func (n *Node) ReplaceRepeatedChild(name string, index int, src *Node) error {
	prop := n.repeatedProp(name)
	if src == nil {
		return fieldErrf(prop, Zero(KindNode), ErrTypeMismatch, "nil node")
	}
	if src.model != prop.model {
		return fieldErrf(prop, nodeValue(src), ErrTypeMismatch, "got %s node, wanted %s", src.model.name, prop.model.name)
	}
	child := src.Clone()
	n.mu.Lock()
	defer n.mu.Unlock()
	f := n.lookup(prop)
	count := f.count()
	if index < 0 || index >= count {
		return &IndexError{prop, "replace", index, count}
	}
	f.items[index] = child
	return nil
}

// RemoveRepeatedChild removes the child at index, shifting later children
// down.
func (n *Node) RemoveRepeatedChild(name string, index int) error {
	prop := n.repeatedProp(name)
	n.mu.Lock()
	defer n.mu.Unlock()
	f := n.lookup(prop)
	count := f.count()
	if index < 0 || index >= count {
		return &IndexError{prop, "remove", index, count}
	}
	f.items = slices.Delete(f.items, index, index+1)
	if len(f.items) == 0 {
		f.items, f.state = nil, Absent
	}
	return nil
}

func (f *field) count() int {
	if f == nil {
		return 0
	}
	return len(f.items)
}

// Clone returns a deep copy of n. The copy is detached.
func (n *Node) Clone() *Node {
	c := NewNode(n.model)
	n.mu.Lock()
	for i, f := range n.fields {
		if f == nil {
			continue
		}
		cf := *f
		cf.items = slices.Clone(f.items)
		c.fields[i] = &cf
	}
	n.mu.Unlock()

	// children are copied after releasing n.mu so that at most one node
	// mutex is held at a time
	for _, f := range c.fields {
		if f == nil {
			continue
		}
		if f.val.kind == KindNode && f.val.n != nil {
			f.val.n = f.val.n.Clone()
		}
		for i, item := range f.items {
			f.items[i] = item.Clone()
		}
	}
	return c
}

// entry is a point-in-time copy of one field, used by readers that walk the
// whole tree (encoding, comparison, dumps).
type entry struct {
	prop  *Prop
	state State
	val   Value
	items []*Node
}

// snapshot returns the fields that are not Absent, in declaration order.
func (n *Node) snapshot() []entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	result := make([]entry, 0, len(n.fields))
	for i, f := range n.fields {
		if f == nil || f.state == Absent {
			continue
		}
		result = append(result, entry{n.model.props[i], f.state, f.val, slices.Clone(f.items)})
	}
	return result
}
