package formdoc

import (
	"encoding/xml"
	"io"
)

const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

var nilAttr = xml.Attr{Name: xml.Name{Local: "xsi:nil"}, Value: "true"}

type encoder struct {
	w      io.Writer
	enc    *xml.Encoder
	schema *Schema
	opts   options
}

func newEncoder(w io.Writer, schema *Schema, opts options) *encoder {
	enc := xml.NewEncoder(w)
	if opts.prefix != "" || opts.indent != "" {
		enc.Indent(opts.prefix, opts.indent)
	}
	return &encoder{w: w, enc: enc, schema: schema, opts: opts}
}

func (e *encoder) encodeDocument(root *Node) error {
	if !e.opts.omitHeader {
		if _, err := io.WriteString(e.w, xml.Header); err != nil {
			return err
		}
	}
	start := xml.StartElement{Name: xml.Name{Local: e.schema.rootName}}
	if ns := e.schema.namespace; ns != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: ns})
	}
	if containsNil(root) {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns:xsi"}, Value: xsiNamespace})
	}
	if err := e.encodeNode(start, root); err != nil {
		return err
	}
	if err := e.enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, "\n")
	return err
}

func (e *encoder) encodeNode(start xml.StartElement, n *Node) error {
	if err := e.enc.EncodeToken(start); err != nil {
		return err
	}
	for _, ent := range n.snapshot() {
		name := xml.Name{Local: ent.prop.name}
		var err error
		switch {
		case ent.prop.card == Repeated:
			for _, item := range ent.items {
				if err = e.encodeNode(xml.StartElement{Name: name}, item); err != nil {
					break
				}
			}
		case ent.state == Nil:
			err = e.encodeLeaf(xml.StartElement{Name: name, Attr: []xml.Attr{nilAttr}}, "")
		case ent.prop.kind == KindNode:
			err = e.encodeNode(xml.StartElement{Name: name}, ent.val.n)
		default:
			err = e.encodeLeaf(xml.StartElement{Name: name}, formatLexical(ent.val))
		}
		if err != nil {
			return err
		}
	}
	return e.enc.EncodeToken(start.End())
}

func (e *encoder) encodeLeaf(start xml.StartElement, text string) error {
	if err := e.enc.EncodeToken(start); err != nil {
		return err
	}
	if text != "" {
		if err := e.enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}
	return e.enc.EncodeToken(start.End())
}

func containsNil(n *Node) bool {
	for _, ent := range n.snapshot() {
		switch {
		case ent.state == Nil:
			return true
		case ent.prop.card == Repeated:
			for _, item := range ent.items {
				if containsNil(item) {
					return true
				}
			}
		case ent.prop.kind == KindNode:
			if containsNil(ent.val.n) {
				return true
			}
		}
	}
	return false
}
