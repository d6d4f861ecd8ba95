package formdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

type decoder struct {
	xd     *xml.Decoder
	schema *Schema
	opts   options
	path   []string
}

func newDecoder(r io.Reader, schema *Schema, opts options) *decoder {
	return &decoder{
		xd:     xml.NewDecoder(r),
		schema: schema,
		opts:   opts,
	}
}

func (d *decoder) errf(kind, err error, format string, args ...any) error {
	line, col := d.xd.InputPos()
	var path string
	if len(d.path) > 0 {
		path = "/" + strings.Join(d.path, "/")
	}
	return &ParseError{
		Kind:   kind,
		Line:   line,
		Column: col,
		Path:   path,
		Msg:    fmt.Sprintf(format, args...),
		Err:    err,
	}
}

func (d *decoder) token() (xml.Token, error) {
	tok, err := d.xd.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, d.errf(ErrMalformedInput, nil, "unexpected end of input")
		}
		return nil, d.errf(ErrMalformedInput, err, "")
	}
	return tok, nil
}

func (d *decoder) decodeDocument() (*Node, error) {
	var root *Node
	for {
		tok, err := d.xd.Token()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, d.errf(ErrMalformedInput, err, "")
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			if root != nil {
				return nil, d.errf(ErrMalformedInput, nil, "more than one root element")
			}
			if tok.Name.Local != d.schema.rootName || tok.Name.Space != d.schema.namespace {
				return nil, d.errf(ErrSchemaViolation, nil, "root element is {%s}%s, wanted %s", tok.Name.Space, tok.Name.Local, d.schema)
			}
			d.path = append(d.path, tok.Name.Local)
			if err := d.checkAttrs(tok, false); err != nil {
				return nil, err
			}
			root = NewNode(d.schema.root)
			if err := d.decodeNode(root, 1); err != nil {
				return nil, err
			}
			d.path = d.path[:0]
		case xml.CharData:
			if !isBlank(tok) {
				return nil, d.errf(ErrMalformedInput, nil, "text outside of the root element")
			}
		}
	}
	if root == nil {
		return nil, d.errf(ErrMalformedInput, nil, "no root element")
	}
	return root, nil
}

func (d *decoder) checkAttrs(start xml.StartElement, nillable bool) error {
	_, err := d.nilAttr(start, nillable)
	return err
}

// nilAttr validates the attributes of an element and reports whether the
// element is marked xsi:nil.
func (d *decoder) nilAttr(start xml.StartElement, nillable bool) (bool, error) {
	var isNil bool
	for _, a := range start.Attr {
		switch {
		case a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns"):
			// namespace declarations
		case isXSI(a.Name.Space) && a.Name.Local == "nil":
			v, err := parseBool(strings.TrimSpace(a.Value))
			if err != nil {
				return false, d.errf(ErrSchemaViolation, nil, "invalid xsi:nil value %q", a.Value)
			}
			if v && !nillable {
				return false, d.errf(ErrSchemaViolation, nil, "element cannot be nil")
			}
			isNil = v
		case isXSI(a.Name.Space):
			// xsi:schemaLocation and friends carry no data
		default:
			if !d.opts.skipUnknown {
				return false, d.errf(ErrSchemaViolation, nil, "unexpected attribute %s", a.Name.Local)
			}
		}
	}
	return isNil, nil
}

func isXSI(space string) bool {
	return space == xsiNamespace || space == "xsi"
}

// decodeNode reads the content of n's element up to and including its end
// tag. Fields must appear in declaration order, and single fields at most
// once.
func (d *decoder) decodeNode(n *Node, depth int) error {
	if depth > d.opts.maxDepth {
		return d.errf(ErrSchemaViolation, nil, "nesting deeper than %d", d.opts.maxDepth)
	}
	model := n.model
	last := -1
	for {
		tok, err := d.token()
		if err != nil {
			return err
		}
		switch tok := tok.(type) {
		case xml.EndElement:
			return nil
		case xml.CharData:
			if !isBlank(tok) {
				return d.errf(ErrSchemaViolation, nil, "unexpected text in %s", model.name)
			}
		case xml.StartElement:
			var prop *Prop
			if tok.Name.Space == d.schema.namespace {
				prop = model.Prop(tok.Name.Local)
			}
			if prop == nil {
				if d.opts.skipUnknown {
					if err := d.xd.Skip(); err != nil {
						return d.errf(ErrMalformedInput, err, "")
					}
					continue
				}
				return d.errf(ErrSchemaViolation, nil, "unexpected element {%s}%s in %s", tok.Name.Space, tok.Name.Local, model.name)
			}
			if prop.index < last {
				return d.errf(ErrSchemaViolation, nil, "element %s out of order in %s", prop.name, model.name)
			}
			if prop.index == last && prop.card != Repeated {
				return d.errf(ErrSchemaViolation, nil, "element %s repeated in %s", prop.name, model.name)
			}
			last = prop.index

			d.path = append(d.path, prop.name)
			if err := d.decodeField(n, prop, tok, depth); err != nil {
				return err
			}
			d.path = d.path[:len(d.path)-1]
		}
	}
}

// decodeField stores into n without locking: n is not reachable by anyone
// else until decoding completes.
func (d *decoder) decodeField(n *Node, prop *Prop, start xml.StartElement, depth int) error {
	isNil, err := d.nilAttr(start, prop.card != Repeated)
	if err != nil {
		return err
	}
	f := n.ensure(prop)
	switch {
	case isNil:
		if err := d.expectEmpty(); err != nil {
			return err
		}
		f.state, f.val = Nil, Value{}
	case prop.card == Repeated:
		child := NewNode(prop.model)
		if err := d.decodeNode(child, depth+1); err != nil {
			return err
		}
		f.state, f.items = Present, append(f.items, child)
	case prop.kind == KindNode:
		child := NewNode(prop.model)
		if err := d.decodeNode(child, depth+1); err != nil {
			return err
		}
		f.state, f.val = Present, nodeValue(child)
	default:
		text, err := d.text()
		if err != nil {
			return err
		}
		v, err := parseLexical(prop, text)
		if err != nil {
			return d.errf(ErrSchemaViolation, err, "%q is not a valid %s", text, prop.kind)
		}
		if prop.kind == KindEnum && !prop.enum.Contains(v.s) {
			return d.errf(ErrSchemaViolation, ErrInvalidEnum, "%q not in %s", v.s, prop.enum.describe())
		}
		f.state, f.val = Present, v
	}
	return nil
}

// text collects the character data of a simple element up to its end tag.
func (d *decoder) text() (string, error) {
	var buf strings.Builder
	for {
		tok, err := d.token()
		if err != nil {
			return "", err
		}
		switch tok := tok.(type) {
		case xml.CharData:
			buf.Write(tok)
		case xml.StartElement:
			return "", d.errf(ErrSchemaViolation, nil, "unexpected element %s in simple content", tok.Name.Local)
		case xml.EndElement:
			return buf.String(), nil
		}
	}
}

func (d *decoder) expectEmpty() error {
	text, err := d.text()
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) != "" {
		return d.errf(ErrSchemaViolation, nil, "nil element has content")
	}
	return nil
}

func isBlank(b []byte) bool {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}
