package formdoc

import (
	"bytes"
	"io"
)

// Document owns one root node of a schema's root model. Documents are plain
// in-memory values; there is nothing to close.
type Document struct {
	schema *Schema
	root   *Node
}

// NewDocument returns a document with an empty root node.
func NewDocument(schema *Schema) *Document {
	return &Document{
		schema: schema,
		root:   NewNode(schema.root),
	}
}

func (d *Document) Schema() *Schema { return d.schema }
func (d *Document) Root() *Node     { return d.root }

// Clone returns an independent deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{schema: d.schema, root: d.root.Clone()}
}

// Equal reports whether both documents belong to the same schema and hold
// field-for-field equal trees.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.schema == o.schema && Equal(d.root, o.root)
}

// Parse loads a document from XML. It fails with a *ParseError matching
// ErrMalformedInput or ErrSchemaViolation; no partial document is returned.
func Parse(data []byte, schema *Schema, opts ...Option) (*Document, error) {
	return Decode(bytes.NewReader(data), schema, opts...)
}

// Serialize returns the XML encoding of the document.
func (d *Document) Serialize(opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode is like Parse but reads from r.
func Decode(r io.Reader, schema *Schema, opts ...Option) (*Document, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	root, err := newDecoder(r, schema, o).decodeDocument()
	if err != nil {
		return nil, err
	}
	return &Document{schema: schema, root: root}, nil
}

// Encode writes the XML encoding of the document to w.
func (d *Document) Encode(w io.Writer, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	return newEncoder(w, d.schema, o).encodeDocument(d.root)
}
