package formdoc

import (
	"strings"
)

// Dump returns a compact single-line rendering of n, listing the fields that
// are not absent, e.g. {id: 5, visit: [{weight: 72}], bloodGroup: nil}.
func (n *Node) Dump() string {
	var buf strings.Builder
	dump(&buf, n)
	return buf.String()
}

func dump(buf *strings.Builder, n *Node) {
	if n == nil {
		buf.WriteString("<nil>")
		return
	}
	buf.WriteByte('{')
	for i, ent := range n.snapshot() {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(ent.prop.name)
		buf.WriteString(": ")
		switch {
		case ent.state == Nil:
			buf.WriteString("nil")
		case ent.prop.card == Repeated:
			buf.WriteByte('[')
			for j, item := range ent.items {
				if j > 0 {
					buf.WriteString(", ")
				}
				dump(buf, item)
			}
			buf.WriteByte(']')
		case ent.prop.kind == KindNode:
			dump(buf, ent.val.n)
		default:
			buf.WriteString(ent.val.String())
		}
	}
	buf.WriteByte('}')
}
