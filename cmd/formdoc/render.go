package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/andreyvit/formdoc"
)

type sprintf func(format string, a ...any) string

// palette colors the parts of rendered output. The zero-color palette
// formats plain text.
type palette struct {
	name, value, null, ins, del sprintf
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{fmt.Sprintf, fmt.Sprintf, fmt.Sprintf, fmt.Sprintf, fmt.Sprintf}
	}
	on := func(c *color.Color) sprintf {
		c.EnableColor()
		return c.SprintfFunc()
	}
	return palette{
		name:  on(color.New(color.FgCyan)),
		value: on(color.RGB(128, 216, 236)),
		null:  on(color.RGB(196, 96, 16)),
		ins:   on(color.New(color.FgGreen)),
		del:   on(color.New(color.FgRed)),
	}
}

// writeTree prints the present and nil fields of n, one per line, nested
// elements indented under their name.
func writeTree(w io.Writer, n *formdoc.Node, pal palette, indent string) error {
	var buf strings.Builder
	renderTree(&buf, n, pal, indent, 0)
	_, err := io.WriteString(w, buf.String())
	return err
}

func renderTree(buf *strings.Builder, n *formdoc.Node, pal palette, indent string, depth int) {
	prefix := strings.Repeat(indent, depth)
	for _, prop := range n.Model().Props() {
		slot := n.Field(prop.Name())
		switch {
		case slot.IsAbsent():
			continue
		case prop.IsRepeated():
			for i, item := range n.RepeatedChildren(prop.Name()) {
				fmt.Fprintf(buf, "%s%s\n", prefix, pal.name("%s[%d]", prop.Name(), i))
				renderTree(buf, item, pal, indent, depth+1)
			}
		case slot.IsNil():
			fmt.Fprintf(buf, "%s%s: %s\n", prefix, pal.name("%s", prop.Name()), pal.null("nil"))
		case prop.Kind() == formdoc.KindNode:
			fmt.Fprintf(buf, "%s%s\n", prefix, pal.name("%s", prop.Name()))
			renderTree(buf, slot.Node(), pal, indent, depth+1)
		default:
			fmt.Fprintf(buf, "%s%s: %s\n", prefix, pal.name("%s", prop.Name()), pal.value("%s", slot.Get()))
		}
	}
}

// toYAML converts a node into an ordered YAML mapping. Absent fields are
// left out and nil fields become null.
func toYAML(n *formdoc.Node) yaml.MapSlice {
	var m yaml.MapSlice
	for _, prop := range n.Model().Props() {
		slot := n.Field(prop.Name())
		var v any
		switch {
		case slot.IsAbsent():
			continue
		case prop.IsRepeated():
			var items []any
			for _, item := range n.RepeatedChildren(prop.Name()) {
				items = append(items, toYAML(item))
			}
			v = items
		case slot.IsNil():
			v = nil
		default:
			v = yamlScalar(slot)
		}
		m = append(m, yaml.MapItem{Key: prop.Name(), Value: v})
	}
	return m
}

func yamlScalar(slot formdoc.Slot) any {
	val := slot.Get()
	switch slot.Kind() {
	case formdoc.KindInt:
		return val.Int()
	case formdoc.KindFloat:
		return val.Float()
	case formdoc.KindBool:
		return val.Bool()
	case formdoc.KindString, formdoc.KindEnum:
		return val.Text()
	case formdoc.KindNode:
		return toYAML(val.Node())
	default:
		return val.Lexical()
	}
}

func exportYAML(doc *formdoc.Document) ([]byte, error) {
	root := yaml.MapSlice{{Key: doc.Schema().RootName(), Value: toYAML(doc.Root())}}
	return yaml.Marshal(root)
}

// lineDiff returns a unified-style listing of the lines that differ between
// a and b, and whether there were any.
func lineDiff(a, b string, pal palette) (string, bool) {
	dmp := diffpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)

	var buf strings.Builder
	changed := false
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			switch d.Type {
			case diffpatch.DiffDelete:
				changed = true
				buf.WriteString(pal.del("-%s", line))
			case diffpatch.DiffInsert:
				changed = true
				buf.WriteString(pal.ins("+%s", line))
			case diffpatch.DiffEqual:
				buf.WriteString(" " + line)
			}
			buf.WriteByte('\n')
		}
	}
	if !changed {
		return "", false
	}
	return buf.String(), true
}
