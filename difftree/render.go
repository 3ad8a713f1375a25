package difftree

import (
	"fmt"
	"io"
	"strings"

	"github.com/treex-io/treex/encode"
	"github.com/treex-io/treex/ir"
)

// String renders the difference tree in compact notation with action
// markers: +X for insertions, -X for deletions, X => Y for replacements.
func (t *Tree) String() string {
	var sb strings.Builder
	writeItem(&sb, t.root)
	return sb.String()
}

func (d *Node) String() string {
	var sb strings.Builder
	writeItem(&sb, d)
	return sb.String()
}

func writeItem(sb *strings.Builder, item Item) {
	switch x := item.(type) {
	case *Node:
		sb.WriteString(x.prototype.TypeName())
		if data := x.prototype.Data(); data != "" {
			fmt.Fprintf(sb, "<%s>", data)
		}
		if len(x.children) > 0 {
			sb.WriteByte('(')
			for i, child := range x.children {
				if i > 0 {
					sb.WriteString(", ")
				}
				writeItem(sb, child)
			}
			sb.WriteByte(')')
		}
	case *Insert:
		sb.WriteByte('+')
		sb.WriteString(encode.String(x.node))
	case *Delete:
		sb.WriteByte('-')
		sb.WriteString(encode.String(x.node))
	case *Replace:
		sb.WriteString(encode.String(x.before))
		sb.WriteString(" => ")
		sb.WriteString(encode.String(x.after))
	}
}

// Encode writes an indented rendering of the tree to w, one item per
// line, actions marked in the leftmost column and colored per c. A
// replacement of two nodes sharing a type renders its data change as a
// character diff. A nil c disables color.
func (t *Tree) Encode(w io.Writer, c *encode.Colors) error {
	if c == nil {
		c = encode.PlainColors()
	}
	return encodeItem(w, t.root, c, 0)
}

func encodeItem(w io.Writer, item Item, c *encode.Colors, depth int) error {
	indent := strings.Repeat("  ", depth)
	switch x := item.(type) {
	case *Node:
		line := c.Name("%s", x.prototype.TypeName())
		if data := x.prototype.Data(); data != "" {
			line += c.Data("<%s>", data)
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", indent, line); err != nil {
			return err
		}
		for _, child := range x.children {
			if err := encodeItem(w, child, c, depth+1); err != nil {
				return err
			}
		}
	case *Insert:
		if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, c.Insert("+"), encode.String(x.node)); err != nil {
			return err
		}
	case *Delete:
		if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, c.Delete("-"), encode.String(x.node)); err != nil {
			return err
		}
	case *Replace:
		if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, c.Replace("~"), replaceLine(x, c)); err != nil {
			return err
		}
	}
	return nil
}

// replaceLine renders a replacement; same-type leaf replacements show the
// data change as a character diff.
func replaceLine(x *Replace, c *encode.Colors) string {
	sameType := x.before.TypeName() == x.after.TypeName()
	leaves := x.before.ChildCount() == 0 && x.after.ChildCount() == 0
	if sameType && leaves && x.before.Data() != x.after.Data() {
		return fmt.Sprintf(
			"%s<%s>",
			c.Name("%s", x.before.TypeName()),
			encode.DataDiff(x.before.Data(), x.after.Data(), c),
		)
	}
	return encode.String(x.before) + " => " + encode.String(x.after)
}

var _ ir.Node = (*Node)(nil)
var _ ir.PrototypeBased = (*Node)(nil)
