// Package encode renders syntax trees as text.
//
// The compact form is the draft notation accepted by ir.ParseDraft:
//
//	Add(IntegerLiteral<2>, IntegerLiteral<3>)
//
// The indented form puts one node per line with children indented, and is
// what the treex CLI prints. Both forms are deterministic.
package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/treex-io/treex/ir"
)

// String returns the compact single-line rendering of a tree.
func String(n ir.Node) string {
	if n == nil {
		return "<nil>"
	}
	if ir.IsDummy(n) {
		return "<dummy>"
	}
	var sb strings.Builder
	writeCompact(&sb, n)
	return sb.String()
}

func writeCompact(sb *strings.Builder, n ir.Node) {
	sb.WriteString(n.TypeName())
	if d := n.Data(); d != "" {
		sb.WriteByte('<')
		sb.WriteString(d)
		sb.WriteByte('>')
	}
	if n.ChildCount() > 0 {
		sb.WriteByte('(')
		for i := range n.ChildCount() {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeCompact(sb, n.Child(i))
		}
		sb.WriteByte(')')
	}
}

// Encode writes the indented rendering of a tree to w, one node per line,
// children indented by two spaces, colored per c. A nil c disables color.
func Encode(n ir.Node, w io.Writer, c *Colors) error {
	if c == nil {
		c = PlainColors()
	}
	return encodeAt(n, w, c, 0)
}

func encodeAt(n ir.Node, w io.Writer, c *Colors, depth int) error {
	line := c.Name("%s", n.TypeName())
	if d := n.Data(); d != "" {
		line += c.Data("<%s>", d)
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), line); err != nil {
		return err
	}
	for i := range n.ChildCount() {
		if err := encodeAt(n.Child(i), w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
