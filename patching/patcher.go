// Package patching applies difference-tree patterns to syntax trees.
//
// A pattern is a difference tree: its Before projection is the shape to
// find, its After projection is the shape to substitute. Matching is
// structural, by deep comparison. Discovery is top-down and leftmost;
// matches do not overlap, and traversal continues past substituted
// subtrees.
package patching

import (
	"github.com/treex-io/treex/debug"
	"github.com/treex-io/treex/difftree"
	"github.com/treex-io/treex/ir"
)

// Patch applies a pattern to a syntax tree and returns the root of the
// updated tree. When nothing matches, or when the pattern has no usable
// before image, the source is returned unchanged. It panics if source or
// pattern is nil.
func Patch(source ir.Node, pattern *difftree.Node) ir.Node {
	if source == nil || pattern == nil {
		panic("patching: Patch called on nil argument")
	}
	before := pattern.Before()
	if ir.IsDummy(before) {
		return source
	}
	after := pattern.After()
	res, _ := apply(source, before, after)
	return res
}

// apply rewrites the subtree rooted at n, reporting whether anything
// changed. A matched subtree is substituted without descending into the
// substitution.
func apply(n, before, after ir.Node) (ir.Node, bool) {
	if ir.DeepEqual(n, before) {
		if debug.Patch() {
			debug.Logf("patch: %s -> %s\n", n, after)
		}
		return after, true
	}
	changed := false
	children := make([]ir.Node, n.ChildCount())
	for i := range children {
		child, sub := apply(n.Child(i), before, after)
		children[i] = child
		changed = changed || sub
	}
	if !changed {
		return n, false
	}
	rebuilt, ok := rebuild(n, children)
	if !ok {
		// Never emit a partial tree; the substitution in this branch is
		// abandoned.
		return n, false
	}
	return rebuilt, true
}

// rebuild constructs a copy of n with new children through its type's
// builder.
func rebuild(n ir.Node, children []ir.Node) (ir.Node, bool) {
	b := n.Type().CreateBuilder()
	if b == nil {
		return nil, false
	}
	b.SetFragment(n.Fragment())
	if !b.SetData(n.Data()) {
		return nil, false
	}
	if !b.SetChildren(children) {
		return nil, false
	}
	if !b.IsValid() {
		return nil, false
	}
	return b.CreateNode(), true
}
