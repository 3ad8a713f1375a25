package difftree

import (
	"github.com/treex-io/treex/ir"
)

// Tree owns the root slot of a difference tree. The slot is an Item so a
// replacement of the root itself is representable; for all other edits it
// holds a Node.
type Tree struct {
	root Item
}

// NewTree returns a tree with the given root slot.
func NewTree(root Item) *Tree {
	return &Tree{root: root}
}

// Wrap returns a tree over an unedited wrap of prototype.
func Wrap(prototype ir.Node) *Tree {
	return &Tree{root: New(prototype)}
}

// Root returns the root slot.
func (t *Tree) Root() Item { return t.root }

// Node returns the root as a difference node, or nil when the root slot
// holds another variant.
func (t *Tree) Node() *Node {
	n, _ := t.root.(*Node)
	return n
}

// Before returns the pre-edit projection of the whole tree. A root slot
// contributing nothing yields ir.Dummy.
func (t *Tree) Before() ir.Node {
	if n := t.root.Before(); n != nil {
		return n
	}
	return ir.Dummy
}

// After returns the post-edit projection of the whole tree. A root slot
// contributing nothing yields ir.Dummy.
func (t *Tree) After() ir.Node {
	if n := t.root.After(); n != nil {
		return n
	}
	return ir.Dummy
}
