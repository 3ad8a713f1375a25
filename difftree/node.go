package difftree

import (
	"slices"

	"github.com/treex-io/treex/ir"
)

// Node wraps an original node in a difference tree: it carries the
// original as its prototype and a list of child items replaying edits.
type Node struct {
	parent    *Node
	prototype ir.Node
	children  []Item
}

// New wraps a tree as a difference tree with no edits: every descendant
// becomes a Node item over the corresponding prototype child.
func New(prototype ir.Node) *Node {
	return newChild(nil, prototype)
}

func newChild(parent *Node, prototype ir.Node) *Node {
	d := &Node{parent: parent, prototype: prototype}
	d.children = make([]Item, prototype.ChildCount())
	for i := range d.children {
		d.children[i] = newChild(d, prototype.Child(i))
	}
	return d
}

// Parent returns the parent difference node, or nil at the root. The link
// is a relation only; it implies no ownership.
func (d *Node) Parent() *Node { return d.parent }

// Prototype returns the original node this difference node wraps.
func (d *Node) Prototype() ir.Node { return d.prototype }

// Items returns the child items. The returned slice must not be modified.
func (d *Node) Items() []Item { return d.children }

func (d *Node) TypeName() string              { return d.prototype.TypeName() }
func (d *Node) Data() string                  { return d.prototype.Data() }
func (d *Node) ChildCount() int               { return len(d.children) }
func (d *Node) Child(index int) ir.Node       { return d.children[index] }
func (d *Node) Fragment() ir.Fragment         { return d.prototype.Fragment() }
func (d *Node) Properties() map[string]string { return d.prototype.Properties() }
func (d *Node) Type() ir.Type                 { return d.prototype.Type() }

func (d *Node) Action() Action { return ActionKeep }
func (d *Node) isItem()        {}

// InsertNodeAfter adds an action inserting node after a sibling. A nil
// after prepends. Otherwise the children are scanned left to right for the
// first item representing after: a kept child whose prototype is after, or
// an insertion of after, or an insertion anchored at after. It reports
// whether a slot was found; on false the tree is unchanged.
func (d *Node) InsertNodeAfter(node, after ir.Node) bool {
	if after == nil {
		d.children = slices.Insert(d.children, 0, Item(NewInsert(node, nil)))
		return true
	}
	for i, child := range d.children {
		switch c := child.(type) {
		case *Node:
			if c.prototype == after {
				d.children = slices.Insert(d.children, i+1, Item(NewInsert(node, after)))
				return true
			}
		case *Insert:
			if c.node == after || c.anchor == after {
				d.children = slices.Insert(d.children, i+1, Item(NewInsert(node, after)))
				return true
			}
		}
	}
	return false
}

// ReplaceNodeAt adds an action replacing the child at index. The slot must
// currently hold a kept child. It reports whether the action was added.
func (d *Node) ReplaceNodeAt(index int, replacement ir.Node) bool {
	if index < 0 || index >= len(d.children) {
		return false
	}
	child, ok := d.children[index].(*Node)
	if !ok {
		return false
	}
	d.children[index] = NewReplace(child.prototype, replacement)
	return true
}

// ReplaceNode adds an action replacing a child found by node. Lookup
// follows the prototype chain of each kept child. It reports whether the
// action was added.
func (d *Node) ReplaceNode(node, replacement ir.Node) bool {
	index := d.findChildIndex(node)
	if index < 0 {
		return false
	}
	return d.ReplaceNodeAt(index, replacement)
}

// DeleteNodeAt adds an action deleting the child at index. The slot must
// currently hold a kept child. It reports whether the action was added.
func (d *Node) DeleteNodeAt(index int) bool {
	if index < 0 || index >= len(d.children) {
		return false
	}
	child, ok := d.children[index].(*Node)
	if !ok {
		return false
	}
	d.children[index] = NewDelete(child.prototype)
	return true
}

// DeleteNode adds an action deleting a child found by node. Lookup follows
// the prototype chain of each kept child. It reports whether the action
// was added.
func (d *Node) DeleteNode(node ir.Node) bool {
	index := d.findChildIndex(node)
	if index < 0 {
		return false
	}
	return d.DeleteNodeAt(index)
}

// findChildIndex returns the index of the kept child whose prototype chain
// contains node, or -1 if there is no such child or it was already edited.
func (d *Node) findChildIndex(node ir.Node) int {
	for i, child := range d.children {
		c, ok := child.(*Node)
		if !ok {
			continue
		}
		if ir.SameNode(c.prototype, node) {
			return i
		}
	}
	return -1
}

// Before returns the pre-edit projection of this subtree, or ir.Dummy if
// any builder stage fails.
func (d *Node) Before() ir.Node {
	return d.branch(Item.Before)
}

// After returns the post-edit projection of this subtree, or ir.Dummy if
// any builder stage fails.
func (d *Node) After() ir.Node {
	return d.branch(Item.After)
}

func (d *Node) branch(sel func(Item) ir.Node) ir.Node {
	b := d.prototype.Type().CreateBuilder()
	if b == nil {
		return ir.Dummy
	}
	b.SetFragment(d.prototype.Fragment())
	if !b.SetData(d.prototype.Data()) {
		return ir.Dummy
	}
	list := make([]ir.Node, 0, len(d.children))
	for _, child := range d.children {
		if n := sel(child); n != nil {
			list = append(list, n)
		}
	}
	if !b.SetChildren(list) {
		return ir.Dummy
	}
	if !b.IsValid() {
		return ir.Dummy
	}
	return b.CreateNode()
}
