package difftree

import (
	"github.com/treex-io/treex/ir"
)

// Action identifies the kind of edit a tree item represents.
type Action int

//go:generate go tool stringer -type=Action -trimprefix=Action

const (
	// ActionKeep marks a recursively diffed original child.
	ActionKeep Action = iota
	// ActionInsert marks an inserted node.
	ActionInsert
	// ActionDelete marks a deleted original child.
	ActionDelete
	// ActionReplace marks an original child replaced by a new node.
	ActionReplace
)

// Item is one child slot of a difference tree. The variants are Node,
// Insert, Delete, and Replace; the union is closed. Every item is also an
// ir.Node, delegating to its payload, so difference trees can be walked
// like ordinary trees.
type Item interface {
	ir.Node

	// Action returns which edit the item represents.
	Action() Action

	// Before returns the item's contribution to the pre-edit projection,
	// or nil if it contributes nothing.
	Before() ir.Node

	// After returns the item's contribution to the post-edit projection,
	// or nil if it contributes nothing.
	After() ir.Node

	isItem()
}

// Insert is an inserted node, positioned after an anchor sibling, or at
// the head when the anchor is nil.
type Insert struct {
	node   ir.Node
	anchor ir.Node
}

// NewInsert returns an insertion of node after the given anchor.
func NewInsert(node, anchor ir.Node) *Insert {
	return &Insert{node: node, anchor: anchor}
}

// Node returns the inserted node.
func (x *Insert) Node() ir.Node { return x.node }

// Anchor returns the sibling the insertion follows, or nil for head
// position.
func (x *Insert) Anchor() ir.Node { return x.anchor }

func (x *Insert) Action() Action  { return ActionInsert }
func (x *Insert) Before() ir.Node { return nil }
func (x *Insert) After() ir.Node  { return x.node }
func (x *Insert) isItem()         {}

func (x *Insert) TypeName() string              { return x.node.TypeName() }
func (x *Insert) Data() string                  { return x.node.Data() }
func (x *Insert) ChildCount() int               { return x.node.ChildCount() }
func (x *Insert) Child(index int) ir.Node       { return x.node.Child(index) }
func (x *Insert) Fragment() ir.Fragment         { return x.node.Fragment() }
func (x *Insert) Properties() map[string]string { return x.node.Properties() }
func (x *Insert) Type() ir.Type                 { return x.node.Type() }

// Delete is the deletion of an original child.
type Delete struct {
	node ir.Node
}

// NewDelete returns a deletion of node.
func NewDelete(node ir.Node) *Delete {
	return &Delete{node: node}
}

// Node returns the deleted node.
func (x *Delete) Node() ir.Node { return x.node }

func (x *Delete) Action() Action  { return ActionDelete }
func (x *Delete) Before() ir.Node { return x.node }
func (x *Delete) After() ir.Node  { return nil }
func (x *Delete) isItem()         {}

func (x *Delete) TypeName() string              { return x.node.TypeName() }
func (x *Delete) Data() string                  { return x.node.Data() }
func (x *Delete) ChildCount() int               { return x.node.ChildCount() }
func (x *Delete) Child(index int) ir.Node       { return x.node.Child(index) }
func (x *Delete) Fragment() ir.Fragment         { return x.node.Fragment() }
func (x *Delete) Properties() map[string]string { return x.node.Properties() }
func (x *Delete) Type() ir.Type                 { return x.node.Type() }

// Replace is the replacement of an original child by a new node.
type Replace struct {
	before ir.Node
	after  ir.Node
}

// NewReplace returns a replacement of before by after.
func NewReplace(before, after ir.Node) *Replace {
	return &Replace{before: before, after: after}
}

func (x *Replace) Action() Action  { return ActionReplace }
func (x *Replace) Before() ir.Node { return x.before }
func (x *Replace) After() ir.Node  { return x.after }
func (x *Replace) isItem()         {}

func (x *Replace) TypeName() string              { return x.after.TypeName() }
func (x *Replace) Data() string                  { return x.after.Data() }
func (x *Replace) ChildCount() int               { return x.after.ChildCount() }
func (x *Replace) Child(index int) ir.Node       { return x.after.Child(index) }
func (x *Replace) Fragment() ir.Fragment         { return x.after.Fragment() }
func (x *Replace) Properties() map[string]string { return x.after.Properties() }
func (x *Replace) Type() ir.Type                 { return x.after.Type() }
