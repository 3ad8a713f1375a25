package mapping

import (
	"errors"
	"fmt"

	"github.com/treex-io/treex/debug"
	"github.com/treex-io/treex/ir"
)

// ErrInconsistent reports that the mapper could not make progress despite
// matching local hashes. It signals a hashing bug, not bad input.
var ErrInconsistent = errors.New("mapping: inconsistent hashing state")

// Insertion is one inserted node: Node from the right tree, placed under
// the left-tree parent Into, after the sibling After. After is a left-tree
// node, or a previously inserted right-tree node, or nil for the head
// position.
type Insertion struct {
	Node  ir.Node
	Into  ir.Node
	After ir.Node
}

// Result is the edit script produced by a mapper.
//
// Every node of the left tree is a key of LeftToRight and every node of
// the right tree is a key of RightToLeft. A nil value means the node is
// acknowledged unmatched (it is inserted, deleted, or inside a replaced
// subtree), as opposed to absent, which would mean it was never seen.
type Result struct {
	LeftToRight map[ir.Node]ir.Node
	RightToLeft map[ir.Node]ir.Node

	// Inserted lists insertions in order; anchors chain so that replaying
	// them in order reproduces right-tree sibling order.
	Inserted []Insertion

	// Replaced maps a left node to the right node replacing it.
	Replaced map[ir.Node]ir.Node

	// Deleted lists deleted left nodes in left-tree order.
	Deleted []ir.Node
}

// IsDeleted reports whether n is in the deleted list.
func (r *Result) IsDeleted(n ir.Node) bool {
	for _, d := range r.Deleted {
		if d == n {
			return true
		}
	}
	return false
}

// Mapper computes a structural mapping between two trees.
type Mapper interface {
	Map(left, right ir.Node) (*Result, error)
}

// TopDown is the top-down mapper: it compares roots first, then descends,
// classifying children section by section. On a root mismatch the whole
// left subtree is acknowledged unmatched, the whole right subtree
// likewise, and the root pair is recorded as replaced.
type TopDown struct{}

// Map maps the left tree onto the right tree. It panics if either
// argument is nil. The only error condition is ErrInconsistent.
func (TopDown) Map(left, right ir.Node) (*Result, error) {
	if left == nil || right == nil {
		panic("mapping: Map called on nil node")
	}
	t := &topDown{
		ltr:      map[*ir.ExtNode]*ir.ExtNode{},
		rtl:      map[*ir.ExtNode]*ir.ExtNode{},
		replaced: map[*ir.ExtNode]*ir.ExtNode{},
	}
	if err := t.execute(ir.NewExt(left), ir.NewExt(right)); err != nil {
		return nil, err
	}
	return t.result(), nil
}

type extInsertion struct {
	node  *ir.ExtNode
	into  *ir.ExtNode
	after *ir.ExtNode
}

type topDown struct {
	ltr      map[*ir.ExtNode]*ir.ExtNode
	rtl      map[*ir.ExtNode]*ir.ExtNode
	inserted []extInsertion
	replaced map[*ir.ExtNode]*ir.ExtNode
	deleted  []*ir.ExtNode
}

func (t *topDown) execute(left, right *ir.ExtNode) error {
	ok, err := t.mapSubtrees(left, right)
	if err != nil {
		return err
	}
	if !ok {
		if debug.Map() {
			debug.Logf("map: roots differ, %s replaced by %s\n", left.Node(), right.Node())
		}
		t.replaced[left] = right
		t.skipLeft(left)
		t.skipRight(right)
	}
	return nil
}

func (t *topDown) mapSubtrees(left, right *ir.ExtNode) (bool, error) {
	switch {
	case left.AbsoluteHash() == right.AbsoluteHash():
		t.mapIdentical(left, right)
		return true, nil
	case left.LocalHash() == right.LocalHash():
		return true, t.mapBySection(left, right)
	default:
		return false, nil
	}
}

// mapIdentical maps two subtrees with equal absolute hashes pairwise;
// child counts agree by construction.
func (t *topDown) mapIdentical(left, right *ir.ExtNode) {
	t.ltr[left] = right
	t.rtl[right] = left
	for i := range left.ChildCount() {
		t.mapIdentical(left.Child(i), right.Child(i))
	}
}

// mapBySection maps two subtrees whose roots agree on type and data but
// whose children differ. Children are resolved section by section:
// insert-only, delete-only, or around the longest identical sibling run.
func (t *topDown) mapBySection(left, right *ir.ExtNode) error {
	t.ltr[left] = right
	t.rtl[right] = left
	u := NewUnprocessed(left, right)
	for s := u.FirstSection(); s != nil; s = u.FirstSection() {
		if debug.Sections() {
			debug.Logf("map: section %d/%d under %s\n", len(s.Left()), len(s.Right()), left.Node())
		}
		switch {
		case len(s.Left()) == 0:
			t.insertAll(left, u, s)
		case len(s.Right()) == 0:
			t.deleteAll(u, s)
		default:
			if !t.mapIdenticalPairs(u, s) {
				return fmt.Errorf(
					"%w: no matching sibling run under %q",
					ErrInconsistent, left.Node().TypeName(),
				)
			}
		}
	}
	return nil
}

// insertAll marks every right-side node of the section as inserted under
// the given left parent. The anchor of each insertion is the left-tree
// image of the node's preceding right-tree sibling; when that sibling was
// itself inserted, the anchor is the sibling itself, chaining insertions.
func (t *topDown) insertAll(into *ir.ExtNode, u *Unprocessed, s *Section) {
	nodes := append([]*ir.ExtNode(nil), s.Right()...)
	for _, child := range nodes {
		var after *ir.ExtNode
		if prev := child.Left(); prev != nil {
			if m := t.rtl[prev]; m != nil {
				after = m
			} else {
				after = prev
			}
		}
		t.inserted = append(t.inserted, extInsertion{node: child, into: into, after: after})
		t.skipRight(child)
		u.RemoveNode(child)
	}
}

// deleteAll marks every left-side node of the section as deleted.
func (t *topDown) deleteAll(u *Unprocessed, s *Section) {
	nodes := append([]*ir.ExtNode(nil), s.Left()...)
	for _, child := range nodes {
		t.deleted = append(t.deleted, child)
		t.skipLeft(child)
		u.RemoveNode(child)
	}
}

// mapIdenticalPairs finds the longest run of identical sibling pairs in
// the section and maps it. It reports whether any pair was matched.
func (t *topDown) mapIdenticalPairs(u *Unprocessed, s *Section) bool {
	run := NewPairFinder(s, AbsoluteHashKey).FindMatchingSequence()
	if run.Count == 0 {
		return false
	}
	lefts := s.Left()[run.LeftOffset : run.LeftOffset+run.Count]
	rights := s.Right()[run.RightOffset : run.RightOffset+run.Count]
	for i := range run.Count {
		t.mapIdentical(lefts[i], rights[i])
		u.RemoveNodes(lefts[i], rights[i])
	}
	return true
}

// skipLeft acknowledges every node of a left subtree as unmatched.
func (t *topDown) skipLeft(n *ir.ExtNode) {
	t.ltr[n] = nil
	for i := range n.ChildCount() {
		t.skipLeft(n.Child(i))
	}
}

// skipRight acknowledges every node of a right subtree as unmatched.
func (t *topDown) skipRight(n *ir.ExtNode) {
	t.rtl[n] = nil
	for i := range n.ChildCount() {
		t.skipRight(n.Child(i))
	}
}

func (t *topDown) result() *Result {
	res := &Result{
		LeftToRight: make(map[ir.Node]ir.Node, len(t.ltr)),
		RightToLeft: make(map[ir.Node]ir.Node, len(t.rtl)),
		Replaced:    make(map[ir.Node]ir.Node, len(t.replaced)),
	}
	for k, v := range t.ltr {
		res.LeftToRight[k.Node()] = extNode(v)
	}
	for k, v := range t.rtl {
		res.RightToLeft[k.Node()] = extNode(v)
	}
	for k, v := range t.replaced {
		res.Replaced[k.Node()] = v.Node()
	}
	for _, ins := range t.inserted {
		res.Inserted = append(res.Inserted, Insertion{
			Node:  ins.node.Node(),
			Into:  ins.into.Node(),
			After: extNode(ins.after),
		})
	}
	for _, d := range t.deleted {
		res.Deleted = append(res.Deleted, d.Node())
	}
	return res
}

func extNode(e *ir.ExtNode) ir.Node {
	if e == nil {
		return nil
	}
	return e.Node()
}
