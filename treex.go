// Package treex diffs and patches syntax trees.
//
// Diff computes a structural mapping between two trees and materializes
// it as a difference tree; Patch applies a difference tree as a pattern
// to another tree.
//
//	d, err := treex.Diff(before, after)
//	if err != nil { ... }
//	restored := d.Before() // deep-equal to before
//	updated := d.After()   // deep-equal to after
//
// The heavy lifting lives in the subpackages: ir (node model and hashes),
// mapping (top-down mapper), difftree (edit materialization), patching
// (pattern application), serialize (JSON/YAML documents and RFC-6902
// export), encode (text rendering), and query (node predicates).
package treex

import (
	"fmt"

	"github.com/treex-io/treex/difftree"
	"github.com/treex-io/treex/ir"
	"github.com/treex-io/treex/mapping"
	"github.com/treex-io/treex/patching"
)

// Diff maps left onto right and returns the difference tree replaying the
// edit script over left.
func Diff(left, right ir.Node) (*difftree.Tree, error) {
	res, err := mapping.TopDown{}.Map(left, right)
	if err != nil {
		return nil, err
	}
	return FromMapping(left, res)
}

// FromMapping is the canonical construction of a difference tree from a
// mapping result over the left tree.
func FromMapping(left ir.Node, res *mapping.Result) (*difftree.Tree, error) {
	if r, ok := res.Replaced[left]; ok {
		return difftree.NewTree(difftree.NewReplace(left, r)), nil
	}
	root := difftree.New(left)
	index := map[ir.Node]*difftree.Node{}
	collect(root, index)

	for _, del := range res.Deleted {
		d := index[del]
		if d == nil || d.Parent() == nil || !d.Parent().DeleteNode(del) {
			return nil, fmt.Errorf("treex: cannot delete %q from difference tree", del.TypeName())
		}
	}
	for before, after := range res.Replaced {
		if before == left {
			continue
		}
		d := index[before]
		if d == nil || d.Parent() == nil || !d.Parent().ReplaceNode(before, after) {
			return nil, fmt.Errorf("treex: cannot replace %q in difference tree", before.TypeName())
		}
	}
	for _, ins := range res.Inserted {
		parent := index[ins.Into]
		if parent == nil || !parent.InsertNodeAfter(ins.Node, ins.After) {
			return nil, fmt.Errorf("treex: cannot insert %q into difference tree", ins.Node.TypeName())
		}
	}
	return difftree.NewTree(root), nil
}

func collect(d *difftree.Node, index map[ir.Node]*difftree.Node) {
	index[d.Prototype()] = d
	for _, item := range d.Items() {
		if child, ok := item.(*difftree.Node); ok {
			collect(child, index)
		}
	}
}

// Patch applies a difference-tree pattern to a syntax tree.
func Patch(source ir.Node, pattern *difftree.Node) ir.Node {
	return patching.Patch(source, pattern)
}
