// Package difftree materializes edit scripts as navigable difference
// trees.
//
// A difference tree mirrors an original tree: every node is wrapped as a
// Node whose child slots are Items. An Item is one of a closed set of
// variants: a recursively wrapped child (Node), an insertion (Insert), a
// deletion (Delete), or a replacement (Replace). The set is fixed by the
// algorithm; all projections and mutators dispatch over it.
//
// A difference tree yields two projections: Before, the tree prior to the
// edits, and After, the tree with the edits applied. Projections are
// rebuilt through the prototype types' builders; if construction fails at
// any stage the projection degrades to ir.Dummy, never to a partial tree.
//
// Tree wraps the root slot so that a replacement of the root itself is
// representable.
//
// Difference trees double as patterns for the patching package.
package difftree
