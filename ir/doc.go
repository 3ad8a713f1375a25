// Package ir provides the node model for syntax trees manipulated by treex.
//
// # Overview
//
// A tree is an ordered, immutable structure of values satisfying the Node
// interface. Each node carries a type name, an optional data payload, an
// ordered list of children, a fragment (opaque source-location metadata) and
// a properties map. Node identity is by reference; structural equality is
// checked with DeepEqual.
//
// Concrete node kinds are produced through builders. A Type handle yields a
// Builder, and a Factory maps type names to builders, so algorithms can
// reconstruct nodes without knowing their concrete representation. Builders
// may reject data or children; callers gate on the boolean results and on
// IsValid before calling CreateNode.
//
// The distinguished Dummy node represents "no node / empty tree". It is the
// value algorithms degrade to when construction fails; partial trees are
// never produced.
//
// # Draft nodes
//
// DraftNode is a general-purpose untyped node that accepts any data and any
// children. Drafts can be written in a compact notation convenient for tests
// and tooling:
//
//	n := ir.MustDraft("Add(IntegerLiteral<2>, IntegerLiteral<3>)")
//
// # Extended view
//
// ExtNode decorates a tree with parent and sibling links, child indexes, and
// cached 64-bit local and absolute hashes. Views are built once per
// algorithm run with NewExt and discarded afterwards; they must not outlive
// the underlying nodes.
//
// # Hashing
//
// The local hash covers a node's type name and data. The absolute hash
// folds the local hash with the absolute hashes of all children in order,
// so two subtrees are structurally identical exactly when their absolute
// hashes are equal (collisions aside). Hash equality is treated as identity
// by the mapping algorithms; no deep comparison backs it up.
//
// # Related packages
//
//   - github.com/treex-io/treex/mapping - structural mapping of two trees
//   - github.com/treex-io/treex/difftree - difference trees and projections
//   - github.com/treex-io/treex/patching - applying patterns to trees
//   - github.com/treex-io/treex/serialize - JSON/YAML tree documents
package ir
