// Package mapping computes structural mappings between two syntax trees.
//
// The top-down mapper walks a left (before) and a right (after) tree,
// wrapped as ir.ExtNode views, and classifies every node as mapped,
// inserted, deleted, or replaced. Matching is purely structural, by 64-bit
// hash equality: subtrees with equal absolute hashes are identical,
// nodes with equal local hashes share type and data.
//
//	res, err := mapping.TopDown{}.Map(left, right)
//
// The resulting edit script is deterministic for identical inputs: sibling
// iteration order and all tie-breaks are fixed.
//
// # Related packages
//
//   - github.com/treex-io/treex/difftree - materializes edit scripts
//   - github.com/treex-io/treex/ir - the node model and hash functions
package mapping
