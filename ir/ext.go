package ir

// ExtNode is a read-only decoration of a node adding parent and sibling
// links, the index among siblings, and cached local and absolute hashes.
//
// Views are built bottom-up by NewExt in one post-order pass and are
// immutable afterwards. An ExtNode holds a reference to its underlying
// node and must not outlive the caller-owned tree.
type ExtNode struct {
	node     Node
	parent   *ExtNode
	left     *ExtNode
	right    *ExtNode
	index    int
	children []*ExtNode

	localHash    uint64
	absoluteHash uint64
}

// NewExt builds the extended view of the tree rooted at n.
// It panics if n is nil.
func NewExt(n Node) *ExtNode {
	if n == nil {
		panic("ir: NewExt called on nil node")
	}
	return buildExt(n, nil, 0)
}

func buildExt(n Node, parent *ExtNode, index int) *ExtNode {
	ext := &ExtNode{
		node:   n,
		parent: parent,
		index:  index,
	}
	count := n.ChildCount()
	ext.children = make([]*ExtNode, count)
	hashes := make([]uint64, count)
	for i := range count {
		child := buildExt(n.Child(i), ext, i)
		ext.children[i] = child
		hashes[i] = child.absoluteHash
		if i > 0 {
			child.left = ext.children[i-1]
			ext.children[i-1].right = child
		}
	}
	ext.localHash = LocalHash(n)
	ext.absoluteHash = combineHashes(ext.localHash, hashes)
	return ext
}

// Node returns the underlying node.
func (e *ExtNode) Node() Node { return e.node }

// Parent returns the parent view, or nil at the root.
func (e *ExtNode) Parent() *ExtNode { return e.parent }

// Left returns the preceding sibling view, or nil at the first child.
func (e *ExtNode) Left() *ExtNode { return e.left }

// Right returns the following sibling view, or nil at the last child.
func (e *ExtNode) Right() *ExtNode { return e.right }

// Index returns the zero-based index of this node among its siblings.
func (e *ExtNode) Index() int { return e.index }

// ChildCount returns the number of children.
func (e *ExtNode) ChildCount() int { return len(e.children) }

// Child returns the extended view of the child at the given index.
func (e *ExtNode) Child(index int) *ExtNode { return e.children[index] }

// Children returns the children views. The returned slice must not be
// modified.
func (e *ExtNode) Children() []*ExtNode { return e.children }

// LocalHash returns the cached hash of the node's type name and data.
func (e *ExtNode) LocalHash() uint64 { return e.localHash }

// AbsoluteHash returns the cached hash of the whole subtree.
func (e *ExtNode) AbsoluteHash() uint64 { return e.absoluteHash }
