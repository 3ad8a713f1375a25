package ir

// Fragment is opaque source-location metadata carried by a node. The core
// never inspects fragments, it only threads them through builders.
type Fragment interface{}

// Node is an immutable, ordered syntax tree node.
//
// Identity is by reference: two Node values are the same node only if they
// are the same pointer. Structural equality is checked with DeepEqual.
type Node interface {
	// TypeName returns the name of the node type.
	TypeName() string

	// Data returns the data payload, or "" if the node has none.
	Data() string

	// ChildCount returns the number of children.
	ChildCount() int

	// Child returns the child at the given zero-based index.
	// It panics if index is out of range.
	Child(index int) Node

	// Fragment returns the source-location metadata of the node.
	Fragment() Fragment

	// Properties returns the node's properties. The returned map must not
	// be modified.
	Properties() map[string]string

	// Type returns the type handle of the node.
	Type() Type
}

// Type is a handle to a node type, capable of producing builders for it.
type Type interface {
	// Name returns the type name.
	Name() string

	// CreateBuilder returns a fresh builder for this type, or nil if
	// nodes of this type cannot be constructed.
	CreateBuilder() Builder
}

// Builder constructs a node of a fixed type. SetData and SetChildren may
// reject their arguments; IsValid reports whether CreateNode may be called.
type Builder interface {
	// SetFragment sets the source-location metadata of the node being built.
	SetFragment(f Fragment)

	// SetData sets the data payload. It reports whether the data is
	// acceptable for the type.
	SetData(data string) bool

	// SetChildren sets the children list. It reports whether the list
	// satisfies the type's arity and typing constraints.
	SetChildren(children []Node) bool

	// IsValid reports whether the builder is in a state from which
	// CreateNode can produce a node.
	IsValid() bool

	// CreateNode produces the node. The builder must be valid.
	CreateNode() Node
}

// Factory maps type names to builders.
type Factory interface {
	// CreateBuilder returns a builder for the named type, or nil if the
	// factory knows no such type.
	CreateBuilder(typeName string) Builder
}

// Dummy is the distinguished node representing "no node / empty tree".
var Dummy Node = &dummyNode{}

// IsDummy reports whether n is the dummy node.
func IsDummy(n Node) bool {
	return n == Dummy
}

type dummyNode struct{}

func (*dummyNode) TypeName() string               { return "" }
func (*dummyNode) Data() string                   { return "" }
func (*dummyNode) ChildCount() int                { return 0 }
func (*dummyNode) Child(index int) Node           { panic("ir: dummy node has no children") }
func (*dummyNode) Fragment() Fragment             { return nil }
func (*dummyNode) Properties() map[string]string  { return nil }
func (*dummyNode) Type() Type                     { return dummyType{} }

type dummyType struct{}

func (dummyType) Name() string           { return "" }
func (dummyType) CreateBuilder() Builder { return nil }

// DeepEqual reports whether two trees are structurally equal: same type
// names, same data, and pairwise deep-equal children. Fragments and
// properties do not participate in structural equality.
func DeepEqual(a, b Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.TypeName() != b.TypeName() || a.Data() != b.Data() {
		return false
	}
	n := a.ChildCount()
	if n != b.ChildCount() {
		return false
	}
	for i := range n {
		if !DeepEqual(a.Child(i), b.Child(i)) {
			return false
		}
	}
	return true
}

// Visit walks the tree rooted at n in depth-first pre-order. If f returns
// false for a node, its children are not visited.
func Visit(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	for i := range n.ChildCount() {
		Visit(n.Child(i), f)
	}
}

// Count returns the total number of nodes in the tree rooted at n.
func Count(n Node) int {
	total := 0
	Visit(n, func(Node) bool {
		total++
		return true
	})
	return total
}

// Children returns the children of n as a slice.
func Children(n Node) []Node {
	res := make([]Node, n.ChildCount())
	for i := range res {
		res[i] = n.Child(i)
	}
	return res
}
