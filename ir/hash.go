package ir

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// LocalHash returns a 64-bit hash of the node's type name and data only.
// It panics if n is nil.
func LocalHash(n Node) uint64 {
	if n == nil {
		panic("ir: LocalHash called on nil node")
	}
	var d xxhash.Digest
	d.Reset()
	d.WriteString(n.TypeName())
	// Separator keeps ("ab","c") and ("a","bc") apart.
	d.Write([]byte{0})
	d.WriteString(n.Data())
	return d.Sum64()
}

// AbsoluteHash returns a 64-bit hash of the whole subtree rooted at n: the
// local hash combined with the absolute hashes of all children in order.
// Two subtrees are structurally identical exactly when their absolute
// hashes are equal, collisions aside. It panics if n is nil.
func AbsoluteHash(n Node) uint64 {
	if n == nil {
		panic("ir: AbsoluteHash called on nil node")
	}
	children := make([]uint64, n.ChildCount())
	for i := range children {
		children[i] = AbsoluteHash(n.Child(i))
	}
	return combineHashes(LocalHash(n), children)
}

func combineHashes(local uint64, children []uint64) uint64 {
	var d xxhash.Digest
	d.Reset()
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], local)
	d.Write(b[:])
	for _, ch := range children {
		binary.LittleEndian.PutUint64(b[:], ch)
		d.Write(b[:])
	}
	return d.Sum64()
}
