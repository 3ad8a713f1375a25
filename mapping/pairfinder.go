package mapping

import (
	"github.com/treex-io/treex/ir"
)

// HashKey selects which cached hash a PairFinder compares siblings by.
type HashKey int

const (
	// AbsoluteHashKey matches whole identical subtrees.
	AbsoluteHashKey HashKey = iota
	// LocalHashKey matches nodes by type and data only.
	LocalHashKey
)

func (k HashKey) of(n *ir.ExtNode) uint64 {
	if k == LocalHashKey {
		return n.LocalHash()
	}
	return n.AbsoluteHash()
}

// Run is the result of a pair search: Count consecutive sibling pairs
// starting at LeftOffset and RightOffset. Count is zero when no pair
// matches.
type Run struct {
	LeftOffset  int
	RightOffset int
	Count       int
}

// PairFinder searches a section for the longest run of sibling pairs with
// equal hash keys.
type PairFinder struct {
	section *Section
	key     HashKey
}

// NewPairFinder returns a finder over the given section comparing by the
// given key.
func NewPairFinder(section *Section, key HashKey) *PairFinder {
	return &PairFinder{section: section, key: key}
}

// FindMatchingSequence returns the longest contiguous run (l..l+k, r..r+k)
// such that every pair in the run has equal keys. Among runs of maximal
// length the one with the smallest l+r wins, then the one with the
// smallest l. A Count of zero signals that nothing matched.
func (f *PairFinder) FindMatchingSequence() Run {
	lefts := f.section.Left()
	rights := f.section.Right()
	lkeys := make([]uint64, len(lefts))
	for i, n := range lefts {
		lkeys[i] = f.key.of(n)
	}
	rkeys := make([]uint64, len(rights))
	for j, n := range rights {
		rkeys[j] = f.key.of(n)
	}

	// Longest common substring by dynamic programming over one row.
	var best Run
	prev := make([]int, len(rkeys)+1)
	cur := make([]int, len(rkeys)+1)
	for i := range lkeys {
		for j := range rkeys {
			if lkeys[i] != rkeys[j] {
				cur[j+1] = 0
				continue
			}
			k := prev[j] + 1
			cur[j+1] = k
			cand := Run{LeftOffset: i - k + 1, RightOffset: j - k + 1, Count: k}
			if better(cand, best) {
				best = cand
			}
		}
		prev, cur = cur, prev
	}
	return best
}

func better(a, b Run) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	asum := a.LeftOffset + a.RightOffset
	bsum := b.LeftOffset + b.RightOffset
	if asum != bsum {
		return asum < bsum
	}
	return a.LeftOffset < b.LeftOffset
}
