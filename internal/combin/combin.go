// Package combin enumerates index combinations and poker rank classes.
package combin

import (
	"fmt"

	"github.com/lox/handrank/poker"
)

// Combinations walks every increasing k-tuple drawn from 0..n-1 in
// lexicographic order.
type Combinations struct {
	n, k    int
	indexes []int
	started bool
}

// NewCombinations returns an iterator over the k-of-n index tuples. It panics
// when k > n or either argument is negative.
func NewCombinations(n, k int) *Combinations {
	if k < 0 || n < 0 || k > n {
		panic(fmt.Sprintf("combin: NewCombinations(%d, %d): k must be in [0, n]", n, k))
	}
	return &Combinations{n: n, k: k, indexes: make([]int, k)}
}

// Next writes the next tuple into dst, which must hold at least k ints, and
// reports whether one was produced.
func (c *Combinations) Next(dst []int) bool {
	if !c.started {
		c.started = true
		for i := range c.indexes {
			c.indexes[i] = i
		}
		copy(dst, c.indexes)
		return true
	}
	if c.k == 0 || c.indexes[0] == c.n-c.k {
		return false
	}

	// Rightmost index that is not yet at its maximum.
	pos := c.k - 1
	for pos >= 0 && c.indexes[pos] == c.n-c.k+pos {
		pos--
	}
	c.indexes[pos]++
	for i := pos + 1; i < c.k; i++ {
		c.indexes[i] = c.indexes[pos] + (i - pos)
	}
	copy(dst, c.indexes)
	return true
}

// Count returns the binomial coefficient C(n, k).
func Count(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	out := 1
	for i := 1; i <= k; i++ {
		out = out * (n - k + i) / i
	}
	return out
}

type suitMode uint8

const (
	suitByDuplicates suitMode = iota
	suitFlush
	suitOffsuit
)

// RankClasses enumerates one representative hand per rank multiset of a
// given size. Multisets are non-decreasing rank sequences with at most four
// copies of a rank. Sequences without a repeated rank are produced twice,
// first all in one suit and then with suits cycling by position, so the five
// card enumeration yields exactly one hand per strength class.
type RankClasses struct {
	size    int
	ranks   []int
	mode    suitMode
	started bool
	done    bool
}

// NewRankClasses returns a rank class iterator for hands of 5, 6 or 7 cards.
func NewRankClasses(size int) *RankClasses {
	if size < 5 || size > 7 {
		panic(fmt.Sprintf("combin: NewRankClasses(%d): size must be 5, 6 or 7", size))
	}
	return &RankClasses{size: size, ranks: make([]int, size)}
}

// maxRank is the largest rank position i may hold while leaving room for
// the positions after it.
func (r *RankClasses) maxRank(i int) int {
	return poker.NumRanks - 1 - (r.size-1-i)/poker.NumSuits
}

// Next returns the next representative hand. The slice is freshly allocated.
func (r *RankClasses) Next() ([]poker.Card, bool) {
	if r.done {
		return nil, false
	}
	if !r.started {
		r.started = true
		for i := range r.ranks {
			r.ranks[i] = i / poker.NumSuits
		}
		return r.hand(), true
	}

	if r.mode == suitFlush {
		r.mode = suitOffsuit
		return r.hand(), true
	}
	r.mode = suitByDuplicates

	pos := r.size - 1
	for pos >= 0 && r.ranks[pos] >= r.maxRank(pos) {
		pos--
	}
	if pos < 0 {
		r.done = true
		return nil, false
	}
	r.ranks[pos]++
	for i := pos + 1; i < r.size; i++ {
		r.ranks[i] = r.ranks[pos] + (i-pos)/poker.NumSuits
	}

	if r.distinct() {
		r.mode = suitFlush
	}
	return r.hand(), true
}

func (r *RankClasses) distinct() bool {
	for i := 1; i < r.size; i++ {
		if r.ranks[i] == r.ranks[i-1] {
			return false
		}
	}
	return true
}

func (r *RankClasses) hand() []poker.Card {
	out := make([]poker.Card, r.size)
	for i, rank := range r.ranks {
		var suit int
		switch r.mode {
		case suitFlush:
			suit = 0
		case suitOffsuit:
			suit = i % poker.NumSuits
		default:
			for j := i - 1; j >= 0 && r.ranks[j] == rank; j-- {
				suit++
			}
		}
		out[i] = poker.NewCard(poker.Rank(rank), poker.Suit(suit))
	}
	return out
}
