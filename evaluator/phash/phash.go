// Package phash implements a Cactus-Kev style evaluator: five card hands are
// scored through a flush table, a unique-ranks table and a perfect hash of
// rank prime products. Six and seven card hands take the best five card
// subset.
//
// Card layout (32 bits):
//
//	xxxbbbbb bbbbbbbb cdhsrrrr xxpppppp
//	p: prime of rank (deuce=2 ... ace=41)
//	r: rank index (deuce=0 ... ace=12)
//	cdhs: one bit for the suit
//	b: one bit for the rank
//
// Scores run from 1 (seven high) to 7462 (royal flush).
package phash

import (
	"sync"

	"github.com/lox/handrank/poker"
)

// Card is a packed card word.
type Card uint32

var primes = [poker.NumRanks]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

const (
	// MaxScore is the royal flush score.
	MaxScore = poker.NumClasses
	// MinStraightFlush is the weakest straight flush score.
	MinStraightFlush = MaxScore - 9
)

// Evaluator scores hands from a fixed set of tables.
type Evaluator struct {
	t *Tables
}

var _ poker.Evaluator[Card] = (*Evaluator)(nil)

var defaultTables = sync.OnceValue(func() *Tables {
	t, err := GenerateTables()
	if err != nil {
		panic("phash: generating tables: " + err.Error())
	}
	return t
})

// Default returns the process-wide tables, generating them on first use.
// The result must not be modified.
func Default() *Tables {
	return defaultTables()
}

// New returns an evaluator over the process-wide tables.
func New() *Evaluator {
	return &Evaluator{t: defaultTables()}
}

// NewWithTables returns an evaluator over t, which must not be modified
// afterwards.
func NewWithTables(t *Tables) *Evaluator {
	return &Evaluator{t: t}
}

// Tables returns the evaluator's tables.
func (e *Evaluator) Tables() *Tables {
	return e.t
}

// MakeCard packs a canonical card.
func (*Evaluator) MakeCard(c poker.Card) Card {
	return makeCard(uint32(c.Rank()), uint32(c.Suit()))
}

func makeCard(rank, suit uint32) Card {
	return Card((1<<rank)<<16 | (1<<suit)<<12 | rank<<8 | primes[rank])
}

// FindFast hashes a product of five rank primes that contains a repeated
// rank to its slot in the hash values table.
func FindFast(u uint32) uint32 {
	return findFast(u, &hashAdjust)
}

func findFast(u uint32, adjust *[NumAdjust]uint16) uint32 {
	u += 0xe91aaa35
	u ^= u >> 16
	u += u << 8
	u ^= u >> 4
	b := (u >> 8) & 0x1ff
	a := (u + (u << 2)) >> 19
	return a ^ uint32(adjust[b])
}

// eval5 scores five cards. With flushOnly set, non-flush hands score 0.
func (e *Evaluator) eval5(c0, c1, c2, c3, c4 Card, flushOnly bool) uint32 {
	q := uint32(c0|c1|c2|c3|c4) >> 16
	if c0&c1&c2&c3&c4&0xF000 != 0 {
		return MaxScore + 1 - uint32(e.t.Flush[q])
	}
	if flushOnly {
		return 0
	}
	if v := e.t.Unique5[q]; v != 0 {
		return MaxScore + 1 - uint32(v)
	}
	product := uint32(c0&0xFF) * uint32(c1&0xFF) * uint32(c2&0xFF) * uint32(c3&0xFF) * uint32(c4&0xFF)
	idx := findFast(product, &e.t.Adjust)
	if idx >= NumHashValues {
		return 0
	}
	return MaxScore + 1 - uint32(e.t.HashValues[idx])
}

// skip7 lists the pairs of positions left out of each five card subset of a
// seven card hand.
var skip7 = [21][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6},
	{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6},
	{2, 3}, {2, 4}, {2, 5}, {2, 6},
	{3, 4}, {3, 5}, {3, 6},
	{4, 5}, {4, 6},
	{5, 6},
}

// Eval scores 5 to 7 cards. Other lengths score 0.
func (e *Evaluator) Eval(cards []Card) poker.Score {
	switch len(cards) {
	case 5:
		return poker.Score(e.eval5(cards[0], cards[1], cards[2], cards[3], cards[4], false))
	case 6:
		var best uint32
		var sub [5]Card
		for skip := range 6 {
			j := 0
			for i, c := range cards {
				if i != skip {
					sub[j] = c
					j++
				}
			}
			best = max(best, e.eval5(sub[0], sub[1], sub[2], sub[3], sub[4], best >= MinStraightFlush))
		}
		return poker.Score(best)
	case 7:
		var best uint32
		var sub [5]Card
		for _, skip := range skip7 {
			j := 0
			for i, c := range cards {
				if i != skip[0] && i != skip[1] {
					sub[j] = c
					j++
				}
			}
			best = max(best, e.eval5(sub[0], sub[1], sub[2], sub[3], sub[4], best >= MinStraightFlush))
		}
		return poker.Score(best)
	}
	return 0
}

// Category classifies a score by its strength range.
func (*Evaluator) Category(s poker.Score) (poker.Category, bool) {
	if s < 1 || s > MaxScore {
		return 0, false
	}
	return poker.CategoryOfClass(int(s) - 1)
}

// Decode reads the category and ranks stored for a score.
func (e *Evaluator) Decode(s poker.Score) (poker.Decoded, bool) {
	if s < 1 || s > MaxScore {
		return poker.Decoded{}, false
	}
	return decodeContent(e.t.Contents[s-1])
}

func decodeContent(v uint32) (poker.Decoded, bool) {
	d := poker.Decoded{Category: poker.Category(v >> 20)}
	if !d.Category.Valid() {
		return poker.Decoded{}, false
	}
	for i := range 5 {
		r := (v >> ((4 - i) * 4)) & 0xF
		if r < 1 || r > poker.NumRanks {
			return poker.Decoded{}, false
		}
		d.Ranks[i] = poker.Rank(r - 1)
	}
	return d, true
}
