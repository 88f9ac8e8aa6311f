// Package bitwise scores poker hands directly from packed card words,
// without lookup tables.
//
// Card layout (32 bits):
//
//	ttbbbbbbbbbbbbbb ssssssssssss vvvv
//	t: suit index (bits 30-31)
//	b: rank presence, bit 16 = ace low, bit 16+v = rank value v (bits 16-29)
//	s: four 3-bit per-suit counters, one set to 1 (bits 4-15)
//	v: rank value 1 (deuce) to 13 (ace) (bits 0-3)
//
// Scores carry the category in bits 20-23 and up to five rank values in
// nibbles below it. Zero nibbles repeat the previous rank, or step down one
// rank for straights.
package bitwise

import (
	"github.com/lox/handrank/poker"
)

// Card is a packed card word.
type Card uint32

const (
	valueMask    = 0xF
	suitShift    = 4
	suitMask     = 0xFFF
	ranksShift   = 16
	ranksMask    = 0x3FFF
	flushRanks   = 0x3FFFF
	aceLowBit    = 1 << ranksShift
	suitIdxShift = 30
	categoryBits = 20
	windowMask   = 0x1F
)

// Evaluator is the direct bit evaluator. The zero value is ready to use.
type Evaluator struct{}

// New returns a bit evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

var _ poker.Evaluator[Card] = (*Evaluator)(nil)

// MakeCard packs a canonical card.
func (*Evaluator) MakeCard(c poker.Card) Card {
	rank := uint32(c.Rank())
	suit := uint32(c.Suit())
	w := (rank + 1) |
		(1<<(3*suit))<<suitShift |
		(1<<(rank+1))<<ranksShift |
		suit<<suitIdxShift
	if c.Rank() == poker.Ace {
		w |= aceLowBit
	}
	return Card(w)
}

func value(c Card) uint32 {
	return uint32(c) & valueMask
}

func score(cat poker.Category, low uint32) poker.Score {
	return poker.Score(uint32(cat)<<categoryBits | low)
}

// Eval scores 5 to 7 cards. Other lengths score 0.
func (e *Evaluator) Eval(input []Card) poker.Score {
	n := len(input)
	if n < 5 || n > 7 {
		return 0
	}

	var buf [7]Card
	var suitSum uint32
	for i, c := range input {
		suitSum += (uint32(c) >> suitShift) & suitMask
		// insertion sort, descending by rank value
		j := i
		for j > 0 && value(buf[j-1]) < value(c) {
			buf[j] = buf[j-1]
			j--
		}
		buf[j] = c
	}
	cards := buf[:n]

	var flushSuit uint32
	for i := range 4 {
		if (suitSum>>(3*i))&0x7 > 4 {
			flushSuit = 1 << (3 * i)
			break
		}
	}
	if flushSuit != 0 {
		return evalFlush(cards, flushSuit)
	}

	// quads
	for i := 0; i+3 < n; i++ {
		if value(cards[i]) == value(cards[i+3]) {
			kicker := cards[0]
			if i == 0 {
				kicker = cards[4]
			}
			return score(poker.FourOfAKind, value(cards[i])<<16|value(kicker))
		}
	}

	// Group the sorted run into trips, pairs and singles. A second trip is
	// demoted to a pair and a third pair to the singles.
	var (
		rankBits uint32
		three    uint32
		pairs    [3]uint32
		nPairs   int
		ones     [7]uint32
		nOnes    int
	)
	for i := 0; i < n; {
		v := value(cards[i])
		rankBits |= (uint32(cards[i]) >> ranksShift) & ranksMask
		switch {
		case i+2 < n && v == value(cards[i+2]):
			if three == 0 {
				three = v
			} else {
				pairs[nPairs] = v
				nPairs++
			}
			i += 3
		case i+1 < n && v == value(cards[i+1]):
			if nPairs >= 2 {
				ones[nOnes] = v
				nOnes++
			} else {
				pairs[nPairs] = v
				nPairs++
			}
			i += 2
		default:
			ones[nOnes] = v
			nOnes++
			i++
		}
	}

	if three != 0 && nPairs > 0 {
		return score(poker.FullHouse, three<<16|pairs[0]<<4)
	}

	if top := straightTop(cards, rankBits); top != 0 {
		return score(poker.Straight, top<<16)
	}

	switch {
	case three != 0:
		return score(poker.ThreeOfAKind, three<<16|ones[0]<<4|ones[1])
	case nPairs >= 2:
		return score(poker.TwoPair, pairs[0]<<16|pairs[1]<<8|ones[0])
	case nPairs == 1:
		return score(poker.Pair, pairs[0]<<16|ones[0]<<8|ones[1]<<4|ones[2])
	}
	return score(poker.HighCard, ones[0]<<16|ones[1]<<12|ones[2]<<8|ones[3]<<4|ones[4])
}

// straightTop returns the highest rank value that tops five consecutive
// ranks in bits, or 0.
func straightTop(cards []Card, bits uint32) uint32 {
	for i := 0; i+4 <= len(cards); i++ {
		v := value(cards[i])
		if v < 4 {
			break
		}
		if (bits>>(v-4))&windowMask == windowMask {
			return v
		}
	}
	return 0
}

func evalFlush(cards []Card, flushSuit uint32) poker.Score {
	var (
		suited [7]Card
		count  int
		bits   uint32
	)
	for _, c := range cards {
		if (uint32(c)>>suitShift)&suitMask == flushSuit {
			suited[count] = c
			count++
			bits |= (uint32(c) >> ranksShift) & flushRanks
		}
	}
	if top := straightTop(suited[:count], bits); top != 0 {
		return score(poker.StraightFlush, top<<16)
	}
	var low uint32
	for _, c := range suited[:5] {
		low = low<<4 | value(c)
	}
	return score(poker.Flush, low)
}

// layout is where a category keeps its rank values. Values in [lo, hi)
// strictly descend.
type layout struct {
	shifts []uint
	lo, hi int
}

var layouts = [poker.NumCategories + 1]layout{
	poker.HighCard:      {shifts: []uint{16, 12, 8, 4, 0}, lo: 0, hi: 5},
	poker.Pair:          {shifts: []uint{16, 8, 4, 0}, lo: 1, hi: 4},
	poker.TwoPair:       {shifts: []uint{16, 8, 0}, lo: 0, hi: 2},
	poker.ThreeOfAKind:  {shifts: []uint{16, 4, 0}, lo: 1, hi: 3},
	poker.Straight:      {shifts: []uint{16}},
	poker.Flush:         {shifts: []uint{16, 12, 8, 4, 0}, lo: 0, hi: 5},
	poker.FullHouse:     {shifts: []uint{16, 4}},
	poker.FourOfAKind:   {shifts: []uint{16, 0}},
	poker.StraightFlush: {shifts: []uint{16}},
}

// wellFormed reports whether Eval can produce s: every value sits in its
// category's nibble and nowhere else, values are 1 to 13 and distinct, and
// kickers descend.
func wellFormed(s poker.Score) (poker.Category, bool) {
	cat := poker.Category(uint32(s) >> categoryBits)
	if uint32(s)>>categoryBits > poker.NumCategories || !cat.Valid() {
		return 0, false
	}
	l := layouts[cat]

	var (
		packed uint32
		seen   uint32
		vals   [5]uint32
	)
	for i, shift := range l.shifts {
		v := (uint32(s) >> shift) & valueMask
		if v < 1 || v > 13 || seen&(1<<v) != 0 {
			return 0, false
		}
		if i > l.lo && i < l.hi && v >= vals[i-1] {
			return 0, false
		}
		seen |= 1 << v
		vals[i] = v
		packed |= v << shift
	}
	if packed != uint32(s)&(1<<categoryBits-1) {
		return 0, false
	}

	switch cat {
	case poker.Straight, poker.StraightFlush:
		// the wheel tops at the five
		if vals[0] < 4 {
			return 0, false
		}
	case poker.HighCard, poker.Flush:
		// five distinct ranks in a row belong to a straight
		if vals[0]-vals[4] == 4 || (vals[0] == 13 && vals[1] == 4) {
			return 0, false
		}
	}
	return cat, true
}

// Category returns the category stored in a score.
func (*Evaluator) Category(s poker.Score) (poker.Category, bool) {
	return wellFormed(s)
}

// Decode expands the rank nibbles of a score. Scores Eval cannot produce do
// not decode.
func (e *Evaluator) Decode(s poker.Score) (poker.Decoded, bool) {
	cat, ok := wellFormed(s)
	if !ok {
		return poker.Decoded{}, false
	}
	step := uint32(0)
	if cat == poker.Straight || cat == poker.StraightFlush {
		step = 1
	}

	d := poker.Decoded{Category: cat}
	var last uint32
	for i := range 5 {
		v := (uint32(s) >> ((4 - i) * 4)) & valueMask
		if v == 0 {
			v = (last-1+13-step)%13 + 1
		}
		d.Ranks[i] = poker.Rank(v - 1)
		last = v
	}
	return d, true
}
