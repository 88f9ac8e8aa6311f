package phash

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/lox/handrank/evaluator/bitwise"
	"github.com/lox/handrank/internal/artifact"
	"github.com/lox/handrank/internal/combin"
	"github.com/lox/handrank/poker"
)

// ErrTables is returned when tables cannot be generated or loaded.
var ErrTables = errors.New("phash tables")

// Table sizes.
const (
	NumFlush      = 1 << poker.NumRanks
	NumUnique5    = 1 << poker.NumRanks
	NumAdjust     = 512
	NumHashValues = 8191
	NumContents   = poker.NumClasses

	// TableWords is the length of the word artifact holding all tables.
	TableWords = NumFlush + NumUnique5 + NumAdjust + NumHashValues + NumContents
)

const (
	// numPaired is the number of classes with a repeated rank.
	numPaired = 4888
	// hashFill marks hash slots no product maps to.
	hashFill = 166
)

// Tables holds everything the evaluator reads. Values in Flush, Unique5 and
// HashValues count down from 1 (royal flush); Contents is indexed by
// score-1 and holds category<<20 followed by five 1-based rank nibbles.
type Tables struct {
	Flush      [NumFlush]uint16
	Unique5    [NumUnique5]uint16
	Adjust     [NumAdjust]uint16
	HashValues [NumHashValues]uint16
	Contents   [NumContents]uint32
}

type pairedClass struct {
	product uint32
	value   uint16
}

// GenerateTables builds the tables from scratch by scoring one hand per
// strength class with the bitwise evaluator.
func GenerateTables() (*Tables, error) {
	bw := bitwise.New()

	scores := make([]poker.Score, 0, poker.NumClasses)
	it := combin.NewRankClasses(5)
	for {
		hand, ok := it.Next()
		if !ok {
			break
		}
		scores = append(scores, poker.SimpleEval(bw, hand))
	}
	if len(scores) != poker.NumClasses {
		return nil, fmt.Errorf("%w: enumerated %d classes, want %d", ErrTables, len(scores), poker.NumClasses)
	}
	slices.Sort(scores)
	for i := 1; i < len(scores); i++ {
		if scores[i] == scores[i-1] {
			return nil, fmt.Errorf("%w: duplicate class score %#x", ErrTables, scores[i])
		}
	}

	t := &Tables{Adjust: hashAdjust}
	paired := make([]pairedClass, 0, numPaired)
	var counts [poker.NumCategories + 1]int

	for i := len(scores) - 1; i >= 0; i-- {
		value := uint16(len(scores) - i)
		d, ok := bw.Decode(scores[i])
		if !ok {
			return nil, fmt.Errorf("%w: undecodable score %#x", ErrTables, scores[i])
		}
		counts[d.Category]++

		var mask, product uint32 = 0, 1
		for _, r := range d.Ranks {
			mask |= 1 << r
			product *= primes[r]
		}

		switch d.Category {
		case poker.StraightFlush, poker.Flush:
			t.Flush[mask] = value
		case poker.Straight, poker.HighCard:
			t.Unique5[mask] = value
		default:
			paired = append(paired, pairedClass{product: product, value: value})
		}
		t.Contents[i] = uint32(scores[i])&0xF00000 | packRanks(d.Ranks)
	}

	for c := poker.HighCard; c <= poker.StraightFlush; c++ {
		if counts[c] != c.Count() {
			return nil, fmt.Errorf("%w: %s has %d classes, want %d", ErrTables, c, counts[c], c.Count())
		}
	}
	if len(paired) != numPaired {
		return nil, fmt.Errorf("%w: %d paired classes, want %d", ErrTables, len(paired), numPaired)
	}

	slices.SortFunc(paired, func(a, b pairedClass) int {
		return cmp.Compare(a.product, b.product)
	})

	var used [NumHashValues]bool
	for i := range t.HashValues {
		t.HashValues[i] = hashFill
	}
	for _, p := range paired {
		idx := findFast(p.product, &t.Adjust)
		if idx >= NumHashValues {
			return nil, fmt.Errorf("%w: product %d hashes to %d, outside %d slots", ErrTables, p.product, idx, NumHashValues)
		}
		if used[idx] {
			return nil, fmt.Errorf("%w: product %d collides at slot %d", ErrTables, p.product, idx)
		}
		used[idx] = true
		t.HashValues[idx] = p.value
	}
	return t, nil
}

func packRanks(ranks [5]poker.Rank) uint32 {
	var v uint32
	for _, r := range ranks {
		v = v<<4 | (uint32(r) + 1)
	}
	return v
}

// Words flattens the tables into one word slice: flush, unique5, adjust,
// hash values and contents, in that order.
func (t *Tables) Words() []uint32 {
	out := make([]uint32, 0, TableWords)
	for _, v := range t.Flush {
		out = append(out, uint32(v))
	}
	for _, v := range t.Unique5 {
		out = append(out, uint32(v))
	}
	for _, v := range t.Adjust {
		out = append(out, uint32(v))
	}
	for _, v := range t.HashValues {
		out = append(out, uint32(v))
	}
	return append(out, t.Contents[:]...)
}

// TablesFromWords is the inverse of Words.
func TablesFromWords(words []uint32) (*Tables, error) {
	if len(words) != TableWords {
		return nil, fmt.Errorf("%w: got %d words, want %d: %w", ErrTables, len(words), TableWords, artifact.ErrSize)
	}

	t := &Tables{}
	rest := words
	for _, part := range []struct {
		dst   []uint16
		limit uint32
	}{
		{t.Flush[:], poker.NumClasses},
		{t.Unique5[:], poker.NumClasses},
		{t.Adjust[:], NumFlush - 1},
		{t.HashValues[:], poker.NumClasses},
	} {
		for i := range part.dst {
			if rest[i] > part.limit {
				return nil, fmt.Errorf("%w: value %d out of range", ErrTables, rest[i])
			}
			part.dst[i] = uint16(rest[i])
		}
		rest = rest[len(part.dst):]
	}
	copy(t.Contents[:], rest)

	for i, v := range t.Contents {
		d, ok := decodeContent(v)
		if !ok {
			return nil, fmt.Errorf("%w: contents[%d] = %#x is not a valid hand", ErrTables, i, v)
		}
		if want, _ := poker.CategoryOfClass(i); d.Category != want {
			return nil, fmt.Errorf("%w: contents[%d] is %s, want %s", ErrTables, i, d.Category, want)
		}
	}
	return t, nil
}

// SaveTables writes t as a word artifact.
func SaveTables(path string, t *Tables) error {
	return artifact.WriteWords(path, t.Words())
}

// LoadTables reads tables written by SaveTables.
func LoadTables(path string) (*Tables, error) {
	words, err := artifact.ReadWords(path)
	if err != nil {
		return nil, err
	}
	return TablesFromWords(words)
}
