// Package transition evaluates hands by walking a precomputed state
// transition table, one lookup per card.
//
// The table is a flat []uint32. Row r (r >= 1) starts at r*53; slot 0 of a
// row holds the rank of the partial hand when it has at least five cards,
// and slots 1-52 hold the next row offset or, on the final card, the rank.
// Ranks are category<<12 | within, where within counts from 1 inside the
// category.
package transition

import (
	"fmt"

	"github.com/lox/handrank/evaluator/phash"
	"github.com/lox/handrank/internal/artifact"
	"github.com/lox/handrank/poker"
)

// Card is a 1-based card index, 1 (2s) to 52 (Ad).
type Card uint32

const (
	// RowSize is the number of words per state row.
	RowSize = poker.NumCards + 1
	// Table lengths for the five, six and seven card automata: one row per
	// reachable state plus the unused row 0.
	Words5 = 357008
	Words6 = 3979770
	Words7 = 32487834
	// DefaultHandSize is the hand size the standard table is built for.
	DefaultHandSize = 7

	categoryShift = 12
	withinMask    = 1<<categoryShift - 1
)

// Evaluator walks a transition table.
type Evaluator struct {
	words    []uint32
	handSize int
	tables   *phash.Tables
	decoder  *phash.Evaluator
}

var _ poker.Evaluator[Card] = (*Evaluator)(nil)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithHandSize sets the hand size the table was built for (5, 6 or 7).
func WithHandSize(n int) Option {
	return func(e *Evaluator) {
		e.handSize = n
	}
}

// WithTables sets the phash tables used by Decode.
func WithTables(t *phash.Tables) Option {
	return func(e *Evaluator) {
		e.tables = t
	}
}

// New wraps a table produced by the automaton generator. The slice is
// retained and must not be modified.
func New(words []uint32, opts ...Option) (*Evaluator, error) {
	e := &Evaluator{words: words, handSize: DefaultHandSize}
	for _, opt := range opts {
		opt(e)
	}
	if e.handSize < 5 || e.handSize > 7 {
		return nil, fmt.Errorf("transition: hand size %d not in [5, 7]", e.handSize)
	}
	if want := TableWords(e.handSize); len(words) != want {
		return nil, fmt.Errorf("%w: %d card table has %d words, want %d", artifact.ErrSize, e.handSize, len(words), want)
	}
	if e.tables == nil {
		e.tables = phash.Default()
	}
	e.decoder = phash.NewWithTables(e.tables)
	return e, nil
}

// TableWords returns the table length for a hand size, or 0 when the size
// is not 5, 6 or 7.
func TableWords(handSize int) int {
	switch handSize {
	case 5:
		return Words5
	case 6:
		return Words6
	case 7:
		return Words7
	}
	return 0
}

// Open loads a table artifact from path.
func Open(path string, opts ...Option) (*Evaluator, error) {
	words, err := artifact.ReadWords(path)
	if err != nil {
		return nil, err
	}
	e, err := New(words, opts...)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return e, nil
}

// HandSize returns the hand size the table was built for.
func (e *Evaluator) HandSize() int {
	return e.handSize
}

// States returns the number of rows, including the unused row 0.
func (e *Evaluator) States() int {
	return len(e.words) / RowSize
}

// MakeCard returns the 1-based index of a canonical card.
func (*Evaluator) MakeCard(c poker.Card) Card {
	return Card(c.Index(poker.GroupByRank) + 1)
}

// Eval scores 5 cards up to the table's hand size. Other lengths score 0.
func (e *Evaluator) Eval(cards []Card) poker.Score {
	if len(cards) < 5 || len(cards) > e.handSize {
		return 0
	}
	p := uint32(RowSize)
	for _, c := range cards {
		p = e.words[p+uint32(c)]
	}
	if len(cards) < e.handSize {
		p = e.words[p]
	}
	return poker.Score(p)
}

// Category returns the category stored in a score.
func (*Evaluator) Category(s poker.Score) (poker.Category, bool) {
	if _, ok := Strength(s); !ok {
		return 0, false
	}
	return poker.Category(s >> categoryShift), true
}

// Decode recovers category and ranks through the phash contents table.
func (e *Evaluator) Decode(s poker.Score) (poker.Decoded, bool) {
	strength, ok := Strength(s)
	if !ok {
		return poker.Decoded{}, false
	}
	return e.decoder.Decode(strength)
}

// FromStrength converts a phash strength (1-7462) to a table rank.
func FromStrength(s poker.Score) (poker.Score, bool) {
	if s < 1 || s > phash.MaxScore {
		return 0, false
	}
	cat, ok := poker.CategoryOfClass(int(s) - 1)
	if !ok {
		return 0, false
	}
	within := int(s) - cat.Offset()
	return poker.Score(int(cat)<<categoryShift | within), true
}

// Strength converts a table rank to the phash strength it encodes.
func Strength(s poker.Score) (poker.Score, bool) {
	hi := uint32(s) >> categoryShift
	if hi > poker.NumCategories {
		return 0, false
	}
	cat := poker.Category(hi)
	within := int(s & withinMask)
	if !cat.Valid() || within < 1 || within > cat.Count() {
		return 0, false
	}
	return poker.Score(cat.Offset() + within), true
}
