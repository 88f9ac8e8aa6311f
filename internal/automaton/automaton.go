// Package automaton builds the state transition table walked by the
// transition evaluator.
//
// Every partial hand is reduced to a canonical ID: one byte per card,
// rank<<4 | suit with rank 1-13 and suit 1-4, or suit 0 when the suit can no
// longer contribute to a flush. Bytes are sorted descending. IDs are
// discovered breadth first from the empty hand, then each ID gets a row of
// 53 words holding the next row offset per card, or the final rank once the
// hand is complete.
package automaton

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/handrank/evaluator/phash"
	"github.com/lox/handrank/evaluator/transition"
	"github.com/lox/handrank/poker"
)

// ErrInvariant is returned when generation reaches a state that a correct
// build can never produce.
var ErrInvariant = errors.New("automaton invariant violated")

// sortNetwork is a 16 comparator sorting network for seven elements.
var sortNetwork = [16][2]int{
	{0, 4}, {1, 5}, {2, 6}, {0, 2}, {1, 3},
	{4, 6}, {2, 4}, {3, 5}, {0, 1}, {2, 3},
	{4, 5}, {1, 4}, {3, 6}, {1, 2}, {3, 4},
	{5, 6},
}

// Generator builds transition tables.
type Generator struct {
	handSize      int
	logger        *log.Logger
	clock         quartz.Clock
	eval          *phash.Evaluator
	progressEvery int
}

// Option configures a Generator.
type Option func(*Generator)

// WithHandSize sets the number of cards in a complete hand (5, 6 or 7).
func WithHandSize(n int) Option {
	return func(g *Generator) { g.handSize = n }
}

// WithLogger sets the progress logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithClock sets the clock used to time the build.
func WithClock(c quartz.Clock) Option {
	return func(g *Generator) { g.clock = c }
}

// WithEvaluator sets the evaluator that ranks complete hands.
func WithEvaluator(e *phash.Evaluator) Option {
	return func(g *Generator) { g.eval = e }
}

// WithProgressEvery logs progress after every n states.
func WithProgressEvery(n int) Option {
	return func(g *Generator) { g.progressEvery = n }
}

// New returns a generator for seven card hands unless configured otherwise.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		handSize:      transition.DefaultHandSize,
		logger:        log.Default(),
		clock:         quartz.NewReal(),
		progressEvery: 100_000,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.handSize < 5 || g.handSize > 7 {
		return nil, fmt.Errorf("automaton: hand size %d not in [5, 7]", g.handSize)
	}
	if g.progressEvery <= 0 {
		return nil, fmt.Errorf("automaton: progress interval must be positive, got %d", g.progressEvery)
	}
	if g.eval == nil {
		g.eval = phash.New()
	}
	g.logger = g.logger.WithPrefix("automaton")
	return g, nil
}

// Result is a generated table.
type Result struct {
	Words    []uint32
	HandSize int
	// States counts discovered IDs, including the empty hand.
	States  int
	Elapsed time.Duration
}

// Generate discovers every state and fills the transition table.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	start := g.clock.Now()
	g.logger.Info("Generating transition table", "hand_size", g.handSize)

	ids, err := g.discover(ctx)
	if err != nil {
		return nil, err
	}
	g.logger.Info("Discovered states", "states", len(ids), "elapsed", g.clock.Since(start))

	words, err := g.fill(ctx, ids)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Words:    words,
		HandSize: g.handSize,
		States:   len(ids),
		Elapsed:  g.clock.Since(start),
	}
	g.logger.Info("Transition table complete", "words", len(words), "elapsed", res.Elapsed)
	return res, nil
}

func (g *Generator) discover(ctx context.Context) ([]uint64, error) {
	ids := []uint64{0}
	for i := 0; i < len(ids); i++ {
		if err := g.checkpoint(ctx, "Discovering states", i, len(ids)); err != nil {
			return nil, err
		}
		for card := 1; card <= poker.NumCards; card++ {
			id, n := g.makeID(ids[i], card)
			if n < g.handSize {
				ids = saveID(ids, id)
			}
		}
	}
	return ids, nil
}

func (g *Generator) fill(ctx context.Context, ids []uint64) ([]uint32, error) {
	words := make([]uint32, (len(ids)+1)*transition.RowSize)
	for i, state := range ids {
		if err := g.checkpoint(ctx, "Filling transitions", i, len(ids)); err != nil {
			return nil, err
		}
		row := (i + 1) * transition.RowSize
		for card := 1; card <= poker.NumCards; card++ {
			id, n := g.makeID(state, card)
			if n < g.handSize {
				slot, ok := lookupID(ids, id)
				if !ok {
					return nil, fmt.Errorf("%w: state %#x missing after discovery", ErrInvariant, id)
				}
				words[row+card] = uint32((slot + 1) * transition.RowSize)
				continue
			}
			rank, err := g.rank(id)
			if err != nil {
				return nil, err
			}
			words[row+card] = rank
		}

		// Partial hands of five or more cards can be ranked directly.
		if cardCount(state) >= 5 {
			rank, err := g.rank(state)
			if err != nil {
				return nil, err
			}
			words[row] = rank
		}
	}
	return words, nil
}

func (g *Generator) checkpoint(ctx context.Context, msg string, i, total int) error {
	if i%g.progressEvery != 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if i > 0 {
		g.logger.Debug(msg, "state", i, "states", total)
	}
	return nil
}

// makeID adds card (1-52) to the hand identified by prev and returns the new
// ID and the number of cards counted. The ID is 0 when the card duplicates
// one already held or a rank would appear five times.
func (g *Generator) makeID(prev uint64, card int) (uint64, int) {
	var (
		wk        [8]uint32 // wk[7] stays 0 as a terminator
		suitCount [5]int
		rankCount [14]int
	)
	for i := range 6 {
		wk[i+1] = uint32(prev>>(8*i)) & 0xff
	}
	n := card - 1
	wk[0] = uint32(((n>>2)+1)<<4 + (n & 3) + 1)

	dup := false
	count := 0
	for wk[count] != 0 {
		suitCount[wk[count]&0xf]++
		rankCount[(wk[count]>>4)&0xf]++
		if count != 0 && wk[0] == wk[count] {
			dup = true
		}
		count++
	}
	if dup {
		return 0, count
	}
	if count > 4 {
		for _, c := range rankCount[1:] {
			if c > 4 {
				return 0, count
			}
		}
	}

	// A suit matters only while it can still reach five cards.
	need := count - (g.handSize - 5)
	if need > 1 {
		for i := range count {
			if suitCount[wk[i]&0xf] < need {
				wk[i] &= 0xf0
			}
		}
	}

	for _, p := range sortNetwork {
		if wk[p[0]] < wk[p[1]] {
			wk[p[0]], wk[p[1]] = wk[p[1]], wk[p[0]]
		}
	}

	var id uint64
	for i := range 7 {
		id |= uint64(wk[i]) << (8 * i)
	}
	return id, count
}

// saveID inserts id into the sorted ids, appending when it is the largest.
func saveID(ids []uint64, id uint64) []uint64 {
	if id == 0 {
		return ids
	}
	last := ids[len(ids)-1]
	if id >= last {
		if id > last {
			ids = append(ids, id)
		}
		return ids
	}
	i, found := slices.BinarySearch(ids, id)
	if found {
		return ids
	}
	return slices.Insert(ids, i, id)
}

func lookupID(ids []uint64, id uint64) (int, bool) {
	if id == 0 {
		return 0, true
	}
	return slices.BinarySearch(ids, id)
}

func cardCount(id uint64) int {
	return (bits.Len64(id) + 7) / 8
}

// rank evaluates the hand an ID stands for. Insignificant suits are dealt
// round robin, skipping the significant suit so no extra flush appears.
func (g *Generator) rank(id uint64) (uint32, error) {
	if id == 0 {
		return 0, nil
	}

	var (
		cards    [7]phash.Card
		hold     [7]uint32
		n        int
		mainSuit uint32 = 20
	)
	for n < 7 {
		c := uint32(id>>(8*n)) & 0xff
		if c == 0 {
			break
		}
		hold[n] = c
		if c&0xf != 0 {
			mainSuit = c & 0xf
		}
		n++
	}
	if n < 5 {
		return 0, fmt.Errorf("%w: ranking %d card state %#x", ErrInvariant, n, id)
	}

	next := uint32(1)
	for i, c := range hold[:n] {
		suit := c & 0xf
		if suit == 0 {
			suit = next
			next = next%4 + 1
			if suit == mainSuit {
				suit = next
				next = next%4 + 1
			}
		}
		rank := c>>4 - 1
		cards[i] = g.eval.MakeCard(poker.NewCard(poker.Rank(rank), poker.Suit(suit-1)))
	}

	score, ok := transition.FromStrength(g.eval.Eval(cards[:n]))
	if !ok {
		return 0, fmt.Errorf("%w: state %#x has no valid strength", ErrInvariant, id)
	}
	return uint32(score), nil
}
