package automaton

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lox/handrank/evaluator/transition"
	"github.com/lox/handrank/poker"
)

// Counts holds the number of hands per category. Index 0 counts hands whose
// rank is not a valid category.
type Counts [poker.NumCategories + 1]uint64

// Total returns the number of hands counted.
func (c Counts) Total() uint64 {
	var sum uint64
	for _, n := range c {
		sum += n
	}
	return sum
}

// Expected7CardCensus is the category distribution of all 133,784,560 seven
// card hands.
var Expected7CardCensus = Counts{
	poker.HighCard:      23294460,
	poker.Pair:          58627800,
	poker.TwoPair:       31433400,
	poker.ThreeOfAKind:  6461620,
	poker.Straight:      6180020,
	poker.Flush:         4047644,
	poker.FullHouse:     3473184,
	poker.FourOfAKind:   224848,
	poker.StraightFlush: 41584,
}

// Census walks every hand of exactly handSize distinct cards through the
// table and counts the categories reached. Work is split by first card.
func Census(ctx context.Context, words []uint32, handSize int) (Counts, error) {
	var total Counts
	if handSize < 5 || handSize > 7 {
		return total, fmt.Errorf("automaton: hand size %d not in [5, 7]", handSize)
	}
	if want := transition.TableWords(handSize); len(words) != want {
		return total, fmt.Errorf("automaton: %d card table has %d words, want %d", handSize, len(words), want)
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for first := 1; first <= poker.NumCards-handSize+1; first++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var local Counts
			p := words[transition.RowSize+first]
			walk(words, p, first+1, handSize-1, &local)

			mu.Lock()
			for i, n := range local {
				total[i] += n
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Counts{}, err
	}
	return total, nil
}

func walk(words []uint32, p uint32, next, remaining int, counts *Counts) {
	for c := next; c <= poker.NumCards-remaining+1; c++ {
		q := words[p+uint32(c)]
		if remaining == 1 {
			cat := q >> 12
			if cat > poker.NumCategories {
				cat = 0
			}
			counts[cat]++
			continue
		}
		walk(words, q, c+1, remaining-1, counts)
	}
}
