package crosscheck

import (
	"fmt"

	ph "github.com/paulhankin/poker"

	"github.com/lox/handrank/poker"
)

var oracleSuits = [poker.NumSuits]ph.Suit{
	poker.Spades:   ph.Spade,
	poker.Hearts:   ph.Heart,
	poker.Clubs:    ph.Club,
	poker.Diamonds: ph.Diamond,
}

var oracleDeck = func() [poker.NumCards]ph.Card {
	var deck [poker.NumCards]ph.Card
	for i := range deck {
		c := poker.Card(i)
		// The reference library numbers ranks 1 (ace) through 13 (king).
		r := ph.Rank(c.Rank().Value())
		if c.Rank() == poker.Ace {
			r = 1
		}
		pc, err := ph.MakeCard(oracleSuits[c.Suit()], r)
		if err != nil {
			panic(fmt.Sprintf("crosscheck: reference card %s: %v", c, err))
		}
		deck[i] = pc
	}
	return deck
}()

// Oracle scores 5, 6 or 7 cards with the reference evaluator from
// github.com/paulhankin/poker. Higher is stronger.
func Oracle(cards []poker.Card) (int16, error) {
	switch len(cards) {
	case 5:
		var h [5]ph.Card
		for i, c := range cards {
			h[i] = oracleDeck[c]
		}
		return ph.Eval5(&h), nil
	case 6:
		// No six card entry point, so take the best five card subset.
		var best int16 = -1 << 15
		var h [5]ph.Card
		for skip := range 6 {
			j := 0
			for i, c := range cards {
				if i == skip {
					continue
				}
				h[j] = oracleDeck[c]
				j++
			}
			best = max(best, ph.Eval5(&h))
		}
		return best, nil
	case 7:
		var h [7]ph.Card
		for i, c := range cards {
			h[i] = oracleDeck[c]
		}
		return ph.Eval7(&h), nil
	}
	return 0, fmt.Errorf("crosscheck: reference evaluator cannot score %d cards", len(cards))
}
