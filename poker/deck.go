package poker

import (
	rand "math/rand/v2"
)

// Deck returns the 52 cards in canonical order.
func Deck() [NumCards]Card {
	var d [NumCards]Card
	for i := range d {
		d[i] = Card(i)
	}
	return d
}

// Shuffled returns a shuffled copy of the deck. rng must not be nil.
func Shuffled(rng *rand.Rand) [NumCards]Card {
	d := Deck()
	// Fisher-Yates
	for i := len(d) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
	return d
}

// Deal returns n distinct random cards.
func Deal(rng *rand.Rand, n int) []Card {
	if n < 0 || n > NumCards {
		return nil
	}
	d := Shuffled(rng)
	out := make([]Card, n)
	copy(out, d[:n])
	return out
}
