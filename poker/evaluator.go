package poker

import "strings"

// Score is an engine-specific hand strength. For hands of the same size
// evaluated by the same engine, a higher score is a stronger hand.
type Score uint32

// Decoded is the readable form of a score: the category and the five ranks
// that determine it, grouped ranks first and kickers after. A wheel reads
// 5 4 3 2 A.
type Decoded struct {
	Category Category
	Ranks    [5]Rank
}

// String renders the decoded hand, e.g. "Full House [A A A 8 8]".
func (d Decoded) String() string {
	var b strings.Builder
	b.WriteString(d.Category.String())
	b.WriteString(" [")
	for i, r := range d.Ranks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Evaluator is implemented by each hand ranking engine. C is the engine's
// private card encoding.
type Evaluator[C any] interface {
	// MakeCard converts a canonical card to the engine encoding.
	MakeCard(Card) C
	// Eval scores 5 to 7 engine cards. Other sizes score 0.
	Eval(cards []C) Score
	// Category classifies a score produced by Eval.
	Category(Score) (Category, bool)
	// Decode recovers category and deciding ranks from a score.
	Decode(Score) (Decoded, bool)
}

// MakeCards converts canonical cards to an engine's encoding.
func MakeCards[C any](e Evaluator[C], cards []Card) []C {
	out := make([]C, len(cards))
	for i, c := range cards {
		out[i] = e.MakeCard(c)
	}
	return out
}

// SimpleEval converts and scores canonical cards in one step.
func SimpleEval[C any](e Evaluator[C], cards []Card) Score {
	if len(cards) < 5 || len(cards) > 7 {
		return 0
	}
	var buf [7]C
	for i, c := range cards {
		buf[i] = e.MakeCard(c)
	}
	return e.Eval(buf[:len(cards)])
}
