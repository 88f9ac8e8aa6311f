// Package handtest holds hand fixtures and assertions shared by the engine
// test suites.
package handtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/poker"
)

// Case is a hand with its expected category and deciding ranks.
type Case struct {
	Cards    string
	Category poker.Category
	Ranks    string
}

// Cases covers every category for 5, 6 and 7 card hands, including wheels.
var Cases = []Case{
	{"As7dKh8c3h2d9c", poker.HighCard, "AK987"},
	{"QsAsKsJsTs9s", poker.StraightFlush, "AKQJT"},
	{"Qs7sKsJsTs9s", poker.StraightFlush, "KQJT9"},
	{"2sAs3s4s5s8s", poker.StraightFlush, "5432A"},
	{"2sAs3s4s7s8s", poker.Flush, "A8743"},
	{"AsAdAhAc8hKd", poker.FourOfAKind, "AAAAK"},
	{"KsKdKhKcAd", poker.FourOfAKind, "KKKKA"},
	{"AsAdAh7c8hKd", poker.ThreeOfAKind, "AAAK8"},
	{"AsAdAh8c8hKd", poker.FullHouse, "AAA88"},
	{"AsAdKh8c8hKd", poker.TwoPair, "AAKK8"},
	{"As7dKh2c3h2d", poker.Pair, "22AK7"},
	{"Qs7dKhJcTh9d", poker.Straight, "KQJT9"},
	{"QsAdKhJcTh9d", poker.Straight, "AKQJT"},
	{"2sAd3h4c5h3d", poker.Straight, "5432A"},
	{"KhKdKs9c9d9h2c", poker.FullHouse, "KKK99"},
	{"7h7d5s5c3h3d2c", poker.TwoPair, "77553"},
	{"AhKhQhJh9h2c3d", poker.Flush, "AKQJ9"},
	{"9c8d7h6s5c", poker.Straight, "98765"},
	{"2c3c4c5c6c", poker.StraightFlush, "65432"},
	{"2c3d5h7s9c", poker.HighCard, "97532"},
	{"TcTd4h4s4cJdJh", poker.FullHouse, "444JJ"},
}

// Ranks parses a string of rank characters.
func Ranks(t testing.TB, s string) [5]poker.Rank {
	t.Helper()
	require.Len(t, s, 5)
	var out [5]poker.Rank
	for i := range 5 {
		c, err := poker.ParseCard(s[i:i+1] + "s")
		require.NoError(t, err)
		out[i] = c.Rank()
	}
	return out
}

// Check evaluates every case with e and asserts category and decoded ranks.
func Check[C any](t *testing.T, e poker.Evaluator[C]) {
	t.Helper()
	for _, tc := range Cases {
		t.Run(tc.Cards, func(t *testing.T) {
			score := poker.SimpleEval(e, poker.MustParseCards(tc.Cards))
			require.NotZero(t, score)

			cat, ok := e.Category(score)
			require.True(t, ok)
			assert.Equal(t, tc.Category, cat)

			d, ok := e.Decode(score)
			require.True(t, ok)
			assert.Equal(t, tc.Category, d.Category)
			assert.Equal(t, Ranks(t, tc.Ranks), d.Ranks, "decoded %s", d)
		})
	}
}

// CheckOrdering asserts that each hand in order scores strictly below the
// next one.
func CheckOrdering[C any](t *testing.T, e poker.Evaluator[C], hands ...string) {
	t.Helper()
	for i := 1; i < len(hands); i++ {
		lo := poker.SimpleEval(e, poker.MustParseCards(hands[i-1]))
		hi := poker.SimpleEval(e, poker.MustParseCards(hands[i]))
		assert.Less(t, lo, hi, "%s should lose to %s", hands[i-1], hands[i])
	}
}

// Ladder is a list of hands in strictly increasing strength.
var Ladder = []string{
	"7c5d4h3s2c",
	"AcQd4h3s2c",
	"2c2d5h6s7c",
	"AcAdKhQsJc",
	"3c3d2h2sAc",
	"AcAdKhKsQc",
	"2c2d2h4s5c",
	"AcAdAhKsQc",
	"Ac2d3h4s5c",
	"2c3d4h5s6c",
	"TcJdQhKsAc",
	"2c3c4c5c7c",
	"AcKcQcJc9c",
	"2c2d2h3s3c",
	"AcAdAhKsKc",
	"2c2d2h2s3c",
	"AcAdAhAsKc",
	"Ac2c3c4c5c",
	"2c3c4c5c6c",
	"TcJcQcKcAc",
}
