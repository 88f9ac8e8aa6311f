package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/poker"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for range 16 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestStreamsDiffer(t *testing.T) {
	seen := make(map[uint64]int)
	for n := range 8 {
		v := Stream(7, n).Uint64()
		_, dup := seen[v]
		assert.False(t, dup, "stream %d repeats stream %d", n, seen[v])
		seen[v] = n
	}
	assert.Equal(t, Stream(7, 3).Uint64(), Stream(7, 3).Uint64())
}

func TestHandDealsDistinctCards(t *testing.T) {
	rng := New(99)
	var buf []poker.Card
	for range 1000 {
		buf = Hand(rng, buf, 7)
		require.Len(t, buf, 7)

		var used uint64
		for _, c := range buf {
			require.Less(t, int(c), poker.NumCards)
			require.Zero(t, used&(1<<c), "duplicate %s in %s", c, poker.FormatCards(buf))
			used |= 1 << c
		}
	}

	buf = Hand(rng, buf, 5)
	assert.Len(t, buf, 5)
}
