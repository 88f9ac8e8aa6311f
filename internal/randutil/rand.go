// Package randutil derives reproducible random sources and random hands.
package randutil

import (
	rand "math/rand/v2"

	"github.com/lox/handrank/poker"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG source seeded from seed. The same seed always yields the
// same sequence.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Stream returns an independent source for worker n of a run seeded with
// seed, so parallel checks stay reproducible regardless of scheduling.
func Stream(seed int64, n int) *rand.Rand {
	u := mix(uint64(seed)) + uint64(n+1)*goldenRatio64
	return rand.New(rand.NewPCG(mix(u), mix(u^goldenRatio64)))
}

// Hand deals size distinct cards into dst and returns it. dst is grown when
// it is too short.
func Hand(rng *rand.Rand, dst []poker.Card, size int) []poker.Card {
	if cap(dst) < size {
		dst = make([]poker.Card, size)
	}
	dst = dst[:size]
	var used uint64
	for i := 0; i < size; {
		c := rng.IntN(poker.NumCards)
		if used&(1<<c) != 0 {
			continue
		}
		used |= 1 << c
		dst[i] = poker.Card(c)
		i++
	}
	return dst
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
