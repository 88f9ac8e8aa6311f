package bitwise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/internal/combin"
	"github.com/lox/handrank/internal/handtest"
	"github.com/lox/handrank/poker"
)

func TestMakeCard(t *testing.T) {
	t.Parallel()
	e := New()

	tests := []struct {
		card string
		want Card
	}{
		{"2s", 0x00020011},
		{"As", 0x2001001D},
		{"Ah", 0x6001008D},
		{"Kd", 0xD000200C},
	}
	for _, tt := range tests {
		c := poker.MustParseCards(tt.card)[0]
		assert.Equal(t, tt.want, e.MakeCard(c), tt.card)
	}
}

func TestCases(t *testing.T) {
	t.Parallel()
	handtest.Check(t, New())
}

func TestOrdering(t *testing.T) {
	t.Parallel()
	handtest.CheckOrdering(t, New(), handtest.Ladder...)
}

func TestScoreLayout(t *testing.T) {
	t.Parallel()
	e := New()

	tests := []struct {
		cards string
		want  poker.Score
	}{
		{"TcJcQcKcAc", 9<<20 | 13<<16},
		{"Ac2c3c4c5c", 9<<20 | 4<<16},
		{"AcAdAhAsKc", 8<<20 | 13<<16 | 12},
		{"AsAdAh8c8h", 7<<20 | 13<<16 | 7<<4},
		{"2c3d4h5s6c", 5<<20 | 5<<16},
		{"AsAdKh8c8hKd", 3<<20 | 13<<16 | 12<<8 | 7},
	}
	for _, tt := range tests {
		got := poker.SimpleEval(e, poker.MustParseCards(tt.cards))
		assert.Equal(t, tt.want, got, tt.cards)
	}
}

func TestEvalRejectsSize(t *testing.T) {
	t.Parallel()
	e := New()
	assert.Zero(t, poker.SimpleEval(e, poker.MustParseCards("AsKs")))
	assert.Zero(t, e.Eval(poker.MakeCards[Card](e, poker.MustParseCards("AsKsQsJsTs9s8s7s"))))
}

func TestDecodeRejectsInvalid(t *testing.T) {
	t.Parallel()
	e := New()

	tests := []struct {
		name  string
		score poker.Score
	}{
		{"zero", 0},
		{"category ten", 10 << 20},
		{"bits above the category", 1<<24 | 1<<20 | 0xDCBA8},
		{"high card without ranks", 1 << 20},
		{"high card missing low nibble", 1<<20 | 0x0FFFF},
		{"rank nibbles above ace", 1<<20 | 0xFFFFF},
		{"high card repeated rank", 1<<20 | 0xDDCBA},
		{"high card ascending", 1<<20 | 0xABCD8},
		{"high card straight", 1<<20 | 0xDCBA9},
		{"high card wheel", 1<<20 | 0xD4321},
		{"pair kicker in pair slot", 2<<20 | 0xD1CBA},
		{"pair kicker equals pair", 2<<20 | 0xD0DBA},
		{"two pair ascending", 3<<20 | 0x20D03},
		{"trips kickers ascending", 4<<20 | 0xD0023},
		{"straight above ace", 5<<20 | 0xF0000},
		{"straight below five", 5<<20 | 0x30000},
		{"straight with low nibble", 5<<20 | 0xD0001},
		{"flush straight", 6<<20 | 0x65432},
		{"full house of one rank", 7<<20 | 0xD00D0},
		{"full house pair in wrong slot", 7<<20 | 0xD000C},
		{"quads kicker equals quad", 8<<20 | 0xD000D},
		{"straight flush with kicker", 9<<20 | 0xD000C},
	}
	for _, tt := range tests {
		_, ok := e.Decode(tt.score)
		assert.False(t, ok, "%s: Decode(%#x)", tt.name, uint32(tt.score))
		_, ok = e.Category(tt.score)
		assert.False(t, ok, "%s: Category(%#x)", tt.name, uint32(tt.score))
	}
}

// Category and Decode accept exactly the scores Eval produces.
func TestDecodeAcceptsOnlyEvalScores(t *testing.T) {
	t.Parallel()
	e := New()

	valid := make(map[poker.Score]poker.Category, poker.NumClasses)
	it := combin.NewRankClasses(5)
	for {
		hand, ok := it.Next()
		if !ok {
			break
		}
		s := poker.SimpleEval(e, hand)
		valid[s] = poker.Category(uint32(s) >> categoryBits)
	}
	require.Len(t, valid, poker.NumClasses)

	for s := poker.Score(0); s < poker.Score(poker.NumCategories+1)<<categoryBits; s++ {
		want, isValid := valid[s]
		d, ok := e.Decode(s)
		if ok != isValid {
			t.Fatalf("Decode(%#x) ok = %v, want %v", uint32(s), ok, isValid)
		}
		cat, ok := e.Category(s)
		if ok != isValid {
			t.Fatalf("Category(%#x) ok = %v, want %v", uint32(s), ok, isValid)
		}
		if isValid && (cat != want || d.Category != want) {
			t.Fatalf("score %#x: Category %s, Decode %s, want %s", uint32(s), cat, d.Category, want)
		}
	}
}

func TestSuitOrderIndependence(t *testing.T) {
	t.Parallel()
	e := New()
	a := poker.SimpleEval(e, poker.MustParseCards("AsKdQh7c3s2d9c"))
	b := poker.SimpleEval(e, poker.MustParseCards("9c2d3s7cQhKdAs"))
	require.Equal(t, a, b)
}

func BenchmarkEval7(b *testing.B) {
	e := New()
	cards := poker.MakeCards[Card](e, poker.MustParseCards("As7dKh8c3h2d9c"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Eval(cards)
	}
}
