package poker

import (
	"errors"
	rand "math/rand/v2"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit())
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}
	if aceSpades.Rank().Value() != 14 {
		t.Errorf("Expected ace value 14, got %d", aceSpades.Rank().Value())
	}

	// Lowest card in canonical order
	twoSpades := NewCard(Two, Spades)
	if twoSpades != 0 || twoSpades.String() != "2s" {
		t.Errorf("Expected 2s at index 0, got %s at %d", twoSpades, twoSpades)
	}
	if d := NewCard(Ace, Diamonds); d != 51 {
		t.Errorf("Expected Ad at index 51, got %d", d)
	}
}

func TestNewCardPanics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fn   func()
	}{
		{"rank out of range", func() { NewCard(13, Spades) }},
		{"suit out of range", func() { NewCard(Ace, 4) }},
		{"index out of range", func() { CardFromIndex(52, GroupByRank) }},
		{"negative index", func() { CardFromIndex(-1, GroupBySuit) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(Two, Hearts)},
		{name: "king of diamonds", input: "Kd", wantCard: NewCard(King, Diamonds)},
		{name: "ten of clubs", input: "Tc", wantCard: NewCard(Ten, Clubs)},
		{name: "empty", input: "", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
		{name: "single char", input: "A", wantErr: true},
		{name: "lowercase rank", input: "as", wantErr: true},
		{name: "uppercase suit", input: "AS", wantErr: true},
		{name: "ten as digits", input: "10", wantErr: true},
		{name: "unknown suit", input: "Ax", wantErr: true},
		{name: "one", input: "1s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCard(%q) expected error, got %s", tt.input, got)
				} else if !errors.Is(err, ErrInvalidCard) {
					t.Errorf("ParseCard(%q) error %v does not wrap ErrInvalidCard", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.wantCard {
				t.Errorf("ParseCard(%q) = %s, want %s", tt.input, got, tt.wantCard)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("As 7d Kh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 3 || FormatCards(cards) != "As7dKh" {
		t.Errorf("got %v", cards)
	}

	if _, err := ParseCards("As7"); !errors.Is(err, ErrInvalidCard) {
		t.Errorf("odd length: expected ErrInvalidCard, got %v", err)
	}
	if _, err := ParseCards("AsXd"); !errors.Is(err, ErrInvalidCard) {
		t.Errorf("bad card: expected ErrInvalidCard, got %v", err)
	}
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for i, c := range Deck() {
		if int(c) != i {
			t.Errorf("Deck()[%d] = %d", i, c)
		}
		s := c.String()
		if seen[s] {
			t.Errorf("duplicate card %s", s)
		}
		seen[s] = true

		parsed, err := ParseCard(s)
		if err != nil || parsed != c {
			t.Errorf("round trip %s: got %s, %v", s, parsed, err)
		}
	}
	if len(seen) != NumCards {
		t.Errorf("expected 52 cards, got %d", len(seen))
	}
}

func TestIndexPolicies(t *testing.T) {
	t.Parallel()
	for _, policy := range []IndexPolicy{GroupByRank, GroupBySuit} {
		seen := make(map[Card]bool)
		for i := range NumCards {
			c := CardFromIndex(i, policy)
			if seen[c] {
				t.Errorf("policy %d: index %d maps to duplicate card %s", policy, i, c)
			}
			seen[c] = true
			if got := c.Index(policy); got != i {
				t.Errorf("policy %d: %s.Index = %d, want %d", policy, c, got, i)
			}
		}
	}

	// Suit grouping walks every rank of a suit first.
	if got := CardFromIndex(1, GroupBySuit); got.String() != "3s" {
		t.Errorf("GroupBySuit index 1 = %s, want 3s", got)
	}
	if got := CardFromIndex(13, GroupBySuit); got.String() != "2h" {
		t.Errorf("GroupBySuit index 13 = %s, want 2h", got)
	}
	if got := CardFromIndex(1, GroupByRank); got.String() != "2h" {
		t.Errorf("GroupByRank index 1 = %s, want 2h", got)
	}
}

func TestShuffled(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(1, 2))
	d := Shuffled(rng)

	var seen [NumCards]bool
	for _, c := range d {
		seen[c] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("card %s missing after shuffle", Card(i))
		}
	}

	hand := Deal(rand.New(rand.NewPCG(1, 2)), 7)
	if len(hand) != 7 {
		t.Fatalf("expected 7 cards, got %d", len(hand))
	}
	for i := range hand {
		if hand[i] != d[i] {
			t.Errorf("Deal with the same seed differs at %d", i)
		}
	}
}

func TestCategory(t *testing.T) {
	t.Parallel()
	total := 0
	for c := HighCard; c <= StraightFlush; c++ {
		if c.Offset() != total {
			t.Errorf("%s offset = %d, want %d", c, c.Offset(), total)
		}
		total += c.Count()
	}
	if total != NumClasses {
		t.Errorf("category counts sum to %d, want %d", total, NumClasses)
	}

	tests := []struct {
		class int
		want  Category
	}{
		{0, HighCard},
		{1276, HighCard},
		{1277, Pair},
		{4137, TwoPair},
		{4995, ThreeOfAKind},
		{5853, Straight},
		{5863, Flush},
		{7140, FullHouse},
		{7296, FourOfAKind},
		{7452, StraightFlush},
		{7461, StraightFlush},
	}
	for _, tt := range tests {
		got, ok := CategoryOfClass(tt.class)
		if !ok || got != tt.want {
			t.Errorf("CategoryOfClass(%d) = %s, %v; want %s", tt.class, got, ok, tt.want)
		}
	}
	if _, ok := CategoryOfClass(NumClasses); ok {
		t.Errorf("CategoryOfClass(%d) should be invalid", NumClasses)
	}
	if Category(0).Valid() || Category(10).Valid() {
		t.Errorf("out of range categories reported valid")
	}
}

func TestDecodedString(t *testing.T) {
	t.Parallel()
	d := Decoded{Category: FullHouse, Ranks: [5]Rank{Ace, Ace, Ace, Eight, Eight}}
	if got := d.String(); got != "Full House [A A A 8 8]" {
		t.Errorf("got %q", got)
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("Kd")
	}
}

func BenchmarkCardString(b *testing.B) {
	card := NewCard(Ace, Spades)
	for i := 0; i < b.N; i++ {
		_ = card.String()
	}
}
