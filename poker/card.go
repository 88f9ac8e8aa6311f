package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when card text cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Rank is a card rank index, 0 (deuce) through 12 (ace).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks.
const NumRanks = 13

const rankChars = "23456789TJQKA"

// Value returns the conventional face value, 2 through 14.
func (r Rank) Value() int {
	return int(r) + 2
}

// String returns the single character used in card text.
func (r Rank) String() string {
	if r >= NumRanks {
		return "?"
	}
	return string(rankChars[r])
}

// Suit is a card suit index.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// NumSuits is the number of suits.
const NumSuits = 4

const suitChars = "shcd"

// String returns the single character used in card text.
func (s Suit) String() string {
	if s >= NumSuits {
		return "?"
	}
	return string(suitChars[s])
}

// IndexPolicy selects one of the two 0-51 orderings of the deck.
type IndexPolicy uint8

const (
	// GroupByRank orders the deck 2s 2h 2c 2d 3s ... Ad. This is the
	// canonical ordering used for Card values.
	GroupByRank IndexPolicy = iota
	// GroupBySuit orders the deck 2s 3s ... As 2h ... Ad.
	GroupBySuit
)

// Card is one of the 52 playing cards, stored as its GroupByRank index.
type Card uint8

// NumCards is the size of a deck.
const NumCards = 52

// NewCard builds a card from rank and suit indexes. Out-of-range arguments
// are a caller bug and panic.
func NewCard(rank Rank, suit Suit) Card {
	if rank >= NumRanks || suit >= NumSuits {
		panic(fmt.Sprintf("poker: NewCard(%d, %d) out of range", rank, suit))
	}
	return Card(uint8(rank)*NumSuits + uint8(suit))
}

// CardFromIndex returns the card at position index under policy. Indexes
// of 52 or more panic.
func CardFromIndex(index int, policy IndexPolicy) Card {
	if index < 0 || index >= NumCards {
		panic(fmt.Sprintf("poker: CardFromIndex(%d) out of range", index))
	}
	if policy == GroupBySuit {
		return Card((index%NumRanks)*NumSuits + index/NumRanks)
	}
	return Card(index)
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return Rank(c / NumSuits)
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit(c % NumSuits)
}

// Index returns the card's position under policy.
func (c Card) Index(policy IndexPolicy) int {
	if policy == GroupBySuit {
		return int(c.Suit())*NumRanks + int(c.Rank())
	}
	return int(c)
}

// String returns the two character form, e.g. "As".
func (c Card) String() string {
	if c >= NumCards {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// ParseCard parses the two character form produced by String.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q has length %d", ErrInvalidCard, s, len(s))
	}
	rank := strings.IndexByte(rankChars, s[0])
	if rank < 0 {
		return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, s[0])
	}
	suit := strings.IndexByte(suitChars, s[1])
	if suit < 0 {
		return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, s[1])
	}
	return NewCard(Rank(rank), Suit(suit)), nil
}

// ParseCards parses concatenated card text such as "As7dKh". Spaces are
// ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d in %q", ErrInvalidCard, len(s), s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i/2, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests and fixtures).
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards joins the text form of cards.
func FormatCards(cards []Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
