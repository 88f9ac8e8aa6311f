package poker

// Category is the class of a five card poker hand ordered from weakest to
// strongest. The zero value is not a valid category.
type Category uint8

const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumCategories is the number of valid categories.
const NumCategories = 9

// NumClasses is the number of distinct five card strength classes.
const NumClasses = 7462

const (
	highCardCount      = 1277
	onePairCount       = 13 * 220
	twoPairCount       = 78 * 11
	threeOfAKindCount  = 13 * 66
	straightCount      = 10
	flushCount         = 1277
	fullHouseCount     = 13 * 12
	fourOfAKindCount   = 13 * 12
	straightFlushCount = 10
)

var categoryCounts = [NumCategories + 1]int{
	0,
	highCardCount,
	onePairCount,
	twoPairCount,
	threeOfAKindCount,
	straightCount,
	flushCount,
	fullHouseCount,
	fourOfAKindCount,
	straightFlushCount,
}

// categoryOffsets[c] is the number of classes weaker than every hand of
// category c.
var categoryOffsets = func() [NumCategories + 2]int {
	var out [NumCategories + 2]int
	for c := 1; c <= NumCategories; c++ {
		out[c+1] = out[c] + categoryCounts[c]
	}
	return out
}()

// Valid reports whether c is one of the nine categories.
func (c Category) Valid() bool {
	return c >= HighCard && c <= StraightFlush
}

// Count returns the number of distinct strength classes in the category.
func (c Category) Count() int {
	if !c.Valid() {
		return 0
	}
	return categoryCounts[c]
}

// Offset returns how many strength classes rank below the category.
func (c Category) Offset() int {
	if !c.Valid() {
		return 0
	}
	return categoryOffsets[c]
}

// CategoryOfClass returns the category for a dense 0-based class index,
// where 0 is the weakest high card and 7461 the royal flush.
func CategoryOfClass(class int) (Category, bool) {
	if class < 0 || class >= NumClasses {
		return 0, false
	}
	for c := StraightFlush; c >= HighCard; c-- {
		if class >= categoryOffsets[c] {
			return c, true
		}
	}
	return 0, false
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}
