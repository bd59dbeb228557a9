package game

import (
	"fmt"
	"strings"

	"github.com/minaorangina/klondike/deck"
)

// Variant selects the rule set a game is played with
type Variant int

const (
	// Basic deals a triangle with only the front cards up. Cascades build down
	// in alternating colours and only a King may fill an empty cascade.
	Basic Variant = iota
	// Whitehead deals every card face up. Cascades build down in the same
	// colour, moved runs must share a suit, and any card may fill an empty cascade.
	Whitehead
)

var variantNames = []string{"basic", "whitehead"}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant maps "basic" or "whitehead", in any case, to a Variant
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown variant %q, must be basic or whitehead", ErrArgument, s)
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// dealVisible reports whether the card dealt in row into pile lands face up
func (v Variant) dealVisible(row, pile int) bool {
	switch v {
	case Whitehead:
		return true
	default:
		return row == pile
	}
}

// stackable reports whether top may be placed on bottom in a cascade
func (v Variant) stackable(bottom, top deck.Card) bool {
	if bottom.Rank-top.Rank != 1 {
		return false
	}
	switch v {
	case Whitehead:
		return bottom.IsBlack() == top.IsBlack()
	default:
		return bottom.IsBlack() != top.IsBlack()
	}
}

// emptyPileAccepts reports whether c may start an empty cascade
func (v Variant) emptyPileAccepts(c deck.Card) bool {
	switch v {
	case Whitehead:
		return true
	default:
		return c.Rank == deck.King
	}
}

// validSequence reports whether cards, lead card first, may move together
func (v Variant) validSequence(cards []deck.Card) bool {
	for i := 1; i < len(cards); i++ {
		prev, curr := cards[i-1], cards[i]
		if prev.Rank-curr.Rank != 1 {
			return false
		}
		switch v {
		case Whitehead:
			if prev.Suit != curr.Suit {
				return false
			}
		default:
			if prev.IsBlack() == curr.IsBlack() {
				return false
			}
		}
	}
	return true
}
