package game

import (
	"fmt"

	"github.com/minaorangina/klondike/deck"
)

// FoundationPile builds one suit upwards from the Ace
type FoundationPile struct {
	cards   []deck.Card
	suit    deck.Suit
	suitSet bool
}

// NewFoundationPile constructs an empty foundation pile
func NewFoundationPile() *FoundationPile {
	return &FoundationPile{cards: []deck.Card{}}
}

// CanAccept reports whether c may be added next
func (f *FoundationPile) CanAccept(c deck.Card) bool {
	if !c.Valid() {
		return false
	}
	top, ok := f.Top()
	if !ok {
		return c.Rank == deck.Ace
	}
	return c.Suit == f.suit && c.Rank == top.Rank+1
}

// Add puts c on the foundation. The first card fixes the pile's suit.
func (f *FoundationPile) Add(c deck.Card) error {
	if !f.CanAccept(c) {
		if f.Empty() {
			return fmt.Errorf("%w: only an Ace can start a foundation, got %v", ErrFoundation, c)
		}
		return fmt.Errorf("%w: %v does not follow %v", ErrFoundation, c, f.cards[len(f.cards)-1])
	}
	if f.Empty() {
		f.suit, f.suitSet = c.Suit, true
	}
	f.cards = append(f.cards, c)
	return nil
}

// RemoveTop takes the top card off. An emptied pile forgets its suit.
func (f *FoundationPile) RemoveTop() (deck.Card, error) {
	if f.Empty() {
		return deck.Card{}, ErrPileEmpty
	}
	last := len(f.cards) - 1
	removed := f.cards[last]
	f.cards = f.cards[:last]
	if f.Empty() {
		f.suit, f.suitSet = 0, false
	}
	return removed, nil
}

// Top returns the highest card, if any
func (f *FoundationPile) Top() (deck.Card, bool) {
	if f.Empty() {
		return deck.Card{}, false
	}
	return f.cards[len(f.cards)-1], true
}

// Suit returns the suit the pile is building, if it has one yet
func (f *FoundationPile) Suit() (deck.Suit, bool) {
	return f.suit, f.suitSet
}

func (f *FoundationPile) CardAt(i int) (deck.Card, error) {
	if i < 0 || i >= len(f.cards) {
		return deck.Card{}, outOfRange("card", i, len(f.cards))
	}
	return f.cards[i], nil
}

func (f *FoundationPile) Len() int {
	return len(f.cards)
}

func (f *FoundationPile) Empty() bool {
	return len(f.cards) == 0
}
