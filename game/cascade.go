package game

import (
	"fmt"

	"github.com/minaorangina/klondike/deck"
)

type cascadeCard struct {
	card    deck.Card
	visible bool
}

// CascadePile is a tableau column. Index 0 is the first card dealt into it;
// the last card is the front card.
type CascadePile struct {
	cards []cascadeCard
}

// NewCascadePile constructs an empty cascade pile
func NewCascadePile() *CascadePile {
	return &CascadePile{cards: []cascadeCard{}}
}

// AddCard puts c on the front of the pile, face up or down
func (p *CascadePile) AddCard(c deck.Card, visible bool) {
	p.cards = append(p.cards, cascadeCard{card: c, visible: visible})
}

// Add puts c face up on the front of the pile
func (p *CascadePile) Add(c deck.Card) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %v is not a playing card", ErrArgument, c)
	}
	p.AddCard(c, true)
	return nil
}

// RemoveTop takes the front card off the pile
func (p *CascadePile) RemoveTop() (deck.Card, error) {
	if p.Empty() {
		return deck.Card{}, ErrPileEmpty
	}
	last := len(p.cards) - 1
	removed := p.cards[last].card
	p.cards = p.cards[:last]
	p.revealFront()
	return removed, nil
}

// RemoveTopN takes the n front cards off the pile, returned in pile order
func (p *CascadePile) RemoveTopN(n int) ([]deck.Card, error) {
	if n < 0 || n > len(p.cards) {
		return nil, fmt.Errorf("%w: cannot remove %d cards from a pile of %d", ErrArgument, n, len(p.cards))
	}
	start := len(p.cards) - n
	removed := make([]deck.Card, 0, n)
	for _, cc := range p.cards[start:] {
		removed = append(removed, cc.card)
	}
	p.cards = p.cards[:start]
	p.revealFront()
	return removed, nil
}

// revealFront turns the front card up once no card in the pile is visible
func (p *CascadePile) revealFront() {
	if p.Empty() || p.FirstVisible() != -1 {
		return
	}
	p.cards[len(p.cards)-1].visible = true
}

// CardAt returns the card at position i, face up or not
func (p *CascadePile) CardAt(i int) (deck.Card, error) {
	if i < 0 || i >= len(p.cards) {
		return deck.Card{}, outOfRange("card", i, len(p.cards))
	}
	return p.cards[i].card, nil
}

// VisibleAt reports whether the card at position i is face up
func (p *CascadePile) VisibleAt(i int) (bool, error) {
	if i < 0 || i >= len(p.cards) {
		return false, outOfRange("card", i, len(p.cards))
	}
	return p.cards[i].visible, nil
}

// Front returns the last card of the pile
func (p *CascadePile) Front() (deck.Card, error) {
	if p.Empty() {
		return deck.Card{}, ErrPileEmpty
	}
	return p.cards[len(p.cards)-1].card, nil
}

func (p *CascadePile) frontVisible() bool {
	return !p.Empty() && p.cards[len(p.cards)-1].visible
}

// FirstVisible returns the lowest face-up position, or -1
func (p *CascadePile) FirstVisible() int {
	for i, cc := range p.cards {
		if cc.visible {
			return i
		}
	}
	return -1
}

// topN returns the n front cards without removing them
func (p *CascadePile) topN(n int) []deck.Card {
	cards := make([]deck.Card, 0, n)
	for _, cc := range p.cards[len(p.cards)-n:] {
		cards = append(cards, cc.card)
	}
	return cards
}

func (p *CascadePile) Len() int {
	return len(p.cards)
}

func (p *CascadePile) Empty() bool {
	return len(p.cards) == 0
}
