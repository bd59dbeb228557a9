package game

import (
	"fmt"

	"github.com/minaorangina/klondike/deck"
)

// DrawPile is the stock. Cards leave from the front, discards go to the back,
// and the first numDraw cards are on show.
type DrawPile struct {
	cards   []deck.Card
	numDraw int
}

// NewDrawPile constructs an empty draw pile showing numDraw cards
func NewDrawPile(numDraw int) (*DrawPile, error) {
	if numDraw <= 0 {
		return nil, fmt.Errorf("%w: draw count must be positive, got %d", ErrArgument, numDraw)
	}
	return &DrawPile{cards: []deck.Card{}, numDraw: numDraw}, nil
}

// Add puts c at the back of the pile
func (d *DrawPile) Add(c deck.Card) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %v is not a playing card", ErrArgument, c)
	}
	d.cards = append(d.cards, c)
	return nil
}

// Draw removes and returns the front card
func (d *DrawPile) Draw() (deck.Card, error) {
	if d.Empty() {
		return deck.Card{}, ErrDrawEmpty
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// RemoveTop is Draw
func (d *DrawPile) RemoveTop() (deck.Card, error) {
	return d.Draw()
}

// Front returns the front card without removing it
func (d *DrawPile) Front() (deck.Card, error) {
	if d.Empty() {
		return deck.Card{}, ErrDrawEmpty
	}
	return d.cards[0], nil
}

// DiscardTopToBack cycles the front card to the back
func (d *DrawPile) DiscardTopToBack() error {
	c, err := d.Draw()
	if err != nil {
		return err
	}
	d.cards = append(d.cards, c)
	return nil
}

// Visible returns a copy of the cards on show
func (d *DrawPile) Visible() []deck.Card {
	n := d.numDraw
	if n > len(d.cards) {
		n = len(d.cards)
	}
	visible := make([]deck.Card, n)
	copy(visible, d.cards[:n])
	return visible
}

func (d *DrawPile) NumDraw() int {
	return d.numDraw
}

func (d *DrawPile) CardAt(i int) (deck.Card, error) {
	if i < 0 || i >= len(d.cards) {
		return deck.Card{}, outOfRange("card", i, len(d.cards))
	}
	return d.cards[i], nil
}

func (d *DrawPile) Len() int {
	return len(d.cards)
}

func (d *DrawPile) Empty() bool {
	return len(d.cards) == 0
}
