package deck

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidDeck is wrapped by every error returned from Validate
var ErrInvalidDeck = errors.New("invalid deck")

// Deck represents a deck of cards
type Deck []Card

// New creates a standard deck of 52 cards, suit by suit, Ace to King
func New() Deck {
	cards := make(Deck, 0, len(suitNames)*int(King))
	for _, suit := range Suits() {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Copy returns a deck backed by its own array
func (d Deck) Copy() Deck {
	c := make(Deck, len(d))
	copy(c, d)
	return c
}

// Shuffle shuffles the deck of cards
func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// ShuffleWith shuffles the deck using r, so a seeded source gives a repeatable order
func (d Deck) ShuffleWith(r *rand.Rand) {
	if r == nil {
		d.Shuffle()
		return
	}
	r.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Deal removes up to n cards from the front of the deck
func (d *Deck) Deal(n int) []Card {
	if n <= 0 {
		return []Card{}
	}
	if n > len(*d) {
		n = len(*d)
	}
	dealt := make([]Card, n)
	copy(dealt, (*d)[:n])
	*d = (*d)[n:]
	return dealt
}

// CountAces returns how many aces the cards contain
func CountAces(cards []Card) int {
	n := 0
	for _, c := range cards {
		if c.Rank == Ace {
			n++
		}
	}
	return n
}

// Validate checks that cards split into suit groups of equal size, each made
// of one or more complete runs starting at the Ace. A group with n aces must
// hold exactly n of every rank up to where its runs end, and nothing above.
func Validate(cards []Card) error {
	groups := map[Suit][]Card{}
	for i, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: card %d is not a playing card", ErrInvalidDeck, i)
		}
		groups[c.Suit] = append(groups[c.Suit], c)
	}

	if len(groups) == 0 {
		return fmt.Errorf("%w: no cards", ErrInvalidDeck)
	}

	groupSize := -1
	for _, suit := range Suits() {
		group, ok := groups[suit]
		if !ok {
			continue
		}
		if groupSize == -1 {
			groupSize = len(group)
		}
		if len(group) != groupSize {
			return fmt.Errorf("%w: %s has %d cards, expected %d", ErrInvalidDeck, suit, len(group), groupSize)
		}
		if err := validateRuns(suit, group); err != nil {
			return err
		}
	}

	return nil
}

func validateRuns(suit Suit, group []Card) error {
	var counts [King + 1]int
	for _, c := range group {
		counts[c.Rank]++
	}

	numRuns := counts[Ace]
	if numRuns == 0 {
		return fmt.Errorf("%w: %s has no Ace", ErrInvalidDeck, suit)
	}

	ended := false
	for rank := Ace; rank <= King; rank++ {
		switch {
		case counts[rank] == 0:
			ended = true
		case ended:
			return fmt.Errorf("%w: %s run has a gap before %s", ErrInvalidDeck, suit, rank)
		case counts[rank] != numRuns:
			return fmt.Errorf("%w: %s has %d of rank %s, expected %d", ErrInvalidDeck, suit, counts[rank], rank, numRuns)
		}
	}

	return nil
}
