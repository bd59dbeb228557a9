package game

import "github.com/minaorangina/klondike/deck"

// Pile is what cascade, foundation and draw piles have in common
type Pile interface {
	Add(c deck.Card) error
	RemoveTop() (deck.Card, error)
	CardAt(i int) (deck.Card, error)
	Len() int
	Empty() bool
}

var (
	_ Pile = (*CascadePile)(nil)
	_ Pile = (*FoundationPile)(nil)
	_ Pile = (*DrawPile)(nil)
)

func allEmpty(piles ...Pile) bool {
	for _, p := range piles {
		if !p.Empty() {
			return false
		}
	}
	return true
}
