package game

import "github.com/minaorangina/klondike/deck"

// Slot is one position of a cascade as a player sees it.
// Card is nil while the card is face down.
type Slot struct {
	Card    *deck.Card `json:"card,omitempty"`
	Visible bool       `json:"visible"`
}

// Board is a read-only snapshot of a started game
type Board struct {
	Variant       Variant      `json:"variant"`
	Draw          []deck.Card  `json:"draw"`
	DrawRemaining int          `json:"draw_remaining"`
	Foundations   []*deck.Card `json:"foundations"`
	Cascades      [][]Slot     `json:"cascades"`
	Score         int          `json:"score"`
	Status        Status       `json:"status"`
}

// Board takes a snapshot of the game. Face-down cards keep their identity hidden.
func (k *Klondike) Board() (Board, error) {
	status, err := k.Status()
	if err != nil {
		return Board{}, err
	}
	score, _ := k.Score()

	b := Board{
		Variant:       k.variant,
		Draw:          k.draw.Visible(),
		DrawRemaining: k.draw.Len(),
		Foundations:   make([]*deck.Card, len(k.foundations)),
		Cascades:      make([][]Slot, len(k.cascades)),
		Score:         score,
		Status:        status,
	}

	for i, f := range k.foundations {
		if top, ok := f.Top(); ok {
			b.Foundations[i] = &top
		}
	}

	for i, pile := range k.cascades {
		slots := make([]Slot, pile.Len())
		for j, cc := range pile.cards {
			if cc.visible {
				c := cc.card
				slots[j] = Slot{Card: &c, Visible: true}
			}
		}
		b.Cascades[i] = slots
	}

	return b, nil
}
