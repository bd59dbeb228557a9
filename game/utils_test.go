package game

import "github.com/minaorangina/klondike/deck"

func cardsOfRank(cards []deck.Card, ranks ...deck.Rank) []deck.Card {
	want := map[deck.Rank]struct{}{}
	for _, r := range ranks {
		want[r] = struct{}{}
	}

	s := []deck.Card{}
	for _, c := range cards {
		if _, ok := want[c.Rank]; ok {
			s = append(s, c)
		}
	}
	return s
}

func cardsOfSuit(cards []deck.Card, suit deck.Suit) []deck.Card {
	s := []deck.Card{}
	for _, c := range cards {
		if c.Suit == suit {
			s = append(s, c)
		}
	}
	return s
}

// snapshot copies every pile so tests can check a failed move changed nothing
type snapshot struct {
	cascades    [][]cascadeCard
	foundations [][]deck.Card
	draw        []deck.Card
}

func takeSnapshot(k *Klondike) snapshot {
	s := snapshot{}
	for _, p := range k.cascades {
		s.cascades = append(s.cascades, append([]cascadeCard{}, p.cards...))
	}
	for _, f := range k.foundations {
		s.foundations = append(s.foundations, append([]deck.Card{}, f.cards...))
	}
	s.draw = append([]deck.Card{}, k.draw.cards...)
	return s
}

// someGame starts an unshuffled game or fails the caller
func someGame(variant Variant, cards []deck.Card, numCascades, numDraw int) *Klondike {
	k := New(Opts{Variant: variant})
	if err := k.Start(cards, false, numCascades, numDraw); err != nil {
		panic(err)
	}
	return k
}

// riggedGame builds a started game directly from piles, front card last
func riggedGame(variant Variant, numDraw int, cascades [][]cascadeCard, numFoundations int, draw ...deck.Card) *Klondike {
	k := New(Opts{Variant: variant})
	for _, cards := range cascades {
		p := NewCascadePile()
		p.cards = append(p.cards, cards...)
		k.cascades = append(k.cascades, p)
	}
	for i := 0; i < numFoundations; i++ {
		k.foundations = append(k.foundations, NewFoundationPile())
	}
	k.draw, _ = NewDrawPile(numDraw)
	k.draw.cards = append(k.draw.cards, draw...)
	k.state = gameStarted
	return k
}

func up(c deck.Card) cascadeCard   { return cascadeCard{card: c, visible: true} }
func down(c deck.Card) cascadeCard { return cascadeCard{card: c, visible: false} }
