package deck

import (
	"fmt"
	"strings"
)

// Rank represents a rank in a deck of cards, from Ace (1) to King (13)
type Rank int

const (
	Ace Rank = iota + 1
	Two
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
)

var rankSymbols = []string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Valid reports whether r is one of Ace..King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankSymbols[r]
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var (
	suitNames   = []string{"Clubs", "Diamonds", "Hearts", "Spades"}
	suitSymbols = []string{"♣", "♢", "♡", "♠"}
)

// Suits lists every suit in deck order
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Symbol returns the suit's display glyph
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// IsBlack reports whether the suit is Clubs or Spades
func (s Suit) IsBlack() bool {
	return s == Clubs || s == Spades
}

// MarshalText encodes the suit as its lower-case name
func (s Suit) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid suit %d", int(s))
	}
	return []byte(strings.ToLower(suitNames[s])), nil
}

// UnmarshalText decodes a suit name, ignoring case
func (s *Suit) UnmarshalText(text []byte) error {
	for i, name := range suitNames {
		if strings.EqualFold(name, string(text)) {
			*s = Suit(i)
			return nil
		}
	}
	return fmt.Errorf("unknown suit %q", string(text))
}

// Color is the colour of a card
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Card represents a playing card.
// The zero Card is not a valid card.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether the card has a real rank and suit
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

func (c Card) IsBlack() bool {
	return c.Suit.IsBlack()
}

func (c Card) Color() Color {
	if c.IsBlack() {
		return Black
	}
	return Red
}

// String returns the rank symbol followed by the suit symbol, e.g. "10♡"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}
