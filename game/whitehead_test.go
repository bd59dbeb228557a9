package game

import (
	"testing"

	"github.com/minaorangina/klondike/deck"
	utils "github.com/minaorangina/klondike/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitehead(t *testing.T) {
	sixSpades := deck.NewCard(deck.Six, deck.Spades)
	fiveClubs := deck.NewCard(deck.Five, deck.Clubs)
	sixClubs := deck.NewCard(deck.Six, deck.Clubs)

	t.Run("constructor", func(t *testing.T) {
		k := NewWhitehead()
		assert.Equal(t, Whitehead, k.Variant())
		assert.Equal(t, Basic, NewBasic().Variant())
	})

	t.Run("moves a same-suit run onto the same colour", func(t *testing.T) {
		k := riggedGame(Whitehead, 1, [][]cascadeCard{
			{up(sixSpades), up(fiveSpades)},
			{up(sevenClubs)},
		}, 4)
		require.NoError(t, k.MovePile(0, 2, 1))
		assert.Equal(t, []cascadeCard{up(sevenClubs), up(sixSpades), up(fiveSpades)}, k.cascades[1].cards)
		assert.True(t, k.cascades[0].Empty())
	})

	t.Run("same colour is not enough for a run", func(t *testing.T) {
		k := riggedGame(Whitehead, 1, [][]cascadeCard{
			{up(sixSpades), up(fiveClubs)},
			{up(sixClubs)},
		}, 4)
		before := takeSnapshot(k)

		utils.AssertErrorIs(t, k.MovePile(0, 2, 1), ErrRule, ErrBadSequence)
		assert.Equal(t, before, takeSnapshot(k))

		// a single card only needs the colour to match
		require.NoError(t, k.MovePile(0, 1, 1))
	})

	t.Run("refuses opposite colours", func(t *testing.T) {
		k := riggedGame(Whitehead, 1, [][]cascadeCard{
			{up(fiveSpades)},
			{up(sixHearts)},
		}, 4)
		utils.AssertErrorIs(t, k.MovePile(0, 1, 1), ErrCannotStack)
	})

	t.Run("any card fills an empty cascade", func(t *testing.T) {
		k := riggedGame(Whitehead, 1, [][]cascadeCard{
			{up(sixSpades), up(fiveSpades)},
			{},
		}, 4, twoHearts)
		require.NoError(t, k.MovePile(0, 2, 1))
		require.NoError(t, k.MoveDraw(0))
		assert.Equal(t, []cascadeCard{up(twoHearts)}, k.cascades[0].cards)
	})

	t.Run("deals every card face up", func(t *testing.T) {
		cards := []deck.Card{}
		for _, s := range deck.Suits() {
			cards = append(cards, deck.NewCard(deck.Ace, s), deck.NewCard(deck.Two, s))
		}
		k := someGame(Whitehead, cards, 2, 1)

		for pile := 0; pile < 2; pile++ {
			height, _ := k.PileHeight(pile)
			for pos := 0; pos < height; pos++ {
				visible, err := k.CardVisible(pile, pos)
				require.NoError(t, err)
				assert.True(t, visible)
			}
		}

		over, err := k.IsGameOver()
		require.NoError(t, err)
		assert.False(t, over)
	})
}
