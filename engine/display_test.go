package engine

import (
	"bytes"
	"testing"

	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/game"
	utils "github.com/minaorangina/klondike/internal"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedGame(t *testing.T, variant game.Variant, cards []deck.Card, numCascades, numDraw int) *game.Klondike {
	t.Helper()

	g := game.New(game.Opts{Variant: variant})
	require.NoError(t, g.Start(cards, false, numCascades, numDraw))
	return g
}

func acesOnly() []deck.Card {
	aces := []deck.Card{}
	for _, s := range deck.Suits() {
		aces = append(aces, deck.NewCard(deck.Ace, s))
	}
	return aces
}

func TestSendText(t *testing.T) {
	t.Run("send simple text", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		want := "Hello"
		SendText(buffer, want)

		utils.AssertStringEquality(t, buffer.String(), want)
	})

	t.Run("send formatted text", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		SendText(buffer, "Hello, %s", "human")

		utils.AssertStringEquality(t, buffer.String(), "Hello, human")
	})
}

func TestTextualView(t *testing.T) {
	t.Run("renders a fresh basic game", func(t *testing.T) {
		g := startedGame(t, game.Basic, deck.New(), 2, 1)
		view := NewTextualView(g, nil, false)

		want := "Draw: 4♣\n" +
			"Foundation: <none>, <none>, <none>, <none>\n" +
			" A♣  ?\n" +
			"    3♣"
		utils.AssertStringEquality(t, view.String(), want)
	})

	t.Run("marks an empty cascade", func(t *testing.T) {
		g := startedGame(t, game.Basic, deck.New(), 2, 1)
		require.NoError(t, g.MoveToFoundation(0, 0))
		view := NewTextualView(g, nil, false)

		want := "Draw: 4♣\n" +
			"Foundation: A♣, <none>, <none>, <none>\n" +
			"  X  ?\n" +
			"    3♣"
		utils.AssertStringEquality(t, view.String(), want)
	})

	t.Run("whitehead shows every card", func(t *testing.T) {
		g := startedGame(t, game.Whitehead, deck.New(), 3, 2)
		view := NewTextualView(g, nil, false)

		want := "Draw: 7♣, 8♣\n" +
			"Foundation: <none>, <none>, <none>, <none>\n" +
			" A♣ 2♣ 3♣\n" +
			"    4♣ 5♣\n" +
			"       6♣"
		utils.AssertStringEquality(t, view.String(), want)
	})

	t.Run("no cascade rows once every pile is clear", func(t *testing.T) {
		g := startedGame(t, game.Basic, acesOnly(), 2, 1)
		require.NoError(t, g.MoveToFoundation(0, 0))
		require.NoError(t, g.MoveToFoundation(1, 1))
		require.NoError(t, g.MoveToFoundation(1, 2))
		require.NoError(t, g.MoveDrawToFoundation(3))
		view := NewTextualView(g, nil, false)

		want := "Draw: \n" +
			"Foundation: A♣, A♡, A♢, A♠\n"
		utils.AssertStringEquality(t, view.String(), want)
	})

	t.Run("empty before the game starts", func(t *testing.T) {
		out := &bytes.Buffer{}
		view := NewTextualView(game.NewBasic(), out, false)

		assert.Equal(t, "", view.String())
		require.NoError(t, view.Render())
		assert.Equal(t, 0, out.Len())
	})

	t.Run("render and message write to the output", func(t *testing.T) {
		out := &bytes.Buffer{}
		g := startedGame(t, game.Basic, deck.New(), 2, 1)
		view := NewTextualView(g, out, false)

		require.NoError(t, view.Render())
		require.NoError(t, view.RenderMessage("\nhello"))
		assert.Equal(t, view.String()+"\nhello", out.String())
	})

	t.Run("nil output is a no-op", func(t *testing.T) {
		view := NewTextualView(startedGame(t, game.Basic, deck.New(), 2, 1), nil, false)
		assert.NoError(t, view.Render())
		assert.NoError(t, view.RenderMessage("ignored"))
	})

	t.Run("colour keeps the layout", func(t *testing.T) {
		g := startedGame(t, game.Whitehead, acesOnly(), 2, 1)
		plain := NewTextualView(g, nil, false).String()
		colored := NewTextualView(g, nil, true).String()

		assert.Equal(t, plain, pterm.RemoveColorFromString(colored))
	})
}

func TestPad(t *testing.T) {
	tt := []struct {
		in, want string
	}{
		{"", "   "},
		{"X", "  X"},
		{"A♣", " A♣"},
		{"10♡", "10♡"},
	}
	for _, tc := range tt {
		utils.TableFailureMessageIf(t, tc.in, pad(tc.in), tc.want)
	}
}
