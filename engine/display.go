package engine

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/game"
	"github.com/pterm/pterm"
)

const (
	reenterText     = "Re-enter value: "
	invalidMoveText = "Invalid move. Play again. %s\n"
	scoreText       = "Score: %d\n"
	quitText        = "Game quit!\nState of game when quit:\n"
	winText         = "You win!\n"
	gameOverText    = "Game over. Score: %d\n"

	slotWidth   = 3
	emptyPile   = "X"
	faceDown    = "?"
	noFoundCard = "<none>"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// BoardSource is anything that can describe its board
type BoardSource interface {
	Board() (game.Board, error)
}

// TextualView renders a game as plain text
type TextualView struct {
	src   BoardSource
	out   io.Writer
	color bool
}

// NewTextualView constructs a view of src. Render writes to out; a nil out
// makes Render a no-op. With color set, red suits are painted.
func NewTextualView(src BoardSource, out io.Writer, color bool) *TextualView {
	return &TextualView{src: src, out: out, color: color}
}

// String renders the board, or the empty string before the game starts
func (v *TextualView) String() string {
	b, err := v.src.Board()
	if err != nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Draw: ")
	draw := make([]string, len(b.Draw))
	for i, c := range b.Draw {
		draw[i] = v.paint(c, c.String())
	}
	sb.WriteString(strings.Join(draw, ", "))
	sb.WriteString("\n")

	sb.WriteString("Foundation: ")
	found := make([]string, len(b.Foundations))
	for i, c := range b.Foundations {
		if c == nil {
			found[i] = noFoundCard
			continue
		}
		found[i] = v.paint(*c, c.String())
	}
	sb.WriteString(strings.Join(found, ", "))
	sb.WriteString("\n")

	sb.WriteString(v.cascades(b.Cascades))
	return sb.String()
}

func (v *TextualView) cascades(piles [][]game.Slot) string {
	numRows := 0
	for _, p := range piles {
		if len(p) > numRows {
			numRows = len(p)
		}
	}

	rows := make([]string, numRows)
	for row := range rows {
		var sb strings.Builder
		for _, p := range piles {
			switch {
			case len(p) == 0 && row == 0:
				sb.WriteString(pad(emptyPile))
			case row >= len(p):
				sb.WriteString(pad(""))
			case !p[row].Visible || p[row].Card == nil:
				sb.WriteString(pad(faceDown))
			default:
				c := *p[row].Card
				sb.WriteString(v.paint(c, pad(c.String())))
			}
		}
		rows[row] = sb.String()
	}

	return strings.Join(rows, "\n")
}

// pad right-aligns s in a slot. Suit symbols are one rune wide.
func pad(s string) string {
	n := slotWidth - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n) + s
}

func (v *TextualView) paint(c deck.Card, s string) string {
	if !v.color || c.IsBlack() {
		return s
	}
	return pterm.LightRed(s)
}

// Render writes the board to the view's output
func (v *TextualView) Render() error {
	if v.out == nil {
		return nil
	}
	_, err := io.WriteString(v.out, v.String())
	return err
}

// RenderMessage writes msg to the view's output as is
func (v *TextualView) RenderMessage(msg string) error {
	if v.out == nil {
		return nil
	}
	_, err := io.WriteString(v.out, msg)
	return err
}
