package protocol

import (
	"fmt"
	"strings"

	"github.com/minaorangina/klondike/game"
)

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	MovePile
	MoveDraw
	MoveToFoundation
	MoveDrawToFoundation
	DiscardDraw
	// Quit ends a textual session. It is never applied to a game.
	Quit
)

var CmdNames = map[Cmd]string{
	Null:                 "",
	MovePile:             "mpp",
	MoveDraw:             "md",
	MoveToFoundation:     "mpf",
	MoveDrawToFoundation: "mdf",
	DiscardDraw:          "dd",
	Quit:                 "q",
}

var NameToCmd = map[string]Cmd{
	"mpp": MovePile,
	"md":  MoveDraw,
	"mpf": MoveToFoundation,
	"mdf": MoveDrawToFoundation,
	"dd":  DiscardDraw,
	"q":   Quit,
}

// how many integer arguments follow each command
var cmdArgs = map[Cmd]int{
	MovePile:             3,
	MoveDraw:             1,
	MoveToFoundation:     2,
	MoveDrawToFoundation: 1,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// NumArgs is the number of integer arguments c takes
func (c Cmd) NumArgs() int {
	return cmdArgs[c]
}

// ParseCmd looks a command up by name, ignoring case
func ParseCmd(s string) (Cmd, error) {
	c, ok := NameToCmd[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Null, fmt.Errorf("%w: unknown command %q", game.ErrArgument, s)
	}
	return c, nil
}

func (c Cmd) MarshalText() ([]byte, error) {
	if c == Null {
		return nil, fmt.Errorf("%w: null command", game.ErrArgument)
	}
	return []byte(c.String()), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	parsed, err := ParseCmd(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Mover is the part of a game a command acts on
type Mover interface {
	MovePile(src, numCards, dst int) error
	MoveDraw(dst int) error
	MoveToFoundation(src, foundation int) error
	MoveDrawToFoundation(foundation int) error
	DiscardDraw() error
}

// Apply runs c against m. Pile and foundation indices in args start at 0.
func (c Cmd) Apply(m Mover, args []int) error {
	if c == Null || c == Quit {
		return fmt.Errorf("%w: %q is not a move", game.ErrArgument, c.String())
	}
	if len(args) != c.NumArgs() {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", game.ErrArgument, c, c.NumArgs(), len(args))
	}

	switch c {
	case MovePile:
		return m.MovePile(args[0], args[1], args[2])
	case MoveDraw:
		return m.MoveDraw(args[0])
	case MoveToFoundation:
		return m.MoveToFoundation(args[0], args[1])
	case MoveDrawToFoundation:
		return m.MoveDrawToFoundation(args[0])
	case DiscardDraw:
		return m.DiscardDraw()
	}

	return fmt.Errorf("%w: unknown command %d", game.ErrArgument, int(c))
}

// ToZeroIndexed converts the 1-indexed pile and foundation numbers a person
// types into engine indices. The card count of MovePile is left alone.
func (c Cmd) ToZeroIndexed(args []int) []int {
	out := make([]int, len(args))
	for i, a := range args {
		if c == MovePile && i == 1 {
			out[i] = a
			continue
		}
		out[i] = a - 1
	}
	return out
}
