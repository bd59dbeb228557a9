package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/protocol"
	"go.uber.org/zap"
)

var (
	ErrCannotStart = errors.New("cannot start game")
	ErrNoInput     = errors.New("no input provided")

	errQuit = errors.New("quit")
)

// ControllerOpts configures a Controller
type ControllerOpts struct {
	In     io.Reader
	Out    io.Writer
	Color  bool
	Logger *zap.Logger
}

// Controller plays one game at a time, reading commands from In and writing
// boards and messages to Out.
type Controller struct {
	in     *bufio.Scanner
	out    io.Writer
	color  bool
	logger *zap.Logger
}

// NewController constructs a Controller reading r and writing w
func NewController(r io.Reader, w io.Writer) (*Controller, error) {
	return NewControllerWithOpts(ControllerOpts{In: r, Out: w})
}

func NewControllerWithOpts(opts ControllerOpts) (*Controller, error) {
	if opts.In == nil || opts.Out == nil {
		return nil, fmt.Errorf("%w: reader and writer cannot be nil", game.ErrArgument)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	scanner := bufio.NewScanner(opts.In)
	scanner.Split(bufio.ScanWords)

	return &Controller{
		in:     scanner,
		out:    opts.Out,
		color:  opts.Color,
		logger: logger,
	}, nil
}

// PlayGame starts g with cards and plays it until the game is over, the
// player quits or the input runs out.
func (c *Controller) PlayGame(g game.Game, cards []deck.Card, shuffle bool, numCascades, numDraw int) error {
	if g == nil {
		return fmt.Errorf("%w: game cannot be nil", game.ErrArgument)
	}

	if err := g.Start(cards, shuffle, numCascades, numDraw); err != nil {
		c.logger.Debug("start failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrCannotStart, err)
	}

	view := NewTextualView(g, c.out, c.color)
	if err := c.renderState(g, view); err != nil {
		return err
	}

	for {
		over, err := g.IsGameOver()
		if err != nil {
			return err
		}
		if over {
			break
		}

		err = c.playCommand(g, view)
		if errors.Is(err, errQuit) {
			return c.quit(g, view)
		}
		if err != nil {
			return err
		}
	}

	return c.end(g)
}

// playCommand reads and applies one command. A move the game refuses is
// reported to the player and is not an error.
func (c *Controller) playCommand(g game.Game, view *TextualView) error {
	token, err := c.next()
	if err != nil {
		return err
	}
	if strings.EqualFold(token, protocol.Quit.String()) {
		return errQuit
	}

	cmd, err := protocol.ParseCmd(token)
	if err != nil {
		SendText(c.out, invalidMoveText, err)
		return nil
	}

	args := make([]int, cmd.NumArgs())
	for i := range args {
		if args[i], err = c.readInt(); err != nil {
			return err
		}
	}

	if err := cmd.Apply(g, cmd.ToZeroIndexed(args)); err != nil {
		c.logger.Debug("move refused", zap.Stringer("cmd", cmd), zap.Ints("args", args), zap.Error(err))
		SendText(c.out, invalidMoveText, err)
		return nil
	}

	c.logger.Debug("move", zap.Stringer("cmd", cmd), zap.Ints("args", args))
	return c.renderState(g, view)
}

func (c *Controller) next() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", ErrNoInput
	}
	return c.in.Text(), nil
}

// readInt reads tokens until one is an integer, asking again after each
// one that is not
func (c *Controller) readInt() (int, error) {
	for {
		token, err := c.next()
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(token); err == nil {
			return n, nil
		}
		if strings.EqualFold(token, protocol.Quit.String()) {
			return 0, errQuit
		}
		SendText(c.out, reenterText)
	}
}

func (c *Controller) renderState(g game.Game, view *TextualView) error {
	if err := view.Render(); err != nil {
		return err
	}
	score, err := g.Score()
	if err != nil {
		return err
	}
	SendText(c.out, "\n"+scoreText, score)
	return nil
}

func (c *Controller) quit(g game.Game, view *TextualView) error {
	SendText(c.out, quitText)
	return c.renderState(g, view)
}

func (c *Controller) end(g game.Game) error {
	won, err := g.Won()
	if err != nil {
		return err
	}
	if won {
		SendText(c.out, winText)
		return nil
	}

	score, err := g.Score()
	if err != nil {
		return err
	}
	SendText(c.out, gameOverText, score)
	return nil
}
