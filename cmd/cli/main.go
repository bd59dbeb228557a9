package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/engine"
	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/internal/config"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "could not load .env: %v\n", err)
	}

	cmd := &cli.Command{
		Name:      "klondike",
		Usage:     "play Klondike solitaire in the terminal",
		ArgsUsage: "<basic|whitehead> [cascades] [draw]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-shuffle", Usage: "deal the deck in order"},
			&cli.BoolFlag{Name: "color", Usage: "paint red suits"},
			&cli.BoolFlag{Name: "debug", Usage: "log moves to stderr", Sources: cli.EnvVars("KLONDIKE_DEBUG")},
		},
		Action: play,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func play(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.NArg() == 0 {
		return fmt.Errorf("%w: missing variant, must be basic or whitehead", game.ErrArgument)
	}
	variant, err := game.ParseVariant(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	numCascades := intArg(cmd, 1, cfg.Cascades)
	numDraw := intArg(cmd, 2, cfg.Draw)

	logger := zap.NewNop()
	if cmd.Bool("debug") {
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	defer logger.Sync()

	controller, err := engine.NewControllerWithOpts(engine.ControllerOpts{
		In:     os.Stdin,
		Out:    os.Stdout,
		Color:  cmd.Bool("color"),
		Logger: logger,
	})
	if err != nil {
		return err
	}

	g := game.New(game.Opts{Variant: variant, Logger: logger})
	err = controller.PlayGame(g, deck.New(), !cmd.Bool("no-shuffle"), numCascades, numDraw)
	if errors.Is(err, engine.ErrNoInput) {
		logger.Debug("input closed before the game ended")
		return nil
	}
	if reportStartFailure(os.Stdout, err) {
		return nil
	}
	return err
}

// reportStartFailure tells the player why the game could not be dealt and
// reports whether err was such a failure
func reportStartFailure(w io.Writer, err error) bool {
	if !errors.Is(err, engine.ErrCannotStart) {
		return false
	}
	reason := strings.TrimPrefix(err.Error(), engine.ErrCannotStart.Error()+": ")
	fmt.Fprintf(w, "Invalid game configuration: %s\n", reason)
	return true
}

// intArg reads positional argument i, falling back to def when it is
// missing or not a number
func intArg(cmd *cli.Command, i, def int) int {
	return atoiOr(cmd.Args().Get(i), def)
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
