package game

import (
	"errors"
	"fmt"
)

// The two kinds of error the engine returns. Every error from this package
// wraps exactly one of them, so callers can branch with errors.Is.
var (
	// ErrArgument marks malformed input: bad counts, out-of-range indices,
	// asking for more cards than a pile holds, pointing at a face-down card.
	ErrArgument = errors.New("invalid argument")
	// ErrRule marks a well-formed request the rules or the game's lifecycle forbid.
	ErrRule = errors.New("illegal move")
)

var (
	ErrGameStarted    = fmt.Errorf("%w: game has already started", ErrRule)
	ErrGameNotStarted = fmt.Errorf("%w: game has not started", ErrRule)
	ErrEmptyDeck      = fmt.Errorf("%w: deck cannot be empty", ErrArgument)
	ErrTooFewCards    = fmt.Errorf("%w: not enough cards to deal", ErrArgument)
	ErrSamePile       = fmt.Errorf("%w: source and destination must differ", ErrArgument)
	ErrFaceDown       = fmt.Errorf("%w: card is face down", ErrArgument)
	ErrDrawEmpty      = fmt.Errorf("%w: draw pile is empty", ErrRule)
	ErrPileEmpty      = fmt.Errorf("%w: pile is empty", ErrRule)
	ErrBadSequence    = fmt.Errorf("%w: cards do not form a movable sequence", ErrRule)
	ErrCannotStack    = fmt.Errorf("%w: card cannot be placed there", ErrRule)
	ErrFoundation     = fmt.Errorf("%w: foundation cannot accept card", ErrRule)
)

func outOfRange(what string, idx, n int) error {
	return fmt.Errorf("%w: %s %d out of range [0, %d)", ErrArgument, what, idx, n)
}
