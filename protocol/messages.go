package protocol

import (
	"errors"

	"github.com/minaorangina/klondike/game"
)

// InboundMessage is a move sent by a client. Args are 0-indexed.
type InboundMessage struct {
	Command Cmd   `json:"command"`
	Args    []int `json:"args"`
}

// OutboundMessage carries the board after a move, or why the move failed
type OutboundMessage struct {
	GameID    string      `json:"game_id"`
	Board     *game.Board `json:"board,omitempty"`
	Error     string      `json:"error,omitempty"`
	ErrorKind string      `json:"error_kind,omitempty"`
}

const (
	KindArgument = "argument"
	KindRule     = "rule"
	KindInternal = "internal"
)

// ErrorKind names the kind of err for clients
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, game.ErrArgument):
		return KindArgument
	case errors.Is(err, game.ErrRule):
		return KindRule
	default:
		return KindInternal
	}
}

func NewBoardMessage(gameID string, b game.Board) OutboundMessage {
	return OutboundMessage{GameID: gameID, Board: &b}
}

func NewErrorMessage(gameID string, err error) OutboundMessage {
	return OutboundMessage{
		GameID:    gameID,
		Error:     err.Error(),
		ErrorKind: ErrorKind(err),
	}
}
