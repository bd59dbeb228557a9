package game

import "fmt"

// GamePlayState is the lifecycle of a Klondike game
type GamePlayState int

const (
	gameNotStarted GamePlayState = iota
	gameStarted
)

var gamePlayStateNames = []string{"not started", "started"}

func (s GamePlayState) String() string {
	if s < 0 || int(s) >= len(gamePlayStateNames) {
		return "unknown"
	}
	return gamePlayStateNames[s]
}

// Status summarises where a started game stands
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

var statusNames = []string{"in progress", "won", "lost"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if string(text) == name {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown status %q", ErrArgument, text)
}
