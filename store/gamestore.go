package store

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/minaorangina/klondike/game"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrGameExists    = errors.New("game already exists")
	ErrNilGame       = errors.New("game cannot be nil")
)

type GameStore interface {
	AddGame(g game.Game) (string, error)
	AddGameWithID(gameID string, g game.Game) error
	WithGame(gameID string, fn func(g game.Game) error) error
	RemoveGame(gameID string) error
	GameIDs() []string
}

// NewID constructs a game ID
func NewID() string {
	return uuid.NewV4().String()
}

// lockedGame serialises every access to one game
type lockedGame struct {
	mu   sync.Mutex
	game game.Game
}

// InMemoryGameStore maps game id to game. The map has its own lock and each
// game has another, so moves on different games do not wait for each other.
type InMemoryGameStore struct {
	mu     sync.RWMutex
	games  map[string]*lockedGame
	logger *zap.Logger
}

// NewInMemoryGameStore constructs an InMemoryGameStore. A nil logger discards.
func NewInMemoryGameStore(logger *zap.Logger) *InMemoryGameStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryGameStore{
		games:  map[string]*lockedGame{},
		logger: logger,
	}
}

// AddGame stores g under a fresh ID
func (s *InMemoryGameStore) AddGame(g game.Game) (string, error) {
	id := NewID()
	if err := s.AddGameWithID(id, g); err != nil {
		return "", err
	}
	return id, nil
}

func (s *InMemoryGameStore) AddGameWithID(gameID string, g game.Game) error {
	if g == nil || isNilPointer(g) {
		return ErrNilGame
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[gameID]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}
	s.games[gameID] = &lockedGame{game: g}

	s.logger.Info("game added", zap.String("game_id", gameID), zap.Stringer("variant", g.Variant()))
	return nil
}

// WithGame runs fn while holding the game's lock. fn must not keep g.
func (s *InMemoryGameStore) WithGame(gameID string, fn func(g game.Game) error) error {
	s.mu.RLock()
	lg, ok := s.games[gameID]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}

	lg.mu.Lock()
	defer lg.mu.Unlock()
	return fn(lg.game)
}

func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}
	delete(s.games, gameID)

	s.logger.Info("game removed", zap.String("game_id", gameID))
	return nil
}

func (s *InMemoryGameStore) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	return ids
}

func isNilPointer(g game.Game) bool {
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
