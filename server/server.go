package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/protocol"
	"github.com/minaorangina/klondike/store"
	"go.uber.org/zap"
)

type NewGameReq struct {
	Variant  string `json:"variant"`
	Cascades int    `json:"cascades"`
	Draw     int    `json:"draw"`
	Shuffle  *bool  `json:"shuffle"`
}

type GameRes struct {
	GameID string     `json:"game_id"`
	Board  game.Board `json:"board"`
}

// GameDefaults fill in whatever a new game request leaves out
type GameDefaults struct {
	Variant  game.Variant
	Cascades int
	Draw     int
	Shuffle  bool
}

// ServerOpts configures a GameServer
type ServerOpts struct {
	Store    store.GameStore
	Logger   *zap.Logger
	Defaults GameDefaults
	// AllowedOrigins for CORS. Empty allows any origin.
	AllowedOrigins []string
	// AccessLog receives one line per request in Apache common log format.
	// Nil disables it.
	AccessLog io.Writer
}

// GameServer hosts independent single-player games
type GameServer struct {
	store    store.GameStore
	logger   *zap.Logger
	defaults GameDefaults
	http.Server
}

// NewServer creates a GameServer over str with standard defaults
func NewServer(str store.GameStore) *GameServer {
	return NewServerWithOpts(ServerOpts{Store: str})
}

func NewServerWithOpts(opts ServerOpts) *GameServer {
	s := new(GameServer)

	s.store = opts.Store
	s.logger = opts.Logger
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.defaults = opts.Defaults
	if s.defaults.Cascades <= 0 {
		s.defaults.Cascades = 7
	}
	if s.defaults.Draw <= 0 {
		s.defaults.Draw = 3
	}

	router := http.NewServeMux()
	router.HandleFunc("GET /health", s.HandleHealth)
	router.HandleFunc("POST /games", s.HandleNewGame)
	router.HandleFunc("GET /games/{id}", s.HandleFindGame)
	router.HandleFunc("DELETE /games/{id}", s.HandleDeleteGame)
	router.HandleFunc("POST /games/{id}/moves", s.HandleMove)
	router.HandleFunc("GET /ws", s.HandleWS)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	var h http.Handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router)

	if opts.AccessLog != nil {
		h = handlers.LoggingHandler(opts.AccessLog, h)
	}

	s.Handler = h

	return s
}

// ServeHTTP serves http
func (s *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Handler.ServeHTTP(w, r)
}

func (s *GameServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// HandleNewGame deals a fresh game from a standard deck
func (s *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		s.writeParseError(err, w)
		return
	}

	variant := s.defaults.Variant
	if data.Variant != "" {
		if variant, err = game.ParseVariant(data.Variant); err != nil {
			s.writeError(w, "", err)
			return
		}
	}
	cascades, draw, shuffle := s.defaults.Cascades, s.defaults.Draw, s.defaults.Shuffle
	if data.Cascades != 0 {
		cascades = data.Cascades
	}
	if data.Draw != 0 {
		draw = data.Draw
	}
	if data.Shuffle != nil {
		shuffle = *data.Shuffle
	}

	g := game.New(game.Opts{Variant: variant, Logger: s.logger.Named("game")})
	if err := g.Start(deck.New(), shuffle, cascades, draw); err != nil {
		s.writeError(w, "", err)
		return
	}

	gameID, err := s.store.AddGame(g)
	if err != nil {
		s.writeError(w, "", err)
		return
	}

	board, err := s.board(gameID)
	if err != nil {
		s.writeError(w, gameID, err)
		return
	}

	s.logger.Info("game created",
		zap.String("game_id", gameID),
		zap.Stringer("variant", variant),
		zap.Int("cascades", cascades),
		zap.Int("draw", draw),
		zap.Bool("shuffle", shuffle),
	)

	writeJSON(w, http.StatusCreated, GameRes{GameID: gameID, Board: board})
}

func (s *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")

	board, err := s.board(gameID)
	if err != nil {
		s.writeError(w, gameID, err)
		return
	}

	writeJSON(w, http.StatusOK, GameRes{GameID: gameID, Board: board})
}

func (s *GameServer) HandleDeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")

	if err := s.store.RemoveGame(gameID); err != nil {
		s.writeError(w, gameID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleMove applies one command to a game and answers with the new board
func (s *GameServer) HandleMove(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")

	var msg protocol.InboundMessage
	err := json.NewDecoder(r.Body).Decode(&msg)
	defer r.Body.Close()
	if err != nil {
		s.writeParseError(err, w)
		return
	}

	out := s.applyMove(gameID, msg)
	if out.Error != "" {
		writeJSON(w, statusFor(out.ErrorKind), out)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// applyMove runs msg against the game while holding its lock
func (s *GameServer) applyMove(gameID string, msg protocol.InboundMessage) protocol.OutboundMessage {
	var board game.Board
	err := s.store.WithGame(gameID, func(g game.Game) error {
		if err := msg.Command.Apply(g, msg.Args); err != nil {
			return err
		}
		var err error
		board, err = g.Board()
		return err
	})
	if err != nil {
		s.logger.Debug("move refused",
			zap.String("game_id", gameID),
			zap.Stringer("cmd", msg.Command),
			zap.Ints("args", msg.Args),
			zap.Error(err),
		)
		out := protocol.NewErrorMessage(gameID, err)
		if errors.Is(err, store.ErrUnknownGameID) {
			out.ErrorKind = kindNotFound
		}
		return out
	}

	s.logger.Debug("move",
		zap.String("game_id", gameID),
		zap.Stringer("cmd", msg.Command),
		zap.Ints("args", msg.Args),
		zap.Stringer("status", board.Status),
	)
	return protocol.NewBoardMessage(gameID, board)
}

func (s *GameServer) board(gameID string) (game.Board, error) {
	var board game.Board
	err := s.store.WithGame(gameID, func(g game.Game) error {
		var err error
		board, err = g.Board()
		return err
	})
	return board, err
}

const kindNotFound = "not_found"

func statusFor(kind string) int {
	switch kind {
	case kindNotFound:
		return http.StatusNotFound
	case protocol.KindArgument:
		return http.StatusBadRequest
	case protocol.KindRule:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *GameServer) writeError(w http.ResponseWriter, gameID string, err error) {
	out := protocol.NewErrorMessage(gameID, err)
	if errors.Is(err, store.ErrUnknownGameID) {
		out.ErrorKind = kindNotFound
	}
	status := statusFor(out.ErrorKind)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("game_id", gameID), zap.Error(err))
	}
	writeJSON(w, status, out)
}

func (s *GameServer) writeParseError(err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusBadRequest)
	if err == io.EOF {
		w.Write([]byte("missing body"))
		return
	}
	s.logger.Debug("bad request body", zap.Error(err))
	w.Write([]byte("malformed body: " + err.Error()))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}
