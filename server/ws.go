package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/protocol"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWS plays a game over a websocket. The current board is sent on
// connect, then every command frame is answered with one outbound frame.
func (s *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	board, err := s.board(gameID)
	if err != nil {
		s.writeError(w, gameID, err)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied
		s.logger.Warn("could not upgrade to websocket", zap.String("game_id", gameID), zap.Error(err))
		return
	}

	s.logger.Info("websocket opened", zap.String("game_id", gameID))
	s.serveWS(ws, gameID, board)
	s.logger.Info("websocket closed", zap.String("game_id", gameID))
}

func (s *GameServer) serveWS(ws *websocket.Conn, gameID string, board game.Board) {
	defer ws.Close()

	done := make(chan struct{})
	defer close(done)
	go pingLoop(ws, done)

	ws.SetReadLimit(maxMessageSize)
	ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	if err := writeFrame(ws, protocol.NewBoardMessage(gameID, board)); err != nil {
		return
	}

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", zap.String("game_id", gameID), zap.Error(err))
			}
			return
		}
		ws.SetReadDeadline(time.Now().Add(pongWait))

		var msg protocol.InboundMessage
		var out protocol.OutboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			out = protocol.OutboundMessage{
				GameID:    gameID,
				Error:     fmt.Sprintf("malformed frame: %v", err),
				ErrorKind: protocol.KindArgument,
			}
		} else {
			out = s.applyMove(gameID, msg)
		}

		if err := writeFrame(ws, out); err != nil {
			s.logger.Warn("websocket write failed", zap.String("game_id", gameID), zap.Error(err))
			return
		}
	}
}

func writeFrame(ws *websocket.Conn, msg protocol.OutboundMessage) error {
	ws.SetWriteDeadline(time.Now().Add(writeWait))
	return ws.WriteJSON(msg)
}

// pingLoop keeps the connection alive until done closes
func pingLoop(ws *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
