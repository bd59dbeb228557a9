package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/game"
	utils "github.com/minaorangina/klondike/internal"
	"github.com/minaorangina/klondike/protocol"
	"github.com/minaorangina/klondike/store"
)

const someGameID = "some-game-id"

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/games", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/games/"+gameID, nil)
	return request
}

func newMoveRequest(gameID string, data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/games/"+gameID+"/moves", bytes.NewBuffer(data))
	return request
}

// newServerWithGame returns a server holding one unshuffled Basic game
// with two cascades and a draw of one, under someGameID
func newServerWithGame(t *testing.T) (*GameServer, *store.InMemoryGameStore) {
	t.Helper()

	g := game.NewBasic()
	utils.AssertNoError(t, g.Start(deck.New(), false, 2, 1))

	str := store.NewInMemoryGameStore(nil)
	utils.AssertNoError(t, str.AddGameWithID(someGameID, g))

	return NewServer(str), str
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func decodeGameRes(t *testing.T, body io.Reader) GameRes {
	t.Helper()

	var got GameRes
	if err := json.NewDecoder(body).Decode(&got); err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
	return got
}

func decodeOutbound(t *testing.T, body io.Reader) protocol.OutboundMessage {
	t.Helper()

	var got protocol.OutboundMessage
	if err := json.NewDecoder(body).Decode(&got); err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
	return got
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		code := 0
		var body []byte
		if resp != nil {
			code = resp.StatusCode
			body, _ = io.ReadAll(resp.Body)
		}
		t.Fatalf("could not open a ws connection on %s, code %d: %s, %v", url, code, body, err)
	}
	if ws == nil {
		t.Fatal("unexpected nil websocket conn")
	}

	return ws
}

func makeWSUrl(serverURL, gameID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID
}
