package events_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/99xcafe/pos-backend/events"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialTestClient spins up a websocket server and returns both ends of
// one connection.
func dialTestClient(t *testing.T) (server *websocket.Conn, client *websocket.Conn, cleanup func()) {
	serverSide := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverSide <- ws
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	server = <-serverSide

	cleanup = func() {
		client.Close()
		server.Close()
		srv.Close()
	}
	return server, client, cleanup
}

func TestBroadcastReachesConnectedClient(t *testing.T) {
	server, client, cleanup := dialTestClient(t)
	defer cleanup()

	events.RegisterClient(server)
	defer events.UnregisterClient(server)

	events.Broadcast(events.EventSeatChange, map[string]interface{}{"id": 1})

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := client.ReadMessage()
	assert.NoError(t, err)
	assert.Contains(t, string(payload), events.EventSeatChange)
}

func TestBroadcastSkipsFailedClient(t *testing.T) {
	deadServer, deadClient, deadCleanup := dialTestClient(t)
	defer deadCleanup()
	liveServer, liveClient, liveCleanup := dialTestClient(t)
	defer liveCleanup()

	events.RegisterClient(deadServer)
	events.RegisterClient(liveServer)
	defer events.UnregisterClient(deadServer)
	defer events.UnregisterClient(liveServer)

	// A dead connection must not keep the event from the others
	deadClient.Close()
	deadServer.Close()

	events.Broadcast(events.EventItemChange, map[string]interface{}{"id": 2})

	liveClient.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := liveClient.ReadMessage()
	assert.NoError(t, err)
	assert.Contains(t, string(payload), events.EventItemChange)
}
