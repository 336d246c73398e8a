package events

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// writeWait bounds how long a broadcast waits on a single client before
// giving up on it, so one stalled connection cannot hold the hub lock.
const writeWait = 5 * time.Second

// Event types pushed to the management app.
const (
	EventCategoryChange = "category_change"
	EventItemChange     = "item_change"
	EventSeatChange     = "seat_change"
	EventCashierChange  = "cashier_change"
	EventBookingCreate  = "booking_create"
	EventBookingUpdate  = "booking_update"
	EventBookingDelete  = "booking_delete"
	EventOrderCreate    = "order_create"
	EventOrderUpdate    = "order_update"
	EventOrderDelete    = "order_delete"
	EventStatsUpdate    = "stats_update"
)

type Message struct {
	ID    string      `json:"id"`
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected management-app client.
type Hub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]bool),
}

// RegisterClient adds a connection to the broadcast set.
func RegisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = true
}

// UnregisterClient drops a connection and closes it.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// Broadcast sends an event to every connected client. Send failures only
// skip that client; the connection is reaped when its read loop ends.
func Broadcast(event string, data interface{}) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	msg := Message{
		ID:    uuid.NewString(),
		Event: event,
		Data:  data,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling event %s: %v", event, err)
		return
	}

	for conn := range hub.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("Error sending event to client: %v", err)
		}
	}
}
