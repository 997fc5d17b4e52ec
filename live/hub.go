package live

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/cafe-finder/models"
	"github.com/yeremiapane/cafe-finder/utils"
)

// Event types
const (
	EventCafeCreated   = "cafe_created"
	EventCafeUpdated   = "cafe_updated"
	EventCafeDeleted   = "cafe_deleted"
	EventReviewCreated = "review_created"
	EventReviewVoted   = "review_voted"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

const (
	// sendBuffer is how many events may queue for one client before it is
	// considered stalled and dropped.
	sendBuffer = 16
	writeWait  = 10 * time.Second
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub holds the connected websocket clients and fans catalog events out to
// them. Publishing never waits on a client: each one has its own queue and
// writer goroutine.
type Hub struct {
	clients   map[*websocket.Conn]*client
	mutex     sync.Mutex
	writeWait time.Duration
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]*client),
		writeWait: writeWait,
	}
}

// Register adds conn and starts its writer.
func (h *Hub) Register(conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mutex.Lock()
	h.clients[conn] = c
	h.mutex.Unlock()

	go h.writePump(c)
}

// Unregister removes conn; its writer closes the connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.drop(conn)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

func (h *Hub) CafeCreated(cafe models.Cafe) { h.Broadcast(Message{Event: EventCafeCreated, Data: cafe}) }
func (h *Hub) CafeUpdated(cafe models.Cafe) { h.Broadcast(Message{Event: EventCafeUpdated, Data: cafe}) }

func (h *Hub) CafeDeleted(cafe models.Cafe) {
	h.Broadcast(Message{Event: EventCafeDeleted, Data: map[string]interface{}{"id": cafe.ID, "name": cafe.Name}})
}

func (h *Hub) ReviewCreated(review models.Review) {
	h.Broadcast(Message{Event: EventReviewCreated, Data: review})
}

func (h *Hub) ReviewVoted(review models.Review) {
	h.Broadcast(Message{Event: EventReviewVoted, Data: review})
}

// Broadcast queues msg for every client. A client whose queue is full is
// dropped instead of blocking the caller.
func (h *Hub) Broadcast(msg Message) {
	if h == nil {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling %s message: %v", msg.Event, err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn, c := range h.clients {
		select {
		case c.send <- data:
		default:
			utils.ErrorLogger.Printf("Client too slow for %s, dropping it", msg.Event)
			h.drop(conn)
		}
	}
	utils.InfoLogger.Debugf("Broadcast %s to %d clients", msg.Event, len(h.clients))
}

// drop must be called with h.mutex held.
func (h *Hub) drop(conn *websocket.Conn) {
	if c, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(c.send)
	}
}

// writePump is the only goroutine writing to c.conn.
func (h *Hub) writePump(c *client) {
	defer c.conn.Close()

	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(h.writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error writing to websocket client, dropping it: %v", err)
			h.Unregister(c.conn)
			// send is closed now; drain what was queued
			for range c.send {
			}
			return
		}
	}

	c.conn.SetWriteDeadline(time.Now().Add(h.writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
