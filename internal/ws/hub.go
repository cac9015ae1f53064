package ws

import (
	"encoding/json"
	"log"
	"sync"

	"bazar-dor-api/internal/model"

	"github.com/gofiber/contrib/websocket"
)

// broadcastBuffer bounds how many events may wait for the hub loop.
const broadcastBuffer = 64

// Hub fans catalog events out to every connected viewer. Viewers treat an
// event as a prompt to refetch; a dropped event only delays that.
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, broadcastBuffer),
	}
}

// Run owns the client set. Start it once in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.add(conn)
		case conn := <-h.Unregister:
			h.remove(conn)
		case message := <-h.Broadcast:
			h.send(message)
		}
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mutex.Lock()
	h.Clients[conn] = true
	n := len(h.Clients)
	h.mutex.Unlock()
	log.Printf("ws: viewer connected (%d online)", n)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.Clients[conn]; ok {
		delete(h.Clients, conn)
		conn.Close()
	}
}

// send drops any viewer whose write fails.
func (h *Hub) send(message []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for conn := range h.Clients {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			conn.Close()
			delete(h.Clients, conn)
		}
	}
}

// ClientCount reports the number of connected viewers.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

// Publish queues event for broadcast. It never blocks: when the queue is
// full the event is dropped and logged.
func (h *Hub) Publish(event model.CatalogEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws: encode %s event: %v", event.Action, err)
		return
	}
	select {
	case h.Broadcast <- payload:
	default:
		log.Printf("ws: broadcast queue full, dropped %s event for %s", event.Action, event.ProductID)
	}
}

// Serve keeps a viewer registered until its connection closes. Incoming
// frames are read and discarded.
func (h *Hub) Serve(c *websocket.Conn) {
	h.Register <- c
	defer func() { h.Unregister <- c }()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
