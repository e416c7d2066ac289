package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub tracks viewer connections and fans new readings out to them.
// Delivery is best-effort: a viewer misses whatever was published while it
// was disconnected, and there is no replay.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

type wsEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// HandleWebSocket upgrades the request and parks the connection until the
// client goes away. Viewers only listen; inbound frames are drained and
// discarded.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	log.Println("Viewer connected:", conn.RemoteAddr())

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
		log.Println("Viewer disconnected:", conn.RemoteAddr())
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends one named event with the given payload to every
// connected viewer. A connection that refuses the write is dropped.
func (h *Hub) Broadcast(name string, payload interface{}) {
	msg, err := json.Marshal(wsEvent{Event: name, Data: payload})
	if err != nil {
		log.Println("Broadcast marshal error:", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
