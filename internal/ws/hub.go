package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// FeedTopic receives the platform-wide activity stream; per-MVP funding
// updates go to MVPTopic(id).
const FeedTopic = "feed"

func MVPTopic(mvpID string) string {
	return "mvp:" + mvpID
}

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(topic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*websocket.Conn]bool)
	}
	h.topics[topic][conn] = true
	log.Printf("ws: client connected to %s (total: %d)", topic, len(h.topics[topic]))
}

func (h *Hub) RemoveConnection(topic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.topics[topic]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.topics, topic)
		}
		log.Printf("ws: client disconnected from %s", topic)
	}
}

func (h *Hub) Broadcast(topic string, message WSMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.topics[topic]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}
