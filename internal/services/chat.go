package services

import (
	"fmt"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// ChatKey builds the deterministic conversation key for two participants:
// the smaller ID first, joined with "_", so both sides subscribe to the
// same channel.
func ChatKey(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b)
}

// ChatHub fans message-insert notifications out to websocket subscribers,
// one room per conversation key. There is no replay: a subscriber that was
// disconnected recovers by re-fetching the message history.
type ChatHub struct {
	mu    sync.Mutex
	rooms map[string]map[*websocket.Conn]bool
}

var (
	chatHub     *ChatHub
	chatHubOnce sync.Once
)

// GetChatHub returns the singleton hub
func GetChatHub() *ChatHub {
	chatHubOnce.Do(func() {
		chatHub = &ChatHub{
			rooms: make(map[string]map[*websocket.Conn]bool),
		}
	})
	return chatHub
}

// Subscribe registers a connection on a conversation channel
func (h *ChatHub) Subscribe(key string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[key] == nil {
		h.rooms[key] = make(map[*websocket.Conn]bool)
	}
	h.rooms[key][conn] = true
}

// Unsubscribe removes a connection and drops the room when it empties
func (h *ChatHub) Unsubscribe(key string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.rooms[key]; ok {
		delete(subs, conn)
		if len(subs) == 0 {
			delete(h.rooms, key)
		}
	}
}

// Publish sends a payload to every subscriber of a conversation. A failed
// write unregisters that subscriber; it catches up from history on its
// next connect.
func (h *ChatHub) Publish(key string, payload interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.rooms[key] {
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("chat publish to %s failed, dropping subscriber: %v", key, err)
			conn.Close()
			delete(h.rooms[key], conn)
		}
	}
	if len(h.rooms[key]) == 0 {
		delete(h.rooms, key)
	}
}
