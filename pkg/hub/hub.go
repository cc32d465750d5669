package hub

import (
	"sync"

	"github.com/camkit/go-camera/internal/log"
)

// Hub maintains the set of active clients and broadcasts event envelopes
// to them.
type Hub struct {
	// Name for logging
	name string

	// Registered clients
	clients map[*Client]bool

	// Inbound messages to broadcast
	broadcast chan []byte

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for client count (read-only access from outside)
	mu sync.RWMutex
}

// New creates a new Hub.
func New(name string) *Hub {
	return &Hub{
		name:       name,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop.
// This should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			log.Debug("client connected", "hub", h.name, "clients", count)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			log.Debug("client disconnected", "hub", h.name, "clients", count)

		case data := <-h.broadcast:
			// Write lock: the slow-client path mutates the client set.
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Client's buffer is full - they're too slow.
					// Close and remove them.
					close(client.send)
					delete(h.clients, client)
					log.Warn("dropped slow client", "hub", h.name)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast encodes and sends an event envelope to all connected clients.
func (h *Hub) Broadcast(msg Message) error {
	data, err := msg.Bytes()
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- data:
	default:
		// Broadcast channel full - drop message
		log.Warn("broadcast channel full, dropping message", "hub", h.name, "type", msg.Type)
	}
	return nil
}

// BroadcastEvent builds an envelope for the event type and broadcasts it.
func (h *Hub) BroadcastEvent(eventType string, payload any) error {
	msg, err := NewMessage(eventType, payload)
	if err != nil {
		return err
	}
	return h.Broadcast(msg)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
