package sse

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/caribtel/storefront-api/internal/models"
)

// EventType defines the SSE event name.
type EventType string

const (
	EventCartUpdated EventType = "cart.updated"
	EventCartCleared EventType = "cart.cleared"
)

// CartEvent is the payload broadcast to storefront SSE clients (nav badge,
// cart drawer) after every mutation of their cart.
type CartEvent struct {
	Event        EventType        `json:"event"`
	CartID       string           `json:"cartId"`
	Items        models.CartItems `json:"items"`
	ItemCount    int              `json:"itemCount"`
	Total        float64          `json:"total"`
	CurrencyCode string           `json:"currencyCode"`
	Open         bool             `json:"open"`
	Timestamp    time.Time        `json:"timestamp"`
}

// Client represents a connected SSE storefront client.
type Client struct {
	ID     string
	CartID string
	Events chan []byte
}

// Hub manages SSE client connections and broadcasts. Clients only receive
// events for their own cart.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewHub creates a new SSE hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a new client and returns it for streaming.
func (h *Hub) Register(clientID, cartID string) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	c := &Client{
		ID:     clientID,
		CartID: cartID,
		Events: make(chan []byte, 64),
	}
	h.clients[clientID] = c
	log.Info().Str("client_id", clientID).Int("total_clients", len(h.clients)).Msg("SSE client connected")
	return c
}

// Unregister removes a client and closes its channel.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.clients[clientID]; ok {
		close(c.Events)
		delete(h.clients, clientID)
		log.Info().Str("client_id", clientID).Int("total_clients", len(h.clients)).Msg("SSE client disconnected")
	}
}

// Broadcast sends an event to all clients subscribed to the event's cart.
// Non-blocking: drops message if client buffer is full.
func (h *Hub) Broadcast(event *CartEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal SSE event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		if c.CartID != event.CartID {
			continue
		}
		select {
		case c.Events <- data:
		default:
			log.Warn().Str("client_id", c.ID).Msg("SSE client buffer full, dropping event")
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
