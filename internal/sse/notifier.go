package sse

import (
	"time"

	"github.com/caribtel/storefront-api/internal/models"
)

// CartNotifier is the interface the cart store uses to emit change events
// to its observers.
type CartNotifier interface {
	NotifyCartUpdated(cartID string, items models.CartItems, open bool)
	NotifyCartCleared(cartID string)
}

// HubNotifier implements CartNotifier using the SSE Hub.
type HubNotifier struct {
	hub *Hub
}

// NewHubNotifier creates a notifier backed by the given Hub.
func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyCartUpdated(cartID string, items models.CartItems, open bool) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(cartToEvent(EventCartUpdated, cartID, items, open))
}

func (n *HubNotifier) NotifyCartCleared(cartID string) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(cartToEvent(EventCartCleared, cartID, nil, false))
}

func cartToEvent(eventType EventType, cartID string, items models.CartItems, open bool) *CartEvent {
	if items == nil {
		items = models.CartItems{}
	}
	return &CartEvent{
		Event:        eventType,
		CartID:       cartID,
		Items:        items,
		ItemCount:    items.Count(),
		Total:        items.Total(),
		CurrencyCode: items.Currency(),
		Open:         open,
		Timestamp:    time.Now(),
	}
}

// NopNotifier is a no-op implementation for when SSE is not needed.
type NopNotifier struct{}

func (n *NopNotifier) NotifyCartUpdated(cartID string, items models.CartItems, open bool) {}
func (n *NopNotifier) NotifyCartCleared(cartID string)                                    {}
