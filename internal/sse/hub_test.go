package sse

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribtel/storefront-api/internal/models"
)

func TestHubBroadcastFiltersByCart(t *testing.T) {
	hub := NewHub()

	mine := hub.Register("client-1", "cart-a")
	other := hub.Register("client-2", "cart-b")
	defer hub.Unregister("client-1")
	defer hub.Unregister("client-2")

	notifier := NewHubNotifier(hub)
	notifier.NotifyCartUpdated("cart-a", models.CartItems{
		{ProductID: "p1", ItemType: models.ItemTypeDevice, Price: 100, Quantity: 2, CurrencyCode: "TTD"},
	}, true)

	select {
	case raw := <-mine.Events:
		var event CartEvent
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, EventCartUpdated, event.Event)
		assert.Equal(t, "cart-a", event.CartID)
		assert.Equal(t, 2, event.ItemCount)
		assert.Equal(t, 200.0, event.Total)
		assert.True(t, event.Open)
	case <-time.After(time.Second):
		t.Fatal("expected event for cart-a subscriber")
	}

	select {
	case <-other.Events:
		t.Fatal("cart-b subscriber must not see cart-a events")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubClearedEvent(t *testing.T) {
	hub := NewHub()
	client := hub.Register("client-1", "cart-a")
	defer hub.Unregister("client-1")

	NewHubNotifier(hub).NotifyCartCleared("cart-a")

	select {
	case raw := <-client.Events:
		var event CartEvent
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, EventCartCleared, event.Event)
		assert.Zero(t, event.ItemCount)
		assert.Equal(t, models.DefaultCurrency, event.CurrencyCode)
	case <-time.After(time.Second):
		t.Fatal("expected cleared event")
	}
}

func TestHubUnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	client := hub.Register("client-1", "cart-a")
	hub.Unregister("client-1")

	_, open := <-client.Events
	assert.False(t, open)
	assert.Zero(t, hub.ClientCount())
}
