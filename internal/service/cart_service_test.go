package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribtel/storefront-api/internal/models"
	"github.com/caribtel/storefront-api/internal/sse"
)

// memStorage is an in-memory Storage for tests. Set failReads or failWrites
// to exercise the degraded paths.
type memStorage struct {
	mu         sync.Mutex
	data       map[string]string
	failReads  bool
	failWrites bool
}

func newMemStorage() *memStorage {
	return &memStorage{data: map[string]string{}}
}

func (m *memStorage) Read(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failReads {
		return "", false, errors.New("storage down")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStorage) Write(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errors.New("storage down")
	}
	m.data[key] = value
	return nil
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func newTestCartService() (*CartService, *memStorage) {
	storage := newMemStorage()
	return NewCartService(storage, &sse.NopNotifier{}), storage
}

func deviceItem(productID string) models.CartItem {
	return models.CartItem{
		ProductID:    productID,
		ItemType:     models.ItemTypeDevice,
		Title:        "Device " + productID,
		Price:        100,
		CurrencyCode: "TTD",
	}
}

func TestCartServiceAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("appends new line with quantity one", func(t *testing.T) {
		svc, _ := newTestCartService()

		state := svc.AddItem(ctx, "cart-1", deviceItem("p1"))

		require.Len(t, state.Items, 1)
		assert.Equal(t, 1, state.Items[0].Quantity)
		assert.True(t, state.Open)
	})

	t.Run("merges identical identity triples", func(t *testing.T) {
		svc, _ := newTestCartService()

		svc.AddItem(ctx, "cart-1", deviceItem("p1"))
		state := svc.AddItem(ctx, "cart-1", deviceItem("p1"))

		require.Len(t, state.Items, 1)
		assert.Equal(t, 2, state.Items[0].Quantity)
		assert.Equal(t, 2, state.ItemCount)
	})

	t.Run("distinct plans are distinct lines", func(t *testing.T) {
		svc, _ := newTestCartService()

		withPlan := deviceItem("p1")
		withPlan.ItemType = models.ItemTypeDeviceBundle
		withPlan.PlanID = strPtr("flex")
		withPlan.PlanPrice = 129

		svc.AddItem(ctx, "cart-1", deviceItem("p1"))
		state := svc.AddItem(ctx, "cart-1", withPlan)

		require.Len(t, state.Items, 2)
	})

	t.Run("round-trips through storage", func(t *testing.T) {
		svc, storage := newTestCartService()

		svc.AddItem(ctx, "cart-1", deviceItem("p1"))

		// A fresh service over the same storage sees the same cart.
		fresh := NewCartService(storage, &sse.NopNotifier{})
		state := fresh.Get(ctx, "cart-1")
		require.Len(t, state.Items, 1)
		assert.Equal(t, "p1", state.Items[0].ProductID)
	})
}

func TestCartServiceUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("sets quantity", func(t *testing.T) {
		svc, _ := newTestCartService()
		svc.AddItem(ctx, "cart-1", deviceItem("p1"))

		state := svc.UpdateQuantity(ctx, "cart-1", "p1", nil, models.MatchPlan(nil), 5)

		require.Len(t, state.Items, 1)
		assert.Equal(t, 5, state.Items[0].Quantity)
		assert.False(t, state.Open)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		svc, _ := newTestCartService()
		svc.AddItem(ctx, "cart-1", deviceItem("p1"))
		svc.AddItem(ctx, "cart-1", deviceItem("p2"))

		state := svc.UpdateQuantity(ctx, "cart-1", "p1", nil, models.MatchPlan(nil), 0)

		require.Len(t, state.Items, 1)
		assert.Equal(t, "p2", state.Items[0].ProductID)
	})

	t.Run("negative removes the line", func(t *testing.T) {
		svc, _ := newTestCartService()
		svc.AddItem(ctx, "cart-1", deviceItem("p1"))

		state := svc.UpdateQuantity(ctx, "cart-1", "p1", nil, models.MatchPlan(nil), -1)
		assert.Empty(t, state.Items)
	})
}

func TestCartServiceRemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("nil plan leaves plan lines alone", func(t *testing.T) {
		svc, _ := newTestCartService()

		withPlan := deviceItem("p1")
		withPlan.PlanID = strPtr("flex")

		svc.AddItem(ctx, "cart-1", deviceItem("p1"))
		svc.AddItem(ctx, "cart-1", withPlan)

		state := svc.RemoveItem(ctx, "cart-1", "p1", nil, models.MatchPlan(nil))

		require.Len(t, state.Items, 1)
		assert.Equal(t, "flex", *state.Items[0].PlanID)
	})

	t.Run("any plan removes all variants of the product", func(t *testing.T) {
		svc, _ := newTestCartService()

		withPlan := deviceItem("p1")
		withPlan.PlanID = strPtr("flex")

		svc.AddItem(ctx, "cart-1", deviceItem("p1"))
		svc.AddItem(ctx, "cart-1", withPlan)
		svc.AddItem(ctx, "cart-1", deviceItem("p2"))

		state := svc.RemoveItem(ctx, "cart-1", "p1", nil, models.MatchAnyPlan())

		require.Len(t, state.Items, 1)
		assert.Equal(t, "p2", state.Items[0].ProductID)
	})
}

func TestCartServiceClear(t *testing.T) {
	ctx := context.Background()
	svc, storage := newTestCartService()

	svc.AddItem(ctx, "cart-1", deviceItem("p1"))
	state := svc.Clear(ctx, "cart-1")

	assert.Empty(t, state.Items)
	assert.Zero(t, state.ItemCount)
	assert.Zero(t, state.Total)
	assert.Equal(t, models.DefaultCurrency, state.CurrencyCode)
	assert.Empty(t, storage.data)
}

func TestCartServiceDegradedStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("read failure starts empty", func(t *testing.T) {
		svc, storage := newTestCartService()
		storage.failReads = true

		state := svc.Get(ctx, "cart-1")
		assert.Empty(t, state.Items)
	})

	t.Run("corrupt record starts empty", func(t *testing.T) {
		svc, storage := newTestCartService()
		storage.data["cart-1"] = "{not json"

		state := svc.Get(ctx, "cart-1")
		assert.Empty(t, state.Items)
	})

	t.Run("write failure still returns the mutation", func(t *testing.T) {
		svc, storage := newTestCartService()
		storage.failWrites = true

		state := svc.AddItem(ctx, "cart-1", deviceItem("p1"))
		require.Len(t, state.Items, 1)
	})

	t.Run("legacy records normalize on load", func(t *testing.T) {
		svc, storage := newTestCartService()
		storage.data["cart-1"] = `[{"productId":"p1","title":"Old","price":50,"quantity":2,"currencyCode":"TTD"}]`

		state := svc.Get(ctx, "cart-1")
		require.Len(t, state.Items, 1)
		assert.Equal(t, models.ItemTypeDevice, state.Items[0].ItemType)
		assert.Nil(t, state.Items[0].PlanID)
		assert.Equal(t, 100.0, state.Total)
	})
}
