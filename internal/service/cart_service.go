package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/caribtel/storefront-api/internal/cache"
	"github.com/caribtel/storefront-api/internal/models"
	"github.com/caribtel/storefront-api/internal/sse"
)

// CartState is the derived view of a cart returned to handlers and pushed to
// SSE subscribers after every mutation.
type CartState struct {
	Items        models.CartItems `json:"items"`
	ItemCount    int              `json:"itemCount"`
	Total        float64          `json:"total"`
	CurrencyCode string           `json:"currencyCode"`
	Open         bool             `json:"open"`
}

// CartService owns the cart lifecycle: load, mutate, persist, notify.
// Persistence is best-effort; a failed read or write degrades to an empty or
// in-memory cart rather than failing the request.
type CartService struct {
	storage  cache.Storage
	notifier sse.CartNotifier

	// Per-cart locks so concurrent mutations of the same cart serialize
	// their read-modify-write cycles.
	locks sync.Map
}

// NewCartService creates a CartService backed by the given storage.
func NewCartService(storage cache.Storage, notifier sse.CartNotifier) *CartService {
	if notifier == nil {
		notifier = &sse.NopNotifier{}
	}
	return &CartService{storage: storage, notifier: notifier}
}

func (s *CartService) lock(cartID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(cartID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// load reads and deserializes the cart. Corrupt or unreadable data falls back
// to an empty cart so a bad record can never brick a session.
func (s *CartService) load(ctx context.Context, cartID string) models.CartItems {
	raw, found, err := s.storage.Read(ctx, cartID)
	if err != nil {
		log.Warn().Err(err).Str("cart_id", cartID).Msg("Cart read failed, starting empty")
		return models.CartItems{}
	}
	if !found {
		return models.CartItems{}
	}

	var items models.CartItems
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn().Err(err).Str("cart_id", cartID).Msg("Cart data corrupt, starting empty")
		return models.CartItems{}
	}

	// Records written by the pre-plan schema are missing the plan fields.
	for i := range items {
		items[i].Normalize()
	}
	return items
}

// persist writes the cart back. Write failures are logged and swallowed: the
// mutation already succeeded in memory and the response must reflect it.
func (s *CartService) persist(ctx context.Context, cartID string, items models.CartItems) {
	raw, err := json.Marshal(items)
	if err != nil {
		log.Error().Err(err).Str("cart_id", cartID).Msg("Cart marshal failed")
		return
	}
	if err := s.storage.Write(ctx, cartID, string(raw)); err != nil {
		log.Warn().Err(err).Str("cart_id", cartID).Msg("Cart write failed")
	}
}

func (s *CartService) state(items models.CartItems, open bool) *CartState {
	return &CartState{
		Items:        items,
		ItemCount:    items.Count(),
		Total:        items.Total(),
		CurrencyCode: items.Currency(),
		Open:         open,
	}
}

// Get returns the current cart without mutating it.
func (s *CartService) Get(ctx context.Context, cartID string) *CartState {
	mu := s.lock(cartID)
	mu.Lock()
	defer mu.Unlock()

	return s.state(s.load(ctx, cartID), false)
}

// AddItem adds one unit of the given line. When a line with the same
// (productId, variantId, planId) triple already exists its quantity is
// incremented; otherwise the line is appended. The returned state flags the
// cart drawer as open.
func (s *CartService) AddItem(ctx context.Context, cartID string, item models.CartItem) *CartState {
	mu := s.lock(cartID)
	mu.Lock()
	defer mu.Unlock()

	item.Normalize()
	items := s.load(ctx, cartID)

	merged := false
	for i := range items {
		if items[i].SameLine(item.ProductID, item.VariantID, item.PlanID) {
			items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = 1
		items = append(items, item)
	}

	s.persist(ctx, cartID, items)
	s.notifier.NotifyCartUpdated(cartID, items, true)
	return s.state(items, true)
}

// UpdateQuantity sets the quantity of the lines selected by
// (productID, variantID, matcher). A quantity of zero or less removes the
// selected lines.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID, productID string, variantID *string, matcher models.PlanMatcher, quantity int) *CartState {
	mu := s.lock(cartID)
	mu.Lock()
	defer mu.Unlock()

	items := s.load(ctx, cartID)

	if quantity <= 0 {
		items = removeLines(items, productID, variantID, matcher)
	} else {
		for i := range items {
			if lineSelected(&items[i], productID, variantID, matcher) {
				items[i].Quantity = quantity
			}
		}
	}

	s.persist(ctx, cartID, items)
	s.notifier.NotifyCartUpdated(cartID, items, false)
	return s.state(items, false)
}

// RemoveItem removes the lines selected by (productID, variantID, matcher).
func (s *CartService) RemoveItem(ctx context.Context, cartID, productID string, variantID *string, matcher models.PlanMatcher) *CartState {
	mu := s.lock(cartID)
	mu.Lock()
	defer mu.Unlock()

	items := removeLines(s.load(ctx, cartID), productID, variantID, matcher)

	s.persist(ctx, cartID, items)
	s.notifier.NotifyCartUpdated(cartID, items, false)
	return s.state(items, false)
}

// Clear empties the cart and drops its persisted record.
func (s *CartService) Clear(ctx context.Context, cartID string) *CartState {
	mu := s.lock(cartID)
	mu.Lock()
	defer mu.Unlock()

	if err := s.storage.Delete(ctx, cartID); err != nil {
		log.Warn().Err(err).Str("cart_id", cartID).Msg("Cart delete failed")
	}
	s.notifier.NotifyCartCleared(cartID)
	return s.state(models.CartItems{}, false)
}

func lineSelected(item *models.CartItem, productID string, variantID *string, matcher models.PlanMatcher) bool {
	return item.ProductID == productID &&
		ptrEqual(item.VariantID, variantID) &&
		matcher.Matches(item.PlanID)
}

func removeLines(items models.CartItems, productID string, variantID *string, matcher models.PlanMatcher) models.CartItems {
	kept := items[:0]
	for i := range items {
		if !lineSelected(&items[i], productID, variantID, matcher) {
			kept = append(kept, items[i])
		}
	}
	return kept
}

func ptrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
