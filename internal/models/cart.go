package models

// DefaultCurrency is used when a cart is empty and has no item to derive a currency from.
const DefaultCurrency = "TTD"

// ItemType enumerates the kinds of purchasable units a cart line can hold.
type ItemType string

const (
	ItemTypeDevice        ItemType = "device"
	ItemTypePostpaidPlan  ItemType = "postpaid-plan"
	ItemTypePrepaidBundle ItemType = "prepaid-bundle"
	ItemTypeDeviceBundle  ItemType = "device-bundle"
)

// CartItem is one line in the cart, identified by the
// (productId, variantId, planId) triple.
type CartItem struct {
	ProductID    string   `json:"productId"`
	VariantID    *string  `json:"variantId"`
	PlanID       *string  `json:"planId"`
	ItemType     ItemType `json:"itemType"`
	Title        string   `json:"title"`
	VariantName  *string  `json:"variantName"`
	PlanName     *string  `json:"planName"`
	Price        float64  `json:"price"`
	PlanPrice    float64  `json:"planPrice"`
	CurrencyCode string   `json:"currencyCode"`
	ImageURL     *string  `json:"imageUrl"`
	Handle       *string  `json:"handle"`
	Quantity     int      `json:"quantity"`
}

// Normalize backfills fields that records written by the pre-plan cart schema
// are missing: planId/planName stay nil, planPrice stays 0, itemType defaults
// to device. Safe to call on already-normalized items.
func (i *CartItem) Normalize() {
	if i.ItemType == "" {
		i.ItemType = ItemTypeDevice
	}
	if i.Quantity < 1 {
		i.Quantity = 1
	}
}

// SameLine reports whether two items belong to the same cart line,
// i.e. share the full identity triple.
func (i *CartItem) SameLine(productID string, variantID, planID *string) bool {
	return i.ProductID == productID &&
		strPtrEqual(i.VariantID, variantID) &&
		strPtrEqual(i.PlanID, planID)
}

// LineTotal computes the price of this line. Postpaid plans are billed flat
// per month regardless of quantity; everything else is
// (price + planPrice) * quantity.
func (i *CartItem) LineTotal() float64 {
	if i.ItemType == ItemTypePostpaidPlan {
		return i.Price
	}
	return (i.Price + i.PlanPrice) * float64(i.Quantity)
}

// CartItems is the ordered list of lines in a cart. Insertion order is
// preserved for display grouping.
type CartItems []CartItem

// Count returns the sum of quantities across all lines.
func (items CartItems) Count() int {
	count := 0
	for i := range items {
		count += items[i].Quantity
	}
	return count
}

// Total returns the sum of per-line totals.
func (items CartItems) Total() float64 {
	total := 0.0
	for i := range items {
		total += items[i].LineTotal()
	}
	return total
}

// Currency returns the currency of the first item, or DefaultCurrency for an
// empty cart. The cart assumes a homogeneous currency across lines.
func (items CartItems) Currency() string {
	if len(items) == 0 {
		return DefaultCurrency
	}
	return items[0].CurrencyCode
}

// PlanMatcher selects cart lines by their planId dimension. Remove and
// update operations take an explicit matcher instead of an optional argument,
// so "no plan" (nil planId) and "any plan" are never conflated.
type PlanMatcher struct {
	anyPlan bool
	planID  *string
}

// MatchAnyPlan matches a line regardless of its planId.
func MatchAnyPlan() PlanMatcher {
	return PlanMatcher{anyPlan: true}
}

// MatchPlan matches only lines whose planId equals id (nil matches the
// plan-less line).
func MatchPlan(id *string) PlanMatcher {
	return PlanMatcher{planID: id}
}

// Matches reports whether a line with the given planId is selected.
func (m PlanMatcher) Matches(planID *string) bool {
	if m.anyPlan {
		return true
	}
	return strPtrEqual(m.planID, planID)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
