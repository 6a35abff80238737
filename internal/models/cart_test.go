package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestCartItemNormalize(t *testing.T) {
	t.Run("backfills pre-plan records", func(t *testing.T) {
		// A record persisted before plans existed: no itemType, no plan fields.
		raw := `{"productId":"p1","title":"Nova X5","price":1299,"quantity":2,"currencyCode":"TTD"}`

		var item CartItem
		require.NoError(t, json.Unmarshal([]byte(raw), &item))
		item.Normalize()

		assert.Equal(t, ItemTypeDevice, item.ItemType)
		assert.Nil(t, item.PlanID)
		assert.Nil(t, item.PlanName)
		assert.Zero(t, item.PlanPrice)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("clamps quantity to one", func(t *testing.T) {
		item := CartItem{ProductID: "p1", ItemType: ItemTypeDevice, Quantity: 0}
		item.Normalize()
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("leaves normalized items alone", func(t *testing.T) {
		item := CartItem{ProductID: "p1", ItemType: ItemTypePostpaidPlan, Quantity: 3}
		item.Normalize()
		assert.Equal(t, ItemTypePostpaidPlan, item.ItemType)
		assert.Equal(t, 3, item.Quantity)
	})
}

func TestCartItemSameLine(t *testing.T) {
	item := CartItem{ProductID: "p1", VariantID: strp("v1"), PlanID: strp("flex")}

	assert.True(t, item.SameLine("p1", strp("v1"), strp("flex")))
	assert.False(t, item.SameLine("p1", strp("v1"), strp("unlimited")))
	assert.False(t, item.SameLine("p1", strp("v1"), nil))
	assert.False(t, item.SameLine("p1", strp("v2"), strp("flex")))
	assert.False(t, item.SameLine("p2", strp("v1"), strp("flex")))

	bare := CartItem{ProductID: "p1"}
	assert.True(t, bare.SameLine("p1", nil, nil))
	assert.False(t, bare.SameLine("p1", nil, strp("flex")))
}

func TestCartItemLineTotal(t *testing.T) {
	t.Run("postpaid plan billed flat", func(t *testing.T) {
		item := CartItem{ItemType: ItemTypePostpaidPlan, Price: 129, Quantity: 3}
		assert.Equal(t, 129.0, item.LineTotal())
	})

	t.Run("device scales with quantity", func(t *testing.T) {
		item := CartItem{ItemType: ItemTypeDevice, Price: 100, Quantity: 2}
		assert.Equal(t, 200.0, item.LineTotal())
	})

	t.Run("bundle includes plan price", func(t *testing.T) {
		item := CartItem{ItemType: ItemTypeDeviceBundle, Price: 1000, PlanPrice: 129, Quantity: 2}
		assert.Equal(t, 2258.0, item.LineTotal())
	})
}

func TestCartItemsTotals(t *testing.T) {
	items := CartItems{
		{ItemType: ItemTypeDevice, Price: 100, Quantity: 2, CurrencyCode: "TTD"},
		{ItemType: ItemTypePrepaidBundle, Price: 250, Quantity: 1, CurrencyCode: "TTD"},
	}

	assert.Equal(t, 3, items.Count())
	assert.Equal(t, 450.0, items.Total())
	assert.Equal(t, "TTD", items.Currency())
}

func TestCartItemsCurrencyDefaults(t *testing.T) {
	assert.Equal(t, DefaultCurrency, CartItems{}.Currency())

	items := CartItems{{CurrencyCode: "USD"}, {CurrencyCode: "TTD"}}
	assert.Equal(t, "USD", items.Currency())
}

func TestPlanMatcher(t *testing.T) {
	t.Run("any plan matches everything", func(t *testing.T) {
		m := MatchAnyPlan()
		assert.True(t, m.Matches(nil))
		assert.True(t, m.Matches(strp("flex")))
	})

	t.Run("nil plan matches only the plan-less line", func(t *testing.T) {
		m := MatchPlan(nil)
		assert.True(t, m.Matches(nil))
		assert.False(t, m.Matches(strp("flex")))
	})

	t.Run("specific plan matches only itself", func(t *testing.T) {
		m := MatchPlan(strp("flex"))
		assert.True(t, m.Matches(strp("flex")))
		assert.False(t, m.Matches(strp("unlimited")))
		assert.False(t, m.Matches(nil))
	})
}
