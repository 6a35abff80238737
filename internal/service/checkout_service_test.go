package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caribtel/storefront-api/internal/models"
)

func validCheckoutRequest() *CheckoutRequest {
	street, city, region := "12 Frederick St", "Port of Spain", "POS"
	return &CheckoutRequest{
		CustomerName:  "Aliyah Mohammed",
		CustomerEmail: "aliyah@example.com",
		CustomerPhone: "868-555-0123",
		Street:        &street,
		City:          &city,
		Region:        &region,
		PaymentMethod: models.PaymentMethodCOD,
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid device order passes", func(t *testing.T) {
		fields := Validate(validCheckoutRequest(), models.OrderTypeDevice)
		assert.Empty(t, fields)
	})

	t.Run("missing customer fields", func(t *testing.T) {
		req := validCheckoutRequest()
		req.CustomerName = "  "
		req.CustomerEmail = ""

		fields := Validate(req, models.OrderTypeDevice)
		assert.Contains(t, fields, "customerName")
		assert.Contains(t, fields, "customerEmail")
	})

	t.Run("malformed email", func(t *testing.T) {
		req := validCheckoutRequest()
		req.CustomerEmail = "not-an-email"

		fields := Validate(req, models.OrderTypeDevice)
		assert.Contains(t, fields, "customerEmail")
	})

	t.Run("delivery address required for device orders", func(t *testing.T) {
		req := validCheckoutRequest()
		req.Street = nil
		req.City = nil
		req.Region = nil

		fields := Validate(req, models.OrderTypeDevice)
		assert.Contains(t, fields, "street")
		assert.Contains(t, fields, "city")
		assert.Contains(t, fields, "region")
	})

	t.Run("delivery address optional for plan-only orders", func(t *testing.T) {
		req := validCheckoutRequest()
		req.Street = nil
		req.City = nil
		req.Region = nil

		assert.Empty(t, Validate(req, models.OrderTypePostpaidOnly))
		assert.Empty(t, Validate(req, models.OrderTypePrepaidOnly))
	})

	t.Run("cash on delivery accepted for any order type", func(t *testing.T) {
		req := validCheckoutRequest()
		assert.Empty(t, Validate(req, models.OrderTypeMixed))

		req.Street = nil
		req.City = nil
		req.Region = nil
		assert.Empty(t, Validate(req, models.OrderTypePostpaidOnly))
		assert.Empty(t, Validate(req, models.OrderTypePrepaidOnly))
	})

	t.Run("card requires a token", func(t *testing.T) {
		req := validCheckoutRequest()
		req.PaymentMethod = models.PaymentMethodCard

		fields := Validate(req, models.OrderTypeDevice)
		assert.Contains(t, fields, "cardToken")
	})

	t.Run("microloan requires msisdn and offer", func(t *testing.T) {
		req := validCheckoutRequest()
		req.PaymentMethod = models.PaymentMethodMicroloan

		fields := Validate(req, models.OrderTypeDevice)
		assert.Contains(t, fields, "msisdn")
		assert.Contains(t, fields, "loanProductId")
	})

	t.Run("unknown payment method", func(t *testing.T) {
		req := validCheckoutRequest()
		req.PaymentMethod = "barter"

		fields := Validate(req, models.OrderTypeDevice)
		assert.Contains(t, fields, "paymentMethod")
	})
}

func TestOrderItemsFromCart(t *testing.T) {
	planID := "flex"
	items := orderItemsFromCart(models.CartItems{
		{ProductID: "p1", PlanID: &planID, ItemType: models.ItemTypeDeviceBundle, Title: "Nova X5", Price: 1299, PlanPrice: 129, Quantity: 2},
	})

	assert.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, &planID, items[0].PlanID)
	assert.Equal(t, 2, items[0].Quantity)
}
