package models

import "time"

// OrderType classifies the current item set to decide which checkout form
// sections and payment methods are offered. A routing convenience only;
// nothing downstream depends on it beyond which fields are shown.
type OrderType string

const (
	OrderTypeDevice       OrderType = "device"
	OrderTypePostpaidOnly OrderType = "postpaid-only"
	OrderTypePrepaidOnly  OrderType = "prepaid-only"
	OrderTypeMixed        OrderType = "mixed"
)

// ClassifyOrder maps an item set to its order type. Any device or
// device-bundle line dominates; a homogeneous non-device set classifies by
// that type; anything else is mixed.
func ClassifyOrder(items CartItems) OrderType {
	if len(items) == 0 {
		return OrderTypeDevice
	}

	hasPostpaid := false
	hasPrepaid := false
	for i := range items {
		switch items[i].ItemType {
		case ItemTypeDevice, ItemTypeDeviceBundle:
			return OrderTypeDevice
		case ItemTypePostpaidPlan:
			hasPostpaid = true
		case ItemTypePrepaidBundle:
			hasPrepaid = true
		}
	}

	if hasPostpaid && !hasPrepaid {
		return OrderTypePostpaidOnly
	}
	if hasPrepaid && !hasPostpaid {
		return OrderTypePrepaidOnly
	}
	return OrderTypeMixed
}

// RequiresDelivery reports whether checkout must collect a delivery address
// for this order type. Plan-only orders are provisioned digitally.
func (t OrderType) RequiresDelivery() bool {
	return t == OrderTypeDevice || t == OrderTypeMixed
}

// PaymentMethod enumerates how an order is settled.
type PaymentMethod string

const (
	PaymentMethodMicroloan PaymentMethod = "microloan"
	PaymentMethodCard      PaymentMethod = "card"
	PaymentMethodCOD       PaymentMethod = "cod"
)

// PaymentStatus tracks settlement of a placed order.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// Order is a placed order persisted after successful checkout.
type Order struct {
	ID            int           `db:"id" json:"-"`
	OrderNumber   string        `db:"order_number" json:"orderNumber"`
	CustomerName  string        `db:"customer_name" json:"customerName"`
	CustomerEmail string        `db:"customer_email" json:"customerEmail"`
	CustomerPhone string        `db:"customer_phone" json:"customerPhone"`
	Street        *string       `db:"street" json:"street,omitempty"`
	City          *string       `db:"city" json:"city,omitempty"`
	Region        *string       `db:"region" json:"region,omitempty"`
	OrderType     OrderType     `db:"order_type" json:"orderType"`
	PaymentMethod PaymentMethod `db:"payment_method" json:"paymentMethod"`
	PaymentStatus PaymentStatus `db:"payment_status" json:"paymentStatus"`
	ChargeID      *string       `db:"charge_id" json:"-"`
	LoanID        *string       `db:"loan_id" json:"loanId,omitempty"`
	LoanStatus    *string       `db:"loan_status" json:"loanStatus,omitempty"`
	Total         float64       `db:"total" json:"total"`
	CurrencyCode  string        `db:"currency_code" json:"currencyCode"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `db:"updated_at" json:"-"`
}

// OrderItem is a snapshot of one cart line at the moment the order was placed.
type OrderItem struct {
	ID        int      `db:"id" json:"-"`
	OrderID   int      `db:"order_id" json:"-"`
	ProductID string   `db:"product_id" json:"productId"`
	VariantID *string  `db:"variant_id" json:"variantId"`
	PlanID    *string  `db:"plan_id" json:"planId"`
	ItemType  ItemType `db:"item_type" json:"itemType"`
	Title     string   `db:"title" json:"title"`
	Price     float64  `db:"price" json:"price"`
	PlanPrice float64  `db:"plan_price" json:"planPrice"`
	Quantity  int      `db:"quantity" json:"quantity"`
}
