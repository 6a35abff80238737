package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOrder(t *testing.T) {
	tests := []struct {
		name  string
		items CartItems
		want  OrderType
	}{
		{
			name:  "empty cart is device",
			items: CartItems{},
			want:  OrderTypeDevice,
		},
		{
			name:  "single device",
			items: CartItems{{ItemType: ItemTypeDevice}},
			want:  OrderTypeDevice,
		},
		{
			name:  "device bundle counts as device",
			items: CartItems{{ItemType: ItemTypePostpaidPlan}, {ItemType: ItemTypeDeviceBundle}},
			want:  OrderTypeDevice,
		},
		{
			name:  "homogeneous postpaid",
			items: CartItems{{ItemType: ItemTypePostpaidPlan}, {ItemType: ItemTypePostpaidPlan}},
			want:  OrderTypePostpaidOnly,
		},
		{
			name:  "homogeneous prepaid",
			items: CartItems{{ItemType: ItemTypePrepaidBundle}},
			want:  OrderTypePrepaidOnly,
		},
		{
			name:  "postpaid plus prepaid is mixed",
			items: CartItems{{ItemType: ItemTypePostpaidPlan}, {ItemType: ItemTypePrepaidBundle}},
			want:  OrderTypeMixed,
		},
		{
			name:  "device dominates everything",
			items: CartItems{{ItemType: ItemTypePrepaidBundle}, {ItemType: ItemTypeDevice}, {ItemType: ItemTypePostpaidPlan}},
			want:  OrderTypeDevice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyOrder(tt.items))
		})
	}
}

func TestOrderTypeRequiresDelivery(t *testing.T) {
	assert.True(t, OrderTypeDevice.RequiresDelivery())
	assert.True(t, OrderTypeMixed.RequiresDelivery())
	assert.False(t, OrderTypePostpaidOnly.RequiresDelivery())
	assert.False(t, OrderTypePrepaidOnly.RequiresDelivery())
}
