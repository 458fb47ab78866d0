package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"food-delivery-app/models"
	"food-delivery-app/pricing"
)

func line(price float64, qty int) models.CartItem {
	return models.CartItem{Name: "item", UnitPrice: price, Quantity: qty}
}

func TestComputeBreakdown(t *testing.T) {
	cases := []struct {
		name  string
		items []models.CartItem
		want  models.PricingBreakdown
	}{
		{
			name:  "empty cart pays only the fee",
			items: nil,
			want:  models.PricingBreakdown{Subtotal: 0, DeliveryFee: 60, Tax: 0, Total: 60},
		},
		{
			name:  "just under the free delivery threshold",
			items: []models.CartItem{line(499.99, 1)},
			want:  models.PricingBreakdown{Subtotal: 499.99, DeliveryFee: 60, Tax: 74.9985, Total: 634.9885},
		},
		{
			name:  "exactly at the threshold",
			items: []models.CartItem{line(500.00, 1)},
			want:  models.PricingBreakdown{Subtotal: 500, DeliveryFee: 0, Tax: 75, Total: 575},
		},
		{
			name:  "free delivery above the threshold",
			items: []models.CartItem{line(250, 4)},
			want:  models.PricingBreakdown{Subtotal: 1000, DeliveryFee: 0, Tax: 150, Total: 1150},
		},
		{
			name:  "quantities multiply into the subtotal",
			items: []models.CartItem{line(120, 2), line(50, 3)},
			want:  models.PricingBreakdown{Subtotal: 390, DeliveryFee: 60, Tax: 58.5, Total: 508.5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.Compute(tc.items)
			assert.InDelta(t, tc.want.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tc.want.DeliveryFee, got.DeliveryFee, 1e-9)
			assert.InDelta(t, tc.want.Tax, got.Tax, 1e-9)
			assert.InDelta(t, tc.want.Total, got.Total, 1e-9)
		})
	}
}

func TestComputeIsPure(t *testing.T) {
	items := []models.CartItem{line(100, 1)}
	first := pricing.Compute(items)
	second := pricing.Compute(items)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, items[0].Quantity, "input snapshot must not be mutated")
}

func TestFormat(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0.00 ETB"},
		{60, "60.00 ETB"},
		{499.99, "499.99 ETB"},
		{1150, "1,150.00 ETB"},
		{1234567.891, "1,234,567.89 ETB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pricing.Format(tc.amount))
	}
}
